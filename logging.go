// FILE: optionsconfig/logging.go
package optionsconfig

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// ParseLogLevel maps a level name to a slog.Level, defaulting to Info for
// unknown names.
func ParseLogLevel(name string) slog.Level {
	switch name {
	case "DEBUG", "debug":
		return slog.LevelDebug
	case "WARN", "WARNING", "warn", "warning":
		return slog.LevelWarn
	case "ERROR", "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// InitLogger creates a text logger writing to both the given file and
// stdout. The log file's directory is created if missing and the file is
// truncated, so repeated initialization is safe. An empty path logs to
// stdout only.
func InitLogger(logFile string, level slog.Level) (*slog.Logger, error) {
	var out io.Writer = os.Stdout

	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err != nil {
			return nil, fmt.Errorf("failed to create log directory for '%s': %w", logFile, err)
		}
		file, err := os.Create(logFile)
		if err != nil {
			return nil, fmt.Errorf("failed to open log file '%s': %w", logFile, err)
		}
		out = io.MultiWriter(file, os.Stdout)
	}

	handler := slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})
	return slog.New(handler), nil
}

// LogTo emits the resolved options through the logger, one attribute per
// option in schema order. Sensitive values are masked; the guarantee is
// that no formatting of this record ever contains a sensitive value.
func (r *Resolved) LogTo(logger *slog.Logger) {
	masked := r.Masked()
	attrs := make([]any, 0, len(r.keys))
	for _, key := range r.keys {
		attrs = append(attrs, slog.Any(key, masked[key]))
	}
	logger.Info("options resolved", attrs...)
}

// LogValue implements slog.LogValuer so a snapshot passed directly to slog
// renders its masked view.
func (r *Resolved) LogValue() slog.Value {
	masked := r.Masked()
	attrs := make([]slog.Attr, 0, len(r.keys))
	for _, key := range r.keys {
		attrs = append(attrs, slog.Any(key, masked[key]))
	}
	return slog.GroupValue(attrs...)
}
