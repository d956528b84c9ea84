// File: optionsconfig/helper.go
package optionsconfig

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// attrName converts a schema key (UPPER_SNAKE) to its snapshot key form
// (lower_snake). Dashes are normalized to underscores.
func attrName(key string) string {
	return strings.ReplaceAll(strings.ToLower(key), "-", "_")
}

// argToAttr converts a CLI flag spelling to its snapshot key form
// (e.g. "--game-name" -> "game_name").
func argToAttr(arg string) string {
	return strings.ReplaceAll(strings.TrimPrefix(arg, ArgPrefix), "-", "_")
}

// atomicWriteFile writes data to path through a temp file and rename so a
// partially written file is never observed.
func atomicWriteFile(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create directory '%s': %w", dir, err)
	}

	tempFile, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("failed to create temporary file: %w", err)
	}

	tempPath := tempFile.Name()
	defer os.Remove(tempPath) // Clean up on any error

	if _, err := tempFile.Write(data); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to write temporary file: %w", err)
	}

	if err := tempFile.Sync(); err != nil {
		tempFile.Close()
		return fmt.Errorf("failed to sync temporary file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("failed to close temporary file: %w", err)
	}

	if err := os.Chmod(tempPath, 0644); err != nil {
		return fmt.Errorf("failed to set permissions: %w", err)
	}

	if err := os.Rename(tempPath, path); err != nil {
		return fmt.Errorf("failed to rename temporary file: %w", err)
	}

	return nil
}
