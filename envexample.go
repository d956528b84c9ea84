// File: optionsconfig/envexample.go
package optionsconfig

import (
	"fmt"
	"os"
	"strings"
)

// envExampleHeader is the fixed first line of generated .env.example files.
const envExampleHeader = `# Use forward slashes "/" in paths for compatibility across platforms`

// helpWrapWidth is the column at which help comments wrap.
const helpWrapWidth = 80

// EnvExampleBuilder renders a schema into a .env.example stub so the
// documentation can never drift from the option definitions.
type EnvExampleBuilder struct {
	Schema *Schema
	// Path of the output file. Defaults to ".env.example".
	Path string
}

// NewEnvExampleBuilder creates a builder for the given schema.
func NewEnvExampleBuilder(schema *Schema) *EnvExampleBuilder {
	return &EnvExampleBuilder{
		Schema: schema,
		Path:   ".env.example",
	}
}

// Generate renders the .env.example content: options grouped by section in
// schema order, each with its help text, dependency annotation, and quoted
// default value.
func (b *EnvExampleBuilder) Generate() string {
	lines := []string{envExampleHeader, ""}

	first := true
	for _, section := range b.Schema.Sections() {
		if !first {
			lines = append(lines, "")
		}
		first = false

		lines = append(lines, "# "+section)
		for _, key := range b.Schema.Keys() {
			def, _ := b.Schema.Get(key)
			if def.Section != section {
				continue
			}
			lines = append(lines, envExampleOption(def)...)
		}
	}

	return strings.Join(lines, "\n")
}

// envExampleOption renders one option's comment block and assignment.
func envExampleOption(def OptionDefinition) []string {
	var lines []string

	if def.Help != "" {
		lines = append(lines, wrapComment(def.Help, helpWrapWidth)...)
	}
	if len(def.DependsOn) > 0 {
		lines = append(lines, fmt.Sprintf("# Required when %s is true", strings.Join(def.DependsOn, " or ")))
	}

	lines = append(lines, fmt.Sprintf("%s=%q", def.Env, defaultEnvString(def.Default)))
	lines = append(lines, "")
	return lines
}

// defaultEnvString formats a default value for a .env assignment.
func defaultEnvString(def any) string {
	switch v := def.(type) {
	case nil:
		return ""
	case bool:
		if v {
			return "True"
		}
		return "False"
	default:
		return fmt.Sprintf("%v", v)
	}
}

// wrapComment word-wraps text into "# " comment lines of at most width
// columns.
func wrapComment(text string, width int) []string {
	if len(text)+2 <= width {
		return []string{"# " + text}
	}

	var lines []string
	current := "#"
	for _, word := range strings.Fields(text) {
		if len(current)+1+len(word) > width && current != "#" {
			lines = append(lines, current)
			current = "#"
		}
		current += " " + word
	}
	if current != "#" {
		lines = append(lines, current)
	}
	return lines
}

// Build generates the file, writes it atomically, and sanity-checks the
// result.
func (b *EnvExampleBuilder) Build() error {
	if b.Schema == nil || b.Schema.Len() == 0 {
		return fmt.Errorf("cannot generate env example from an empty schema")
	}

	content := b.Generate() + "\n"
	if err := atomicWriteFile(b.Path, []byte(content)); err != nil {
		return fmt.Errorf("failed to write env example '%s': %w", b.Path, err)
	}

	return b.validateGenerated()
}

// validateGenerated performs basic structural checks on the written file.
func (b *EnvExampleBuilder) validateGenerated() error {
	data, err := os.ReadFile(b.Path)
	if err != nil {
		return fmt.Errorf("failed to read back generated file '%s': %w", b.Path, err)
	}

	lines := strings.Split(string(data), "\n")
	if len(lines) == 0 || !strings.Contains(lines[0], "Use forward slashes") {
		return fmt.Errorf("generated file '%s' is missing the expected header", b.Path)
	}

	for _, line := range lines {
		if strings.Contains(line, "=") && !strings.HasPrefix(strings.TrimSpace(line), "#") {
			return nil
		}
	}
	return fmt.Errorf("generated file '%s' contains no environment variables", b.Path)
}
