// File: optionsconfig/readme.go
package optionsconfig

import (
	"fmt"
	"os"
	"sort"
	"strings"
)

// Markers delimiting the generated options section in the README.
const (
	ReadmeBeginMarker = "<!-- BEGIN_GENERATED_OPTIONS -->"
	ReadmeEndMarker   = "<!-- END_GENERATED_OPTIONS -->"
)

// ReadmeBuilder renders the schema's option documentation into a README
// section delimited by fixed begin/end markers. Everything outside the
// markers is left untouched.
type ReadmeBuilder struct {
	Schema *Schema
	// Path of the README to update. Defaults to "README.md".
	Path string
}

// NewReadmeBuilder creates a builder for the given schema.
func NewReadmeBuilder(schema *Schema) *ReadmeBuilder {
	return &ReadmeBuilder{
		Schema: schema,
		Path:   "README.md",
	}
}

// Generate renders the options documentation as Markdown, grouped by
// section in schema order. Dependent options are indented under a "*"
// bullet to distinguish them from root-level "-" entries.
func (b *ReadmeBuilder) Generate() string {
	var lines []string

	for _, section := range b.Schema.Sections() {
		lines = append(lines, "#### "+section, "")
		for _, key := range b.Schema.Keys() {
			def, _ := b.Schema.Get(key)
			if def.Section != section {
				continue
			}
			lines = append(lines, readmeOption(def)...)
		}
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n")
}

// readmeOption renders one option's documentation entry.
func readmeOption(def OptionDefinition) []string {
	dependent := len(def.DependsOn) > 0

	bullet := "-"
	indent := ""
	if dependent {
		bullet = "*"
		indent = "  "
	}

	lines := []string{
		fmt.Sprintf("%s%s **%s** - %s", indent, bullet, def.Env, def.Help),
		fmt.Sprintf("%s  - Default: %s", indent, defaultReadmeString(def)),
		fmt.Sprintf("%s  - Command line: `%s`", indent, def.Arg),
	}

	if dependent {
		deps := make([]string, len(def.DependsOn))
		for i, dep := range def.DependsOn {
			deps[i] = "`" + dep + "`"
		}
		lines = append(lines, fmt.Sprintf("%s  - Depends on: %s", indent, strings.Join(deps, ", ")))
	}

	for _, title := range sortedLinkTitles(def.Links) {
		lines = append(lines, fmt.Sprintf("%s  - See [%s](%s) for available values", indent, title, def.Links[title]))
	}

	if def.HelpExtended != "" {
		lines = append(lines, fmt.Sprintf("%s  - %s", indent, def.HelpExtended))
	}

	lines = append(lines, "")
	return lines
}

// defaultReadmeString formats a default value for the README entry.
func defaultReadmeString(def OptionDefinition) string {
	switch v := def.Default.(type) {
	case nil:
		if len(def.DependsOn) > 0 {
			return fmt.Sprintf("None - required when %s is true", strings.Join(def.DependsOn, " or "))
		}
		return "None"
	case bool:
		return fmt.Sprintf("`%q`", fmt.Sprintf("%t", v))
	case string:
		if v == "" {
			return "`\"\"` (empty)"
		}
		return fmt.Sprintf("`%q`", v)
	default:
		return fmt.Sprintf("`\"%v\"`", v)
	}
}

// sortedLinkTitles returns link titles in a deterministic order.
func sortedLinkTitles(links map[string]string) []string {
	if len(links) == 0 {
		return nil
	}
	titles := make([]string, 0, len(links))
	for title := range links {
		titles = append(titles, title)
	}
	// Map iteration order is random; sort for stable output.
	sort.Strings(titles)
	return titles
}

// Build replaces the content between the README markers with freshly
// generated documentation, writing the file atomically.
func (b *ReadmeBuilder) Build() error {
	if b.Schema == nil || b.Schema.Len() == 0 {
		return fmt.Errorf("cannot generate README options from an empty schema")
	}

	data, err := os.ReadFile(b.Path)
	if err != nil {
		return fmt.Errorf("failed to read README '%s': %w", b.Path, err)
	}
	content := string(data)

	begin := strings.Index(content, ReadmeBeginMarker)
	end := strings.Index(content, ReadmeEndMarker)
	if begin < 0 || end < 0 || end < begin {
		return fmt.Errorf("%w in '%s': add %s and %s where the option docs belong",
			ErrMarkersNotFound, b.Path, ReadmeBeginMarker, ReadmeEndMarker)
	}

	updated := content[:begin] +
		ReadmeBeginMarker + "\n" +
		b.Generate() + "\n" +
		content[end:]

	if err := atomicWriteFile(b.Path, []byte(updated)); err != nil {
		return fmt.Errorf("failed to write README '%s': %w", b.Path, err)
	}
	return nil
}
