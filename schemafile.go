// FILE: optionsconfig/schemafile.go
package optionsconfig

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// rawOption is the on-disk shape of one option entry.
type rawOption struct {
	Env          string            `toml:"env" yaml:"env"`
	Arg          string            `toml:"arg" yaml:"arg"`
	Type         string            `toml:"type" yaml:"type"`
	Choices      []string          `toml:"choices" yaml:"choices"`
	Default      any               `toml:"default" yaml:"default"`
	Section      string            `toml:"section" yaml:"section"`
	Help         string            `toml:"help" yaml:"help"`
	HelpExtended string            `toml:"help_extended" yaml:"help_extended"`
	Links        map[string]string `toml:"links" yaml:"links"`
	DependsOn    []string          `toml:"depends_on" yaml:"depends_on"`
	Sensitive    bool              `toml:"sensitive" yaml:"sensitive"`
}

// LoadSchemaFile reads and validates a schema from a TOML, YAML, or JSON
// file. Entry order in the file defines documentation order. The returned
// schema has already passed Validate.
func LoadSchemaFile(path string) (*Schema, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrSchemaNotFound, path)
		}
		return nil, fmt.Errorf("failed to read schema file '%s': %w", path, err)
	}

	format := detectFileFormat(path)
	if format == "" {
		format = detectFormatFromContent(data)
		if format == "" {
			return nil, fmt.Errorf("unable to determine schema format for file '%s'", path)
		}
	}

	var schema *Schema
	switch format {
	case "toml":
		schema, err = parseSchemaTOML(data)
	case "yaml", "json":
		// YAML is a JSON superset; both parse through the node API, which
		// preserves entry order.
		schema, err = parseSchemaYAML(data)
	default:
		return nil, fmt.Errorf("unsupported schema format %q for file '%s'", format, path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to parse schema file '%s': %w", path, err)
	}

	if err := schema.Validate(); err != nil {
		return nil, err
	}
	return schema, nil
}

func parseSchemaTOML(data []byte) (*Schema, error) {
	entries := make(map[string]rawOption)
	meta, err := toml.Decode(string(data), &entries)
	if err != nil {
		return nil, err
	}

	// MetaData.Keys preserves file order; keep top-level keys only.
	var order []string
	seen := make(map[string]bool)
	for _, key := range meta.Keys() {
		top := key[0]
		if _, isEntry := entries[top]; isEntry && !seen[top] {
			seen[top] = true
			order = append(order, top)
		}
	}

	schema := NewSchema()
	for _, key := range order {
		def, err := entryToDefinition(key, entries[key])
		if err != nil {
			return nil, err
		}
		if err := schema.Add(key, def); err != nil {
			return nil, err
		}
	}
	return schema, nil
}

func parseSchemaYAML(data []byte) (*Schema, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, fmt.Errorf("schema document is empty")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("schema root must be a mapping, got %v", root.Tag)
	}

	schema := NewSchema()
	// Mapping node content alternates key, value.
	for i := 0; i+1 < len(root.Content); i += 2 {
		keyNode, valNode := root.Content[i], root.Content[i+1]

		var entry rawOption
		if err := valNode.Decode(&entry); err != nil {
			return nil, fmt.Errorf("option %s: %w", keyNode.Value, err)
		}

		def, err := entryToDefinition(keyNode.Value, entry)
		if err != nil {
			return nil, err
		}
		if err := schema.Add(keyNode.Value, def); err != nil {
			return nil, err
		}
	}
	return schema, nil
}

// entryToDefinition converts a file entry to an OptionDefinition,
// normalizing the declared type and the default's representation.
func entryToDefinition(key string, entry rawOption) (OptionDefinition, error) {
	valueType, err := ParseValueType(entry.Type)
	if err != nil {
		return OptionDefinition{}, fmt.Errorf("option %s: %w", key, err)
	}

	def := OptionDefinition{
		Env:          entry.Env,
		Arg:          entry.Arg,
		Type:         valueType,
		Choices:      entry.Choices,
		Section:      entry.Section,
		Help:         entry.Help,
		HelpExtended: entry.HelpExtended,
		Links:        entry.Links,
		DependsOn:    entry.DependsOn,
		Sensitive:    entry.Sensitive,
	}

	def.Default, err = normalizeDefault(valueType, entry.Default)
	if err != nil {
		return OptionDefinition{}, fmt.Errorf("option %s: %w", key, err)
	}
	return def, nil
}

// normalizeDefault coerces a parsed default into the canonical runtime
// representation for its declared type. nil stays nil (the unset sentinel).
func normalizeDefault(t ValueType, v any) (any, error) {
	if v == nil {
		return nil, nil
	}

	switch t {
	case TypeBool:
		if b, ok := v.(bool); ok {
			return b, nil
		}
	case TypeInt:
		switch n := v.(type) {
		case int64:
			return n, nil
		case int:
			return int64(n), nil
		case float64:
			if n == float64(int64(n)) {
				return int64(n), nil
			}
		}
	case TypeFloat:
		switch n := v.(type) {
		case float64:
			return n, nil
		case int64:
			return float64(n), nil
		case int:
			return float64(n), nil
		}
	case TypeString, TypePath, TypeChoice:
		if s, ok := v.(string); ok {
			return s, nil
		}
	}
	return nil, fmt.Errorf("default %v (%T) does not match declared type %s", v, v, t)
}

// detectFileFormat determines format from file extension.
func detectFileFormat(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml", ".tml":
		return "toml"
	case ".json":
		return "json"
	case ".yaml", ".yml":
		return "yaml"
	default:
		return ""
	}
}

// detectFormatFromContent attempts to detect format by parsing.
func detectFormatFromContent(data []byte) string {
	// Try JSON first (strict format)
	var jsonTest any
	if err := json.Unmarshal(data, &jsonTest); err == nil {
		return "json"
	}

	// Try YAML (superset of JSON, so check after JSON)
	var yamlTest any
	if err := yaml.Unmarshal(data, &yamlTest); err == nil {
		return "yaml"
	}

	// Try TOML last
	var tomlTest any
	if err := toml.Unmarshal(data, &tomlTest); err == nil {
		return "toml"
	}

	return ""
}

// SchemaDiscoveryOptions configures automatic schema file discovery.
type SchemaDiscoveryOptions struct {
	// Base name of the schema file (without extension)
	Name string

	// Extensions to try (in order)
	Extensions []string

	// Custom search paths (in addition to defaults)
	Paths []string

	// Environment variable to check for an explicit path
	EnvVar string

	// Whether to search in the current directory
	UseCurrentDir bool
}

// DefaultSchemaDiscovery returns sensible defaults: optionsconfig.{toml,
// yaml,yml,json} in the current directory, overridable through the
// OPTIONSCONFIG_SCHEMA environment variable.
func DefaultSchemaDiscovery() SchemaDiscoveryOptions {
	return SchemaDiscoveryOptions{
		Name:          "optionsconfig",
		Extensions:    []string{".toml", ".yaml", ".yml", ".json"},
		EnvVar:        "OPTIONSCONFIG_SCHEMA",
		UseCurrentDir: true,
	}
}

// DiscoverSchemaFile locates a schema file: explicit env var first, then the
// configured search paths. Returns ErrSchemaNotFound when nothing matches.
func DiscoverSchemaFile(opts SchemaDiscoveryOptions) (string, error) {
	if opts.EnvVar != "" {
		if path := os.Getenv(opts.EnvVar); path != "" {
			return path, nil
		}
	}

	searchPaths := append([]string(nil), opts.Paths...)
	if opts.UseCurrentDir {
		if cwd, err := os.Getwd(); err == nil {
			searchPaths = append(searchPaths, cwd)
		}
	}

	for _, dir := range searchPaths {
		for _, ext := range opts.Extensions {
			path := filepath.Join(dir, opts.Name+ext)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}
	}

	return "", fmt.Errorf("%w: searched for %s{%s} in %d location(s)",
		ErrSchemaNotFound, opts.Name, strings.Join(opts.Extensions, ","), len(searchPaths))
}
