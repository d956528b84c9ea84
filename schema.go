// File: optionsconfig/schema.go
package optionsconfig

import (
	"fmt"
	"strings"
)

// ArgPrefix is the required prefix for CLI flag spellings in the schema.
const ArgPrefix = "--"

// ValueType is the closed set of types an option can declare.
type ValueType int

const (
	TypeInvalid ValueType = iota
	TypeBool
	TypeString
	TypeInt
	TypeFloat
	TypePath
	// TypeChoice restricts values to the OptionDefinition's Choices list.
	TypeChoice
)

// String makes ValueType satisfy fmt.Stringer.
func (t ValueType) String() string {
	switch t {
	case TypeBool:
		return "bool"
	case TypeString:
		return "string"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypePath:
		return "path"
	case TypeChoice:
		return "choice"
	default:
		return "invalid"
	}
}

// ParseValueType converts a schema-file type name to a ValueType.
func ParseValueType(s string) (ValueType, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bool", "boolean":
		return TypeBool, nil
	case "string", "str":
		return TypeString, nil
	case "int", "integer":
		return TypeInt, nil
	case "float", "number":
		return TypeFloat, nil
	case "path":
		return TypePath, nil
	case "choice", "enum":
		return TypeChoice, nil
	default:
		return TypeInvalid, fmt.Errorf("unknown value type %q", s)
	}
}

// OptionDefinition declares a single configuration option.
//
// A nil Default marks the option as required whenever any of its DependsOn
// options resolves to true. Section, Help, HelpExtended and Links are
// documentation-only. Sensitive controls log masking and nothing else.
type OptionDefinition struct {
	// Env is the environment variable name to read (UPPER_CASE).
	Env string
	// Arg is the CLI flag spelling, including the "--" prefix.
	Arg string
	// Type declares the option's value type.
	Type ValueType
	// Choices is the allowed value set for TypeChoice options.
	Choices []string
	// Default is the value used when no source supplies one. nil means
	// "required if any dependency is active".
	Default any
	// Section groups options in generated documentation.
	Section string
	// Help is the one-line description shown in documentation.
	Help string
	// HelpExtended is an optional longer description for the README.
	HelpExtended string
	// Links maps link titles to URLs rendered in the README.
	Links map[string]string
	// DependsOn lists option keys that make this option required when any
	// of them resolves to true.
	DependsOn []string
	// Sensitive masks the value in every log/display view.
	Sensitive bool
}

// Schema is an ordered mapping from option key (canonical UPPER_SNAKE form)
// to its definition. Insertion order defines documentation order.
//
// A Schema is built once at startup and passed by reference into every
// resolution; resolution never mutates it.
type Schema struct {
	keys []string
	defs map[string]OptionDefinition
}

// NewSchema creates an empty schema.
func NewSchema() *Schema {
	return &Schema{
		defs: make(map[string]OptionDefinition),
	}
}

// Add registers an option definition under the given key.
// Keys must be unique; structural validation is deferred to Validate.
func (s *Schema) Add(key string, def OptionDefinition) error {
	if key == "" {
		return fmt.Errorf("option key cannot be empty")
	}
	if _, exists := s.defs[key]; exists {
		return fmt.Errorf("duplicate option key %q", key)
	}
	s.keys = append(s.keys, key)
	s.defs[key] = def
	return nil
}

// MustAdd is like Add but panics on error. Intended for schema literals
// declared at program start.
func (s *Schema) MustAdd(key string, def OptionDefinition) {
	if err := s.Add(key, def); err != nil {
		panic(fmt.Sprintf("schema: %v", err))
	}
}

// Get returns the definition for a key.
func (s *Schema) Get(key string) (OptionDefinition, bool) {
	def, ok := s.defs[key]
	return def, ok
}

// Keys returns all option keys in insertion order.
func (s *Schema) Keys() []string {
	out := make([]string, len(s.keys))
	copy(out, s.keys)
	return out
}

// Len returns the number of declared options.
func (s *Schema) Len() int {
	return len(s.keys)
}

// Sections returns the distinct section labels in first-appearance order.
func (s *Schema) Sections() []string {
	var sections []string
	seen := make(map[string]bool)
	for _, key := range s.keys {
		section := s.defs[key].Section
		if !seen[section] {
			seen[section] = true
			sections = append(sections, section)
		}
	}
	return sections
}

// RootOptions returns the keys that appear in at least one other option's
// DependsOn list, in schema order. Root-option-ness is structural and is
// recomputed fresh on each call.
func (s *Schema) RootOptions() []string {
	depended := make(map[string]bool)
	for _, key := range s.keys {
		for _, dep := range s.defs[key].DependsOn {
			depended[dep] = true
		}
	}

	var roots []string
	for _, key := range s.keys {
		if depended[key] {
			roots = append(roots, key)
		}
	}
	return roots
}

// Validate checks the schema for structural correctness and reports every
// issue found as a single SchemaError. A schema that fails validation must
// be treated as a fatal setup error and never be resolved.
func (s *Schema) Validate() error {
	var issues []string

	if s == nil || s.Len() == 0 {
		return &SchemaError{Issues: []string{"schema is empty"}}
	}

	for _, key := range s.keys {
		def := s.defs[key]

		if def.Env == "" {
			issues = append(issues, fmt.Sprintf("%s: missing required field 'env'", key))
		} else if def.Env != strings.ToUpper(def.Env) {
			issues = append(issues, fmt.Sprintf("%s: 'env' should be UPPER_CASE (got %q)", key, def.Env))
		}

		if def.Arg == "" {
			issues = append(issues, fmt.Sprintf("%s: missing required field 'arg'", key))
		} else if !strings.HasPrefix(def.Arg, ArgPrefix) {
			issues = append(issues, fmt.Sprintf("%s: 'arg' should start with %q (got %q)", key, ArgPrefix, def.Arg))
		}

		if def.Type == TypeInvalid {
			issues = append(issues, fmt.Sprintf("%s: missing or invalid field 'type'", key))
		}
		if def.Type == TypeChoice && len(def.Choices) == 0 {
			issues = append(issues, fmt.Sprintf("%s: choice type requires a non-empty 'choices' list", key))
		}

		if def.Section == "" {
			issues = append(issues, fmt.Sprintf("%s: missing required field 'section'", key))
		}
		if def.Help == "" {
			issues = append(issues, fmt.Sprintf("%s: missing required field 'help'", key))
		}

		for _, dep := range def.DependsOn {
			if _, exists := s.defs[dep]; !exists {
				issues = append(issues, fmt.Sprintf("%s: depends on non-existent option %q", key, dep))
			}
		}
	}

	if len(issues) > 0 {
		return &SchemaError{Issues: issues}
	}
	return nil
}
