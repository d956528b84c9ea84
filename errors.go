// File: optionsconfig/errors.go
package optionsconfig

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is.
var (
	// ErrSchemaNotFound is returned when no schema file could be located
	// through discovery (explicit path, env var, or search paths).
	ErrSchemaNotFound = errors.New("no options schema found")

	// ErrMarkersNotFound is returned by the README generator when the
	// begin/end markers are missing from the target file.
	ErrMarkersNotFound = errors.New("generated-options markers not found")

	// ErrNotResolved is returned by snapshot accessors for unknown keys.
	ErrNotResolved = errors.New("option not resolved")
)

// SchemaError reports structural defects in a schema. All issues found in a
// validation pass are collected so the schema can be fixed in one go.
// A schema that produces a SchemaError must never be passed to Resolve.
type SchemaError struct {
	Issues []string
}

func (e *SchemaError) Error() string {
	if len(e.Issues) == 1 {
		return "schema validation failed: " + e.Issues[0]
	}
	return fmt.Sprintf("schema validation failed with %d issue(s):\n  - %s",
		len(e.Issues), strings.Join(e.Issues, "\n  - "))
}

// CoercionError reports a supplied raw value that cannot be converted to the
// option's declared type. Choice mismatches do not produce this error unless
// strict choice handling is enabled; they fall back to the schema default.
type CoercionError struct {
	Key  string
	Raw  string
	Type ValueType
	Err  error
}

func (e *CoercionError) Error() string {
	msg := fmt.Sprintf("option %s: cannot coerce %q to %s", e.Key, e.Raw, e.Type)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *CoercionError) Unwrap() error { return e.Err }

// DependencyViolation identifies one active option that resolved to unset.
type DependencyViolation struct {
	// Key is the option whose requiredness was not satisfied.
	Key string
	// DependsOn is the full declared dependency list of the option.
	DependsOn []string
	// Active lists the dependencies that resolved to true and therefore
	// triggered the requirement.
	Active []string
}

func (v DependencyViolation) String() string {
	return fmt.Sprintf("%s is required when any of the following are true: %s (currently active: %s)",
		v.Key, strings.Join(v.DependsOn, ", "), strings.Join(v.Active, ", "))
}

// DependencyError aggregates every unmet required option found in a
// resolution pass, not just the first, so the caller can correct the
// configuration in a single iteration.
type DependencyError struct {
	Violations []DependencyViolation
}

func (e *DependencyError) Error() string {
	if len(e.Violations) == 1 {
		return "dependency validation failed: " + e.Violations[0].String()
	}
	lines := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		lines = append(lines, v.String())
	}
	return fmt.Sprintf("dependency validation failed with %d unmet option(s):\n  - %s",
		len(e.Violations), strings.Join(lines, "\n  - "))
}
