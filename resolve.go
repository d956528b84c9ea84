// File: optionsconfig/resolve.go
package optionsconfig

import (
	"errors"
)

// resolveOptions tunes engine behavior. The zero value is the documented
// default: choice mismatches fall back silently to the schema default.
type resolveOptions struct {
	strictChoices bool
}

// Resolve merges the three value sources into a single typed, validated
// snapshot. Priority per option, highest first: CLI value, environment
// value, schema default. A layer contributes only if it actually supplies a
// value for the option; a supplied value that happens to equal the default
// is still "supplied", which matters for the root-option auto-true policy.
//
// Either args or env may be nil. Resolve never mutates the schema and the
// returned snapshot keeps no reference to args or env, so independent
// resolutions can run concurrently.
//
// Failure modes are distinct and inspectable: *SchemaError for a defective
// schema (fatal setup error), *CoercionError for unconvertible raw values
// (all collected via errors.Join), *DependencyError for active options that
// resolved to unset (all violations aggregated).
func Resolve(schema *Schema, args ArgValues, env Environ) (*Resolved, error) {
	return resolve(schema, args, env, resolveOptions{})
}

func resolve(schema *Schema, args ArgValues, env Environ, opts resolveOptions) (*Resolved, error) {
	if err := schema.Validate(); err != nil {
		return nil, err
	}

	values := make(map[string]any, schema.Len())
	explicit := make(map[string]bool)
	var coercionErrs []error

	for _, key := range schema.Keys() {
		def, _ := schema.Get(key)

		raw, supplied := pickLayer(key, def, args, env)
		if !supplied {
			values[key] = def.Default
			continue
		}
		explicit[key] = true

		value, err := coerceValue(key, def, raw, opts.strictChoices)
		if err != nil {
			coercionErrs = append(coercionErrs, err)
			continue
		}
		values[key] = value
	}

	if len(coercionErrs) > 0 {
		return nil, errors.Join(coercionErrs...)
	}

	applyAutoTrue(schema, values, explicit)

	if err := validateDependencies(schema, values); err != nil {
		return nil, err
	}

	return newResolved(schema, values), nil
}

// pickLayer selects the highest-priority layer that supplies a raw value
// for the option. CLI beats environment; absence from both means the
// default layer applies.
func pickLayer(key string, def OptionDefinition, args ArgValues, env Environ) (ArgValue, bool) {
	if raw, ok := args[key]; ok {
		return raw, true
	}
	if text, ok := env[def.Env]; ok {
		return ArgValue{Text: text, HasValue: true}, true
	}
	return ArgValue{}, false
}
