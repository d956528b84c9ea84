// File: optionsconfig/coerce.go
package optionsconfig

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
)

// Boolean literal tables. Comparison is case-insensitive; anything outside
// both sets is a coercion failure.
var (
	truthyLiterals = map[string]bool{"yes": true, "true": true, "t": true, "y": true, "1": true}
	falsyLiterals  = map[string]bool{"no": true, "false": true, "f": true, "n": true, "0": true}
)

// coerceValue converts a raw string from the environment or CLI into the
// option's declared type.
//
// An empty value token falls back to the schema default (path options fall
// back to the unset sentinel instead, since an empty path is meaningless).
// A choice mismatch falls back to the schema default unless strictChoices
// is set, preserving the engine's documented leniency for invalid choices.
func coerceValue(key string, def OptionDefinition, raw ArgValue, strictChoices bool) (any, error) {
	if !raw.HasValue {
		if def.Type == TypeBool {
			// Bare flag with no value token.
			return true, nil
		}
		return nil, &CoercionError{Key: key, Raw: "", Type: def.Type,
			Err: fmt.Errorf("flag %s requires a value", def.Arg)}
	}

	if raw.Text == "" {
		if def.Type == TypePath {
			return nil, nil
		}
		return def.Default, nil
	}

	switch def.Type {
	case TypeBool:
		return coerceBool(key, raw.Text)

	case TypeString:
		return raw.Text, nil

	case TypeInt:
		i, err := strconv.ParseInt(raw.Text, 10, 64)
		if err != nil {
			return nil, &CoercionError{Key: key, Raw: raw.Text, Type: def.Type, Err: err}
		}
		return i, nil

	case TypeFloat:
		f, err := strconv.ParseFloat(raw.Text, 64)
		if err != nil {
			return nil, &CoercionError{Key: key, Raw: raw.Text, Type: def.Type, Err: err}
		}
		return f, nil

	case TypePath:
		// Existence is not checked here; a path value is always representable.
		return filepath.Clean(raw.Text), nil

	case TypeChoice:
		for _, choice := range def.Choices {
			if raw.Text == choice {
				return raw.Text, nil
			}
		}
		if strictChoices {
			return nil, &CoercionError{Key: key, Raw: raw.Text, Type: def.Type,
				Err: fmt.Errorf("not one of [%s]", strings.Join(def.Choices, ", "))}
		}
		return def.Default, nil

	default:
		return nil, &CoercionError{Key: key, Raw: raw.Text, Type: def.Type,
			Err: fmt.Errorf("unsupported value type")}
	}
}

// coerceBool applies the truthy/falsy literal tables.
func coerceBool(key, text string) (any, error) {
	lower := strings.ToLower(text)
	if truthyLiterals[lower] {
		return true, nil
	}
	if falsyLiterals[lower] {
		return false, nil
	}
	return nil, &CoercionError{Key: key, Raw: text, Type: TypeBool,
		Err: fmt.Errorf("invalid boolean literal")}
}
