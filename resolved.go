// File: optionsconfig/resolved.go
package optionsconfig

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// MaskToken replaces sensitive values in every display/log-facing view.
const MaskToken = "***HIDDEN***"

// Resolved is the immutable output snapshot of one resolution: option keys
// in their lower_snake form mapped to final typed values. A nil value means
// the option stayed unset, which dependency validation has already allowed.
//
// The snapshot holds no reference to the argument or environment inputs it
// was built from.
type Resolved struct {
	keys      []string
	values    map[string]any
	sensitive map[string]bool
}

// newResolved converts the engine's canonical-key value map into the
// caller-facing snapshot.
func newResolved(schema *Schema, byKey map[string]any) *Resolved {
	r := &Resolved{
		keys:      make([]string, 0, schema.Len()),
		values:    make(map[string]any, schema.Len()),
		sensitive: make(map[string]bool),
	}

	for _, key := range schema.Keys() {
		def, _ := schema.Get(key)
		attr := attrName(key)
		r.keys = append(r.keys, attr)
		r.values[attr] = byKey[key]
		if def.Sensitive {
			r.sensitive[attr] = true
		}
	}

	return r
}

// Keys returns the snapshot keys in schema order.
func (r *Resolved) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

// Get retrieves the final value for an option. Keys are accepted in either
// canonical (GAME_NAME) or snapshot (game_name) form. The second return
// value reports whether the option exists in the snapshot at all; an unset
// option exists with a nil value.
func (r *Resolved) Get(key string) (any, bool) {
	val, ok := r.values[attrName(key)]
	return val, ok
}

// IsSet reports whether the option resolved to a non-nil value.
func (r *Resolved) IsSet(key string) bool {
	return r.values[attrName(key)] != nil
}

// String retrieves a string value, converting from other resolved types
// where a sensible conversion exists. An unset option yields "".
func (r *Resolved) String(key string) (string, error) {
	val, ok := r.Get(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNotResolved, key)
	}
	if val == nil {
		return "", nil
	}

	switch v := val.(type) {
	case string:
		return v, nil
	case bool:
		return strconv.FormatBool(v), nil
	case int64:
		return strconv.FormatInt(v, 10), nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	default:
		return "", fmt.Errorf("cannot convert type %T to string for option %s", val, key)
	}
}

// Path retrieves a path value. Path options resolve to cleaned strings, so
// this is String with a requirement that the option exists.
func (r *Resolved) Path(key string) (string, error) {
	return r.String(key)
}

// Bool retrieves a boolean value.
func (r *Resolved) Bool(key string) (bool, error) {
	val, ok := r.Get(key)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrNotResolved, key)
	}
	if val == nil {
		return false, fmt.Errorf("option %s is unset, cannot convert to bool", key)
	}

	if b, isBool := val.(bool); isBool {
		return b, nil
	}
	return false, fmt.Errorf("cannot convert type %T to bool for option %s", val, key)
}

// Int64 retrieves an integer value, converting from float and numeric
// strings where possible.
func (r *Resolved) Int64(key string) (int64, error) {
	val, ok := r.Get(key)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrNotResolved, key)
	}
	if val == nil {
		return 0, fmt.Errorf("option %s is unset, cannot convert to int64", key)
	}

	switch v := val.(type) {
	case int64:
		return v, nil
	case int:
		return int64(v), nil
	case float64:
		return int64(v), nil
	case string:
		i, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert string %q to int64 for option %s: %w", v, key, err)
		}
		return i, nil
	}
	return 0, fmt.Errorf("cannot convert type %T to int64 for option %s", val, key)
}

// Float64 retrieves a float value, converting from integer and numeric
// strings where possible.
func (r *Resolved) Float64(key string) (float64, error) {
	val, ok := r.Get(key)
	if !ok {
		return 0.0, fmt.Errorf("%w: %s", ErrNotResolved, key)
	}
	if val == nil {
		return 0.0, fmt.Errorf("option %s is unset, cannot convert to float64", key)
	}

	switch v := val.(type) {
	case float64:
		return v, nil
	case int64:
		return float64(v), nil
	case string:
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return 0.0, fmt.Errorf("cannot convert string %q to float64 for option %s: %w", v, key, err)
		}
		return f, nil
	}
	return 0.0, fmt.Errorf("cannot convert type %T to float64 for option %s", val, key)
}

// Masked returns the display view of the snapshot: sensitive entries are
// replaced with MaskToken. The real values stay available through Get and
// the typed accessors only.
func (r *Resolved) Masked() map[string]any {
	masked := make(map[string]any, len(r.values))
	for key, val := range r.values {
		if r.sensitive[key] {
			masked[key] = MaskToken
		} else {
			masked[key] = val
		}
	}
	return masked
}

// Scan decodes the snapshot into a target struct or map using "option"
// struct tags. Sensitive values are decoded unmasked; masking applies to
// display views only.
func (r *Resolved) Scan(target any) error {
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           target,
		TagName:          "option",
		WeaklyTypedInput: true,
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			mapstructure.StringToTimeDurationHookFunc(),
			mapstructure.StringToSliceHookFunc(","),
		),
	})
	if err != nil {
		return fmt.Errorf("failed to create mapstructure decoder: %w", err)
	}

	if err := decoder.Decode(r.values); err != nil {
		return fmt.Errorf("failed to scan resolved options into %T: %w", target, err)
	}
	return nil
}

// Debug returns a formatted dump of the snapshot with sensitive values
// masked, sorted by key for stable output.
func (r *Resolved) Debug() string {
	masked := r.Masked()
	keys := make([]string, 0, len(masked))
	for key := range masked {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("Resolved options:\n")
	for _, key := range keys {
		b.WriteString(fmt.Sprintf("  %s: %v\n", key, masked[key]))
	}
	return b.String()
}
