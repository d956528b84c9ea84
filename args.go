// File: optionsconfig/args.go
package optionsconfig

import (
	"flag"
	"fmt"
	"strings"
)

// ArgValue is one raw CLI-supplied value before coercion. HasValue is false
// when the flag was supplied bare, with no value token; only boolean options
// accept that form.
type ArgValue struct {
	Text     string
	HasValue bool
}

// ArgValues maps option keys to the raw values the user actually typed.
// Absence from the map is the explicit "not provided" marker; resolution
// places present entries at the highest priority layer.
type ArgValues map[string]ArgValue

// ParseArgs scans command-line arguments for the schema's declared flags and
// returns the raw values found. Supported forms are "--flag value",
// "--flag=value", and a bare "--flag" for boolean options. Tokens that do
// not match a declared flag are skipped.
func ParseArgs(schema *Schema, args []string) ArgValues {
	byArg := make(map[string]string, schema.Len())
	for _, key := range schema.Keys() {
		def, _ := schema.Get(key)
		byArg[def.Arg] = key
	}

	values := make(ArgValues)
	i := 0
	for i < len(args) {
		arg := args[i]
		if !strings.HasPrefix(arg, ArgPrefix) {
			i++
			continue
		}

		// "--flag=value" form
		if name, text, found := strings.Cut(arg, "="); found {
			if key, known := byArg[name]; known {
				values[key] = ArgValue{Text: text, HasValue: true}
			}
			i++
			continue
		}

		key, known := byArg[arg]
		if !known {
			i++
			continue
		}

		// Bare flag when the next token is another flag or args end.
		if i+1 >= len(args) || strings.HasPrefix(args[i+1], ArgPrefix) {
			values[key] = ArgValue{HasValue: false}
			i++
		} else {
			values[key] = ArgValue{Text: args[i+1], HasValue: true}
			i += 2
		}
	}

	return values
}

// GenerateFlags creates a flag.FlagSet with one entry per schema option, for
// callers that want standard library flag parsing instead of ParseArgs.
// Pair with BindFlags after fs.Parse to recover the raw values.
func GenerateFlags(schema *Schema, name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)

	for _, key := range schema.Keys() {
		def, _ := schema.Get(key)
		flagName := strings.TrimPrefix(def.Arg, ArgPrefix)
		usage := fmt.Sprintf("%s (default: %v)", def.Help, def.Default)

		switch def.Type {
		case TypeBool:
			fs.Bool(flagName, false, usage)
		case TypeInt:
			fs.Int64(flagName, 0, usage)
		case TypeFloat:
			fs.Float64(flagName, 0, usage)
		default:
			fs.String(flagName, "", usage)
		}
	}

	return fs
}

// BindFlags converts the flags the user actually set in a parsed FlagSet
// into ArgValues. Unset flags are left out so defaulting still applies.
func BindFlags(schema *Schema, fs *flag.FlagSet) ArgValues {
	byFlag := make(map[string]string, schema.Len())
	for _, key := range schema.Keys() {
		def, _ := schema.Get(key)
		byFlag[strings.TrimPrefix(def.Arg, ArgPrefix)] = key
	}

	values := make(ArgValues)
	fs.Visit(func(f *flag.Flag) {
		if key, known := byFlag[f.Name]; known {
			values[key] = ArgValue{Text: f.Value.String(), HasValue: true}
		}
	})

	return values
}
