// File: optionsconfig/doc.go

// Package optionsconfig resolves application options declared in a single
// schema into one typed, validated configuration snapshot, and generates
// documentation (.env.example, README section) from the same schema.
//
// Features:
//   - Declarative schema: env var name, CLI flag, type, default, section,
//     help text, dependencies, and sensitivity per option
//   - Three value sources with fixed precedence: CLI > environment > default
//   - Typed coercion with a strict boolean truthy/falsy table
//   - Dependency validation with the root-option auto-true policy
//   - Sensitive value masking for any log or display output
//   - Schema loading from TOML, YAML, or JSON files with auto-discovery
//   - Doc generation kept in sync with the schema
//
// Quick Start:
//
//	schema := optionsconfig.NewSchema()
//	schema.MustAdd("SHOULD_PARSE", optionsconfig.OptionDefinition{
//	    Env:     "SHOULD_PARSE",
//	    Arg:     "--should-parse",
//	    Type:    optionsconfig.TypeBool,
//	    Default: false,
//	    Section: "Parsing",
//	    Help:    "Enable the parsing stage",
//	})
//	schema.MustAdd("GAME_NAME", optionsconfig.OptionDefinition{
//	    Env:       "GAME_NAME",
//	    Arg:       "--game-name",
//	    Type:      optionsconfig.TypeString,
//	    Default:   "X",
//	    Section:   "Parsing",
//	    Help:      "Name of the game to parse",
//	    DependsOn: []string{"SHOULD_PARSE"},
//	})
//
//	resolved, err := optionsconfig.NewBuilder().
//	    WithSchema(schema).
//	    WithArgs(os.Args[1:]).
//	    WithEnvFile(".env").
//	    Resolve()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	name, _ := resolved.String("game_name")
//
// Precedence (highest to lowest):
//  1. Command-line arguments (--game-name foo)
//  2. Environment variables and .env entries (GAME_NAME=foo)
//  3. Schema defaults
//
// A nil default marks an option as required whenever any of its declared
// dependencies resolves to true. If no root option (an option that others
// depend on) is supplied explicitly via CLI or environment, every root
// option is forced to true for that resolution.
//
// Resolution is a pure function of its inputs: the schema is never mutated,
// the snapshot is immutable, and independent resolutions may run
// concurrently without coordination.
package optionsconfig
