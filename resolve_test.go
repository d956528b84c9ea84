// File: optionsconfig/resolve_test.go
package optionsconfig_test

import (
	"testing"

	"optionsconfig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolvePriority(t *testing.T) {
	schema := testSchema(t)

	t.Run("CLIBeatsEnvironment", func(t *testing.T) {
		resolved, err := optionsconfig.Resolve(schema,
			optionsconfig.ArgValues{"GAME_NAME": {Text: "FromCLI", HasValue: true}},
			optionsconfig.Environ{"GAME_NAME": "FromEnv"})
		require.NoError(t, err)

		name, err := resolved.String("game_name")
		require.NoError(t, err)
		assert.Equal(t, "FromCLI", name)
	})

	t.Run("EnvironmentBeatsDefault", func(t *testing.T) {
		resolved, err := optionsconfig.Resolve(schema, nil,
			optionsconfig.Environ{"GAME_NAME": "FromEnv"})
		require.NoError(t, err)

		name, err := resolved.String("game_name")
		require.NoError(t, err)
		assert.Equal(t, "FromEnv", name)
	})

	t.Run("DefaultWhenNothingSupplied", func(t *testing.T) {
		resolved, err := optionsconfig.Resolve(schema, nil, nil)
		require.NoError(t, err)

		name, err := resolved.String("game_name")
		require.NoError(t, err)
		assert.Equal(t, "X", name)
	})

	t.Run("EmptyEnvValueStillCountsAsSupplied", func(t *testing.T) {
		// SHOULD_PARSE= (present but empty) suppresses auto-true even
		// though coercion falls back to the schema default.
		resolved, err := optionsconfig.Resolve(schema, nil,
			optionsconfig.Environ{"SHOULD_PARSE": ""})
		require.NoError(t, err)

		parse, err := resolved.Bool("should_parse")
		require.NoError(t, err)
		assert.False(t, parse)
	})
}

func TestResolveAutoTrue(t *testing.T) {
	schema := testSchema(t)

	t.Run("NoInputForcesRootTrue", func(t *testing.T) {
		resolved, err := optionsconfig.Resolve(schema, nil, nil)
		require.NoError(t, err)

		parse, err := resolved.Bool("should_parse")
		require.NoError(t, err)
		assert.True(t, parse)
	})

	t.Run("ExplicitFalseIsRespected", func(t *testing.T) {
		resolved, err := optionsconfig.Resolve(schema, nil,
			optionsconfig.Environ{"SHOULD_PARSE": "no"})
		require.NoError(t, err)

		parse, err := resolved.Bool("should_parse")
		require.NoError(t, err)
		assert.False(t, parse)
	})

	t.Run("ExplicitFalseLeavesDependentsOptional", func(t *testing.T) {
		s := optionsconfig.NewSchema()
		s.MustAdd("SHOULD_UPLOAD", optionsconfig.OptionDefinition{
			Env: "SHOULD_UPLOAD", Arg: "--should-upload", Type: optionsconfig.TypeBool,
			Default: false, Section: "Upload", Help: "h",
		})
		s.MustAdd("UPLOAD_TOKEN", optionsconfig.OptionDefinition{
			Env: "UPLOAD_TOKEN", Arg: "--upload-token", Type: optionsconfig.TypeString,
			Section: "Upload", Help: "h", DependsOn: []string{"SHOULD_UPLOAD"},
		})

		// The token has no default, but the explicitly disabled root
		// leaves it optional.
		resolved, err := optionsconfig.Resolve(s, nil,
			optionsconfig.Environ{"SHOULD_UPLOAD": "false"})
		require.NoError(t, err)
		assert.False(t, resolved.IsSet("upload_token"))
	})

	t.Run("ExplicitTrueViaCLI", func(t *testing.T) {
		resolved, err := optionsconfig.Resolve(schema,
			optionsconfig.ArgValues{"SHOULD_PARSE": {HasValue: false}}, nil)
		require.NoError(t, err)

		parse, err := resolved.Bool("should_parse")
		require.NoError(t, err)
		assert.True(t, parse)
	})
}

func TestResolveErrors(t *testing.T) {
	t.Run("InvalidSchemaIsFatal", func(t *testing.T) {
		schema := optionsconfig.NewSchema()
		schema.MustAdd("BROKEN", optionsconfig.OptionDefinition{})

		_, err := optionsconfig.Resolve(schema, nil, nil)
		var schemaErr *optionsconfig.SchemaError
		assert.ErrorAs(t, err, &schemaErr)
	})

	t.Run("AllCoercionErrorsCollected", func(t *testing.T) {
		schema := optionsconfig.NewSchema()
		schema.MustAdd("COUNT", optionsconfig.OptionDefinition{
			Env: "COUNT", Arg: "--count", Type: optionsconfig.TypeInt,
			Default: int64(1), Section: "S", Help: "h",
		})
		schema.MustAdd("RATIO", optionsconfig.OptionDefinition{
			Env: "RATIO", Arg: "--ratio", Type: optionsconfig.TypeFloat,
			Default: 1.0, Section: "S", Help: "h",
		})

		_, err := optionsconfig.Resolve(schema, nil, optionsconfig.Environ{
			"COUNT": "many",
			"RATIO": "most",
		})
		require.Error(t, err)

		var coercionErr *optionsconfig.CoercionError
		assert.ErrorAs(t, err, &coercionErr)
		assert.Contains(t, err.Error(), "COUNT")
		assert.Contains(t, err.Error(), "RATIO")
	})

	t.Run("MissingRequiredDependentOption", func(t *testing.T) {
		schema := optionsconfig.NewSchema()
		schema.MustAdd("SHOULD_UPLOAD", optionsconfig.OptionDefinition{
			Env: "SHOULD_UPLOAD", Arg: "--should-upload", Type: optionsconfig.TypeBool,
			Default: false, Section: "Upload", Help: "h",
		})
		schema.MustAdd("UPLOAD_TOKEN", optionsconfig.OptionDefinition{
			Env: "UPLOAD_TOKEN", Arg: "--upload-token", Type: optionsconfig.TypeString,
			Section: "Upload", Help: "h", Sensitive: true,
			DependsOn: []string{"SHOULD_UPLOAD"},
		})

		// Auto-true activates SHOULD_UPLOAD, and UPLOAD_TOKEN has no
		// default and no supplied value.
		_, err := optionsconfig.Resolve(schema, nil, nil)

		var depErr *optionsconfig.DependencyError
		require.ErrorAs(t, err, &depErr)
		require.Len(t, depErr.Violations, 1)
		assert.Equal(t, "UPLOAD_TOKEN", depErr.Violations[0].Key)
	})
}

func TestResolveDeterminism(t *testing.T) {
	schema := testSchema(t)
	env := optionsconfig.Environ{"SHOULD_PARSE": "yes", "GAME_NAME": "Chess"}

	first, err := optionsconfig.Resolve(schema, nil, env)
	require.NoError(t, err)
	second, err := optionsconfig.Resolve(schema, nil, env)
	require.NoError(t, err)

	assert.Equal(t, first.Keys(), second.Keys())
	for _, key := range first.Keys() {
		a, _ := first.Get(key)
		b, _ := second.Get(key)
		assert.Equal(t, a, b, "key %s", key)
	}
}

func TestResolveInputIsolation(t *testing.T) {
	schema := testSchema(t)
	env := optionsconfig.Environ{"GAME_NAME": "Before"}

	resolved, err := optionsconfig.Resolve(schema, nil, env)
	require.NoError(t, err)

	// Mutating the input after resolution must not leak into the snapshot.
	env["GAME_NAME"] = "After"

	name, err := resolved.String("game_name")
	require.NoError(t, err)
	assert.Equal(t, "Before", name)
}

func TestResolveEndToEnd(t *testing.T) {
	schema := optionsconfig.NewSchema()
	schema.MustAdd("SHOULD_PARSE", optionsconfig.OptionDefinition{
		Env: "SHOULD_PARSE", Arg: "--should-parse", Type: optionsconfig.TypeBool,
		Default: false, Section: "Parsing", Help: "Enable parsing",
	})
	schema.MustAdd("GAME_NAME", optionsconfig.OptionDefinition{
		Env: "GAME_NAME", Arg: "--game-name", Type: optionsconfig.TypeString,
		Default: "X", Section: "Parsing", Help: "Game to parse",
		DependsOn: []string{"SHOULD_PARSE"},
	})
	schema.MustAdd("PARSE_WORKERS", optionsconfig.OptionDefinition{
		Env: "PARSE_WORKERS", Arg: "--parse-workers", Type: optionsconfig.TypeInt,
		Default: int64(4), Section: "Parsing", Help: "Worker count",
		DependsOn: []string{"SHOULD_PARSE"},
	})
	schema.MustAdd("API_KEY", optionsconfig.OptionDefinition{
		Env: "API_KEY", Arg: "--api-key", Type: optionsconfig.TypeChoice,
		Choices: []string{"prod", "staging"}, Default: "staging",
		Section: "Auth", Help: "Key environment", Sensitive: true,
		DependsOn: []string{"SHOULD_PARSE"},
	})

	args := optionsconfig.ParseArgs(schema, []string{"--parse-workers", "12"})
	resolved, err := optionsconfig.Resolve(schema, args, optionsconfig.Environ{
		"GAME_NAME": "Hearthstone",
		"API_KEY":   "prod",
	})
	require.NoError(t, err)

	parse, err := resolved.Bool("should_parse")
	require.NoError(t, err)
	assert.True(t, parse, "auto-true fires, no root was supplied")

	name, err := resolved.String("game_name")
	require.NoError(t, err)
	assert.Equal(t, "Hearthstone", name)

	workers, err := resolved.Int64("parse_workers")
	require.NoError(t, err)
	assert.Equal(t, int64(12), workers)

	masked := resolved.Masked()
	assert.Equal(t, optionsconfig.MaskToken, masked["api_key"])
	assert.Equal(t, "Hearthstone", masked["game_name"])

	key, err := resolved.String("api_key")
	require.NoError(t, err)
	assert.Equal(t, "prod", key, "accessors return the real value")
}
