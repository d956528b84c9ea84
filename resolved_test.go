// File: optionsconfig/resolved_test.go
package optionsconfig_test

import (
	"strings"
	"testing"

	"optionsconfig"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// accessorSchema resolves a snapshot with one option of each value type.
func accessorResolved(t *testing.T) *optionsconfig.Resolved {
	t.Helper()

	schema := optionsconfig.NewSchema()
	schema.MustAdd("ENABLED", optionsconfig.OptionDefinition{
		Env: "ENABLED", Arg: "--enabled", Type: optionsconfig.TypeBool,
		Default: true, Section: "S", Help: "h",
	})
	schema.MustAdd("NAME", optionsconfig.OptionDefinition{
		Env: "NAME", Arg: "--name", Type: optionsconfig.TypeString,
		Default: "alpha", Section: "S", Help: "h",
	})
	schema.MustAdd("COUNT", optionsconfig.OptionDefinition{
		Env: "COUNT", Arg: "--count", Type: optionsconfig.TypeInt,
		Default: int64(7), Section: "S", Help: "h",
	})
	schema.MustAdd("RATIO", optionsconfig.OptionDefinition{
		Env: "RATIO", Arg: "--ratio", Type: optionsconfig.TypeFloat,
		Default: 0.5, Section: "S", Help: "h",
	})
	schema.MustAdd("OUT_DIR", optionsconfig.OptionDefinition{
		Env: "OUT_DIR", Arg: "--out-dir", Type: optionsconfig.TypePath,
		Section: "S", Help: "h",
	})
	schema.MustAdd("SECRET", optionsconfig.OptionDefinition{
		Env: "SECRET", Arg: "--secret", Type: optionsconfig.TypeString,
		Default: "hunter2", Section: "S", Help: "h", Sensitive: true,
	})

	resolved, err := optionsconfig.Resolve(schema, nil, nil)
	require.NoError(t, err)
	return resolved
}

func TestResolvedAccessors(t *testing.T) {
	r := accessorResolved(t)

	t.Run("TypedValues", func(t *testing.T) {
		b, err := r.Bool("enabled")
		require.NoError(t, err)
		assert.True(t, b)

		s, err := r.String("name")
		require.NoError(t, err)
		assert.Equal(t, "alpha", s)

		i, err := r.Int64("count")
		require.NoError(t, err)
		assert.Equal(t, int64(7), i)

		f, err := r.Float64("ratio")
		require.NoError(t, err)
		assert.Equal(t, 0.5, f)
	})

	t.Run("CanonicalKeyFormAccepted", func(t *testing.T) {
		upper, err := r.String("GAME_NAME")
		assert.ErrorIs(t, err, optionsconfig.ErrNotResolved)
		assert.Empty(t, upper)

		s, err := r.String("NAME")
		require.NoError(t, err)
		assert.Equal(t, "alpha", s)
	})

	t.Run("UnsetPathIsEmptyString", func(t *testing.T) {
		assert.False(t, r.IsSet("out_dir"))

		p, err := r.Path("out_dir")
		require.NoError(t, err)
		assert.Equal(t, "", p)
	})

	t.Run("UnsetValueRejectsBool", func(t *testing.T) {
		_, err := r.Bool("out_dir")
		assert.ErrorContains(t, err, "unset")
	})

	t.Run("UnknownKey", func(t *testing.T) {
		_, err := r.Int64("nope")
		assert.ErrorIs(t, err, optionsconfig.ErrNotResolved)

		_, ok := r.Get("nope")
		assert.False(t, ok)
	})

	t.Run("CrossTypeConversions", func(t *testing.T) {
		s, err := r.String("count")
		require.NoError(t, err)
		assert.Equal(t, "7", s)

		f, err := r.Float64("count")
		require.NoError(t, err)
		assert.Equal(t, 7.0, f)

		_, err = r.Int64("name")
		assert.Error(t, err)
	})
}

func TestResolvedMasked(t *testing.T) {
	r := accessorResolved(t)
	masked := r.Masked()

	assert.Equal(t, optionsconfig.MaskToken, masked["secret"])
	assert.Equal(t, "alpha", masked["name"])

	s, err := r.String("secret")
	require.NoError(t, err)
	assert.Equal(t, "hunter2", s)
}

func TestResolvedDebug(t *testing.T) {
	r := accessorResolved(t)
	dump := r.Debug()

	assert.Contains(t, dump, "name: alpha")
	assert.Contains(t, dump, "secret: "+optionsconfig.MaskToken)
	assert.NotContains(t, dump, "hunter2")

	// Sorted output is stable across runs.
	assert.Equal(t, dump, r.Debug())
	assert.Less(t, strings.Index(dump, "count:"), strings.Index(dump, "ratio:"))
}

func TestResolvedScan(t *testing.T) {
	r := accessorResolved(t)

	t.Run("StructWithTags", func(t *testing.T) {
		var target struct {
			Enabled bool    `option:"enabled"`
			Name    string  `option:"name"`
			Count   int     `option:"count"`
			Ratio   float64 `option:"ratio"`
			Secret  string  `option:"secret"`
		}
		require.NoError(t, r.Scan(&target))

		assert.True(t, target.Enabled)
		assert.Equal(t, "alpha", target.Name)
		assert.Equal(t, 7, target.Count)
		assert.Equal(t, 0.5, target.Ratio)
		assert.Equal(t, "hunter2", target.Secret, "scan is unmasked")
	})

	t.Run("WeakTyping", func(t *testing.T) {
		var target struct {
			Count string `option:"count"`
		}
		require.NoError(t, r.Scan(&target))
		assert.Equal(t, "7", target.Count)
	})

	t.Run("Map", func(t *testing.T) {
		target := make(map[string]any)
		require.NoError(t, r.Scan(&target))
		assert.Equal(t, "alpha", target["name"])
	})
}

func TestResolvedKeysOrder(t *testing.T) {
	r := accessorResolved(t)
	assert.Equal(t,
		[]string{"enabled", "name", "count", "ratio", "out_dir", "secret"},
		r.Keys())
}
