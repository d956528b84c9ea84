// File: optionsconfig/builder.go
package optionsconfig

import (
	"fmt"
)

// ValidatorFunc validates a fully resolved snapshot. It runs after the
// engine's own dependency validation and should return an error to reject
// the configuration.
type ValidatorFunc func(r *Resolved) error

// Builder provides a fluent interface for assembling a resolution.
type Builder struct {
	schema     *Schema
	schemaFile string
	discovery  *SchemaDiscoveryOptions

	args      []string
	argValues ArgValues

	environ  Environ
	envFile  string
	useOSEnv bool

	strictChoices bool
	validators    []ValidatorFunc
	err           error
}

// NewBuilder creates a builder that reads the process environment by
// default. Supply a schema (direct, file, or discovery) before Resolve.
func NewBuilder() *Builder {
	return &Builder{
		useOSEnv: true,
	}
}

// WithSchema sets the schema directly. Takes precedence over files.
func (b *Builder) WithSchema(schema *Schema) *Builder {
	b.schema = schema
	return b
}

// WithSchemaFile sets the schema file path (TOML, YAML, or JSON).
func (b *Builder) WithSchemaFile(path string) *Builder {
	b.schemaFile = path
	return b
}

// WithSchemaDiscovery enables schema file auto-discovery.
func (b *Builder) WithSchemaDiscovery(opts SchemaDiscoveryOptions) *Builder {
	b.discovery = &opts
	return b
}

// WithArgs sets the command-line arguments to scan for declared flags
// (typically os.Args[1:]).
func (b *Builder) WithArgs(args []string) *Builder {
	b.args = args
	return b
}

// WithArgValues sets pre-parsed raw CLI values, bypassing ParseArgs.
// Takes precedence over WithArgs.
func (b *Builder) WithArgValues(values ArgValues) *Builder {
	b.argValues = values
	return b
}

// WithEnviron sets an explicit environment snapshot instead of the process
// environment. Useful for tests and for callers that pre-filter.
func (b *Builder) WithEnviron(env Environ) *Builder {
	b.environ = env
	b.useOSEnv = false
	return b
}

// WithEnvFile layers a .env-style file under the process environment.
// Real environment variables win over file entries.
func (b *Builder) WithEnvFile(path string) *Builder {
	b.envFile = path
	return b
}

// WithStrictChoices turns choice mismatches into coercion errors instead of
// the default silent fallback to the schema default.
func (b *Builder) WithStrictChoices() *Builder {
	b.strictChoices = true
	return b
}

// WithValidator adds a validation function that runs against the resolved
// snapshot. Multiple validators execute in the order they are added.
func (b *Builder) WithValidator(fn ValidatorFunc) *Builder {
	if fn != nil {
		b.validators = append(b.validators, fn)
	}
	return b
}

// Resolve assembles the sources and runs the resolution engine.
func (b *Builder) Resolve() (*Resolved, error) {
	if b.err != nil {
		return nil, b.err
	}

	schema, err := b.loadSchema()
	if err != nil {
		return nil, err
	}

	env, err := b.loadEnviron()
	if err != nil {
		return nil, err
	}

	args := b.argValues
	if args == nil && len(b.args) > 0 {
		args = ParseArgs(schema, b.args)
	}

	resolved, err := resolve(schema, args, env, resolveOptions{strictChoices: b.strictChoices})
	if err != nil {
		return nil, err
	}

	for _, validator := range b.validators {
		if err := validator(resolved); err != nil {
			return nil, fmt.Errorf("configuration validation failed: %w", err)
		}
	}

	return resolved, nil
}

// MustResolve is like Resolve but panics on error. Intended for program
// startup where a bad configuration is unrecoverable.
func (b *Builder) MustResolve() *Resolved {
	resolved, err := b.Resolve()
	if err != nil {
		panic(fmt.Sprintf("options resolution failed: %v", err))
	}
	return resolved
}

func (b *Builder) loadSchema() (*Schema, error) {
	if b.schema != nil {
		return b.schema, nil
	}

	path := b.schemaFile
	if path == "" && b.discovery != nil {
		found, err := DiscoverSchemaFile(*b.discovery)
		if err != nil {
			return nil, err
		}
		path = found
	}
	if path == "" {
		return nil, fmt.Errorf("%w: pass a schema with WithSchema, WithSchemaFile, or WithSchemaDiscovery", ErrSchemaNotFound)
	}

	return LoadSchemaFile(path)
}

func (b *Builder) loadEnviron() (Environ, error) {
	var env Environ

	if b.envFile != "" {
		fileEnv, err := LoadEnvFile(b.envFile)
		if err != nil {
			return nil, err
		}
		env = fileEnv
	}

	if b.useOSEnv {
		env = env.Merge(OSEnviron())
	}
	if b.environ != nil {
		env = env.Merge(b.environ)
	}

	return env, nil
}
