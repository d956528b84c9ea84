// File: optionsconfig/env.go
package optionsconfig

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Environ is a snapshot of environment values keyed by environment variable
// name. Resolution reads it as the middle priority layer; a variable that is
// present but empty still counts as explicitly supplied.
type Environ map[string]string

// OSEnviron captures the current process environment.
func OSEnviron() Environ {
	env := make(Environ)
	for _, entry := range os.Environ() {
		if k, v, ok := strings.Cut(entry, "="); ok {
			env[k] = v
		}
	}
	return env
}

// LoadEnvFile reads a .env-style file into an Environ.
// A missing file is not an error; the layer is simply empty.
func LoadEnvFile(path string) (Environ, error) {
	values, err := godotenv.Read(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read env file '%s': %w", path, err)
	}

	env := make(Environ, len(values))
	for k, v := range values {
		env[k] = v
	}
	return env, nil
}

// Merge overlays other on top of e and returns the combined snapshot.
// Entries in other win. Neither input is modified.
func (e Environ) Merge(other Environ) Environ {
	merged := make(Environ, len(e)+len(other))
	for k, v := range e {
		merged[k] = v
	}
	for k, v := range other {
		merged[k] = v
	}
	return merged
}
