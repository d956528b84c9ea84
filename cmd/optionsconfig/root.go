// File: cmd/optionsconfig/root.go
package main

import (
	"os"

	"optionsconfig"

	"github.com/spf13/cobra"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (bad schema, missing file).
	ExitCodeError = 1
)

// schemaPath is the --schema persistent flag. Empty means auto-discovery.
var schemaPath string

// rootCmd is the entry point when the tool is called without subcommands.
var rootCmd = &cobra.Command{
	Use:   "optionsconfig",
	Short: "Generate documentation and validate option schemas",
	Long: `optionsconfig keeps configuration documentation in sync with a single
declarative schema of options. It validates the schema and generates the
.env.example stub and the README options section from it.`,
	// SilenceUsage keeps error output clean for errors the tool reports itself.
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&schemaPath, "schema", "",
		"path to the schema file (default: auto-discover optionsconfig.{toml,yaml,yml,json})")

	rootCmd.AddCommand(buildCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(infoCmd)
}

// Execute runs the root command and exits with a semantic exit code.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(ExitCodeError)
	}
	os.Exit(ExitCodeSuccess)
}

// loadSchema resolves the schema file from the --schema flag or discovery
// and loads it. Loading includes full schema validation.
func loadSchema() (*optionsconfig.Schema, error) {
	path := schemaPath
	if path == "" {
		found, err := optionsconfig.DiscoverSchemaFile(optionsconfig.DefaultSchemaDiscovery())
		if err != nil {
			return nil, err
		}
		path = found
	}
	return optionsconfig.LoadSchemaFile(path)
}
