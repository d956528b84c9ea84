// File: cmd/optionsconfig/build.go
package main

import (
	"fmt"

	"optionsconfig"

	"github.com/spf13/cobra"
)

var (
	envExamplePath string
	readmePath     string
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Generate documentation files from the schema",
}

var buildEnvCmd = &cobra.Command{
	Use:   "env",
	Short: "Generate the .env.example file",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := loadSchema()
		if err != nil {
			return err
		}
		return buildEnvExample(cmd, schema)
	},
}

var buildReadmeCmd = &cobra.Command{
	Use:   "readme",
	Short: "Update the README options section",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := loadSchema()
		if err != nil {
			return err
		}
		return buildReadme(cmd, schema)
	},
}

var buildAllCmd = &cobra.Command{
	Use:   "all",
	Short: "Generate all documentation files",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := loadSchema()
		if err != nil {
			return err
		}
		if err := buildEnvExample(cmd, schema); err != nil {
			return err
		}
		if err := buildReadme(cmd, schema); err != nil {
			return err
		}
		cmd.Println("All documentation generated successfully")
		return nil
	},
}

func init() {
	buildCmd.PersistentFlags().StringVar(&envExamplePath, "env-example", ".env.example",
		"output path for the generated env example")
	buildCmd.PersistentFlags().StringVar(&readmePath, "readme", "README.md",
		"path of the README containing the generated-options markers")

	buildCmd.AddCommand(buildEnvCmd)
	buildCmd.AddCommand(buildReadmeCmd)
	buildCmd.AddCommand(buildAllCmd)
}

func buildEnvExample(cmd *cobra.Command, schema *optionsconfig.Schema) error {
	builder := optionsconfig.NewEnvExampleBuilder(schema)
	builder.Path = envExamplePath

	if err := builder.Build(); err != nil {
		return fmt.Errorf("generating %s: %w", envExamplePath, err)
	}

	cmd.Printf("Generated %s (%d options, %d root + %d dependent)\n",
		envExamplePath, schema.Len(), schema.Len()-dependentCount(schema), dependentCount(schema))
	return nil
}

func buildReadme(cmd *cobra.Command, schema *optionsconfig.Schema) error {
	builder := optionsconfig.NewReadmeBuilder(schema)
	builder.Path = readmePath

	if err := builder.Build(); err != nil {
		return fmt.Errorf("updating %s: %w", readmePath, err)
	}

	cmd.Printf("Updated %s (%d options)\n", readmePath, schema.Len())
	return nil
}

// dependentCount counts options with a non-empty dependency list.
func dependentCount(schema *optionsconfig.Schema) int {
	count := 0
	for _, key := range schema.Keys() {
		def, _ := schema.Get(key)
		if len(def.DependsOn) > 0 {
			count++
		}
	}
	return count
}
