// File: cmd/optionsconfig/info.go
package main

import (
	"sort"

	"github.com/spf13/cobra"
)

var infoVerbose bool

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display information about the current schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := loadSchema()
		if err != nil {
			return err
		}

		cmd.Println("Schema Information")
		cmd.Println("==================================================")
		cmd.Printf("Total options: %d\n", schema.Len())

		bySection := make(map[string][]string)
		for _, key := range schema.Keys() {
			def, _ := schema.Get(key)
			bySection[def.Section] = append(bySection[def.Section], key)
		}

		cmd.Printf("\nSections (%d):\n", len(bySection))
		for _, section := range schema.Sections() {
			options := bySection[section]
			cmd.Printf("  %s: %d option(s)\n", section, len(options))
			if infoVerbose {
				sorted := append([]string(nil), options...)
				sort.Strings(sorted)
				for _, key := range sorted {
					cmd.Printf("    - %s\n", key)
				}
			}
		}

		dependent := dependentCount(schema)
		cmd.Println("\nDependencies:")
		cmd.Printf("  Root options: %d\n", len(schema.RootOptions()))
		cmd.Printf("  Dependent options: %d\n", dependent)

		sensitive := 0
		for _, key := range schema.Keys() {
			def, _ := schema.Get(key)
			if def.Sensitive {
				sensitive++
			}
		}
		if sensitive > 0 {
			cmd.Printf("\nSensitive options: %d\n", sensitive)
		}

		return nil
	},
}

func init() {
	infoCmd.Flags().BoolVarP(&infoVerbose, "verbose", "v", false, "show detailed information")
}
