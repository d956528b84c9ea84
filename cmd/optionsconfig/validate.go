// File: cmd/optionsconfig/validate.go
package main

import (
	"errors"
	"strings"

	"optionsconfig"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the options schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		schema, err := loadSchema()
		if err != nil {
			// Schema issues are the command's subject matter; list them
			// instead of printing one opaque error.
			var schemaErr *optionsconfig.SchemaError
			if errors.As(err, &schemaErr) {
				cmd.PrintErrf("Schema validation failed with %d error(s):\n", len(schemaErr.Issues))
				for _, issue := range schemaErr.Issues {
					cmd.PrintErrf("  - %s\n", issue)
				}
			}
			return err
		}

		cmd.Printf("Schema is valid (%d options)\n", schema.Len())
		cmd.Printf("Sections: %s\n", strings.Join(schema.Sections(), ", "))
		return nil
	},
}
