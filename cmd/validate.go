package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// Validation runs in the root pre-run; reaching RunE means it passed.
func newValidateCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate merged configuration against the JSON Schema",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid (%s)\n", o.cfgDir)
			return err
		},
	}
}
