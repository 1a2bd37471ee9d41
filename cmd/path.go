package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newPathCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path",
		Short: "Print the resolved catalog file path",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), o.resolvedCatalogPath())
			return err
		},
	}
}
