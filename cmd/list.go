package cmd

import (
	"github.com/spf13/cobra"
)

func newListCmd(o *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List every command in the catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd.OutOrStdout(), nil)
		},
	}
	cmd.Flags().BoolVar(&o.pick, "pick", false, "choose one command interactively and print it")
	return cmd
}
