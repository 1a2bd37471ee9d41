package cmd

import (
	"github.com/juanmilkah/commands/internal/catalog"
	"github.com/spf13/cobra"
)

func newSearchCmd(o *rootOptions) *cobra.Command {
	var ignoreCase bool
	cmd := &cobra.Command{
		Use:   "search <query>",
		Short: "Print the commands containing the query",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return o.run(cmd.OutOrStdout(), &catalog.Query{Text: args[0], IgnoreCase: ignoreCase})
		},
	}
	cmd.Flags().BoolVarP(&ignoreCase, "ignorecase", "i", false, "ignore case when matching")
	cmd.Flags().BoolVar(&o.pick, "pick", false, "choose one command interactively and print it")
	return cmd
}
