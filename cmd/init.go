package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/juanmilkah/commands/internal/assets"
	"github.com/spf13/cobra"
)

func newInitCmd(o *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write the default config.yaml into the config directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wrote, err := assets.WriteDefaultConfigIfMissing(o.cfgDir)
			if err != nil {
				return err
			}
			p := filepath.Join(o.cfgDir, assets.ConfigFileName)
			if !wrote {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "config already exists: "+p)
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "wrote "+p)
			return err
		},
	}
}
