package cmd

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/juanmilkah/commands/internal/catalog"
	"github.com/juanmilkah/commands/internal/config"
	"github.com/juanmilkah/commands/internal/logging"
	"github.com/juanmilkah/commands/internal/ui/console"
	"github.com/spf13/cobra"
)

var version = "dev"

type rootOptions struct {
	cfgFile     string
	catalogPath string
	format      string
	color       string
	verbose     bool

	list       bool
	search     string
	ignoreCase bool
	ascii      bool
	pick       bool

	cfg    config.Config
	cfgDir string
}

func Execute() error { return newRootCmd().Execute() }

func newRootCmd() *cobra.Command {
	o := &rootOptions{}
	root := &cobra.Command{
		Use:           "commands",
		Short:         "Browse and search a personal catalog of shell commands",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return o.initConfig()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("search") {
				return o.run(cmd.OutOrStdout(), &catalog.Query{Text: o.search, IgnoreCase: o.ignoreCase})
			}
			return o.run(cmd.OutOrStdout(), nil)
		},
	}
	root.Version = version

	pf := root.PersistentFlags()
	pf.StringVar(&o.cfgFile, "config", "", "path to any YAML file inside the config directory (default dir: ~/.config/commands); all *.yaml in that directory are merged")
	pf.StringVar(&o.catalogPath, "catalog", "", "catalog file, relative to $HOME unless absolute (overrides catalog.path)")
	pf.StringVar(&o.format, "format", "", "output format: plain or table (overrides output.format)")
	pf.StringVar(&o.color, "color", "", "color mode: auto, always or never (overrides output.color)")
	pf.BoolVarP(&o.verbose, "verbose", "v", false, "show detailed steps")
	pf.BoolVarP(&o.ascii, "ascii", "a", false, "print the banner before the output")

	f := root.Flags()
	f.BoolVarP(&o.list, "list", "l", false, "list every command in the catalog")
	f.StringVarP(&o.search, "search", "s", "", "print the commands containing the given text")
	f.BoolVarP(&o.ignoreCase, "ignorecase", "i", false, "ignore case when searching")
	f.BoolVar(&o.pick, "pick", false, "choose one command interactively and print it")

	root.AddCommand(
		newListCmd(o),
		newSearchCmd(o),
		newPathCmd(o),
		newValidateCmd(o),
		newInitCmd(o),
	)
	return root
}

func (o *rootOptions) configDir() string {
	if o.cfgFile != "" {
		return filepath.Dir(o.cfgFile)
	}
	dir := config.DefaultDir()
	if su := os.Getenv("SUDO_USER"); su != "" {
		if u, err := user.Lookup(su); err == nil && u.HomeDir != "" {
			dir = filepath.Join(u.HomeDir, ".config", "commands")
		}
	}
	return dir
}

func (o *rootOptions) initConfig() error {
	logging.SetVerbose(o.verbose)
	o.cfgDir = o.configDir()
	logging.Debug("config dir: " + o.cfgDir)
	cfg, err := config.Load(o.cfgDir)
	if err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	if o.catalogPath != "" {
		cfg.Catalog.Path = o.catalogPath
	}
	if o.format != "" {
		cfg.Output.Format = o.format
	}
	if o.color != "" {
		cfg.Output.Color = o.color
	}
	if err := config.ValidateAgainstSchema(cfg); err != nil {
		return fmt.Errorf("schema error: %w", err)
	}
	if cfg.Output.Color == config.ColorNever {
		text.DisableColors()
	}
	if cfg.Log.File != "" {
		p := cfg.Log.File
		if !filepath.IsAbs(p) {
			p = filepath.Join(o.cfgDir, p)
		}
		if err := logging.Init(p); err != nil {
			return fmt.Errorf("log file: %w", err)
		}
	}
	o.cfg = cfg
	return nil
}

func (o *rootOptions) resolvedCatalogPath() string {
	return catalog.DefaultPath(o.cfg.Catalog.Path)
}

func (o *rootOptions) newUI(out io.Writer) *console.ConsoleUI {
	f, _ := out.(*os.File)
	return console.NewConsoleUI(out, console.Options{
		Header: o.cfg.Catalog.Header,
		Legend: o.cfg.Catalog.Legend,
		Format: o.cfg.Output.Format,
		Color:  console.ColorEnabled(o.cfg.Output.Color, f),
	})
}

// run loads the catalog, filters it by q and prints the result. A nil q
// lists the whole catalog.
func (o *rootOptions) run(out io.Writer, q *catalog.Query) error {
	ui := o.newUI(out)
	if o.ascii {
		if err := ui.Banner(); err != nil {
			return err
		}
	}
	path := o.resolvedCatalogPath()
	logging.Debug("catalog: " + path)
	c, err := catalog.Load(path)
	if err != nil {
		return err
	}
	res := catalog.Select(c, q)
	if q != nil {
		logging.Debug(fmt.Sprintf("query %q ignorecase=%t: %d of %d entries", q.Text, q.IgnoreCase, res.Count(), c.Len()))
	}
	if o.pick && !res.Empty() {
		_, err := ui.Pick(res)
		return err
	}
	if q == nil {
		return ui.RunList(res)
	}
	return ui.RunSearch(res)
}
