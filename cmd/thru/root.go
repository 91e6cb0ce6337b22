package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/thru/internal/app"
	"github.com/five82/thru/internal/config"
)

// rootOptions holds the persistent flag values shared by every subcommand.
type rootOptions struct {
	configPath  string
	prefsPath   string
	catalogPath string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:   "thru",
		Short: "Browse epic long-distance hiking trails",
		Long: `thru is a terminal catalog of long-distance hiking trails.

Run without a subcommand to open the interactive map and card grid.
Selecting a trail highlights it on the map and draws its route; "learn
more" opens the full detail view.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.Run(cmd.Context(), app.Options{
				ConfigPath:  opts.configPath,
				PrefsPath:   opts.prefsPath,
				CatalogPath: opts.catalogPath,
			})
		},
	}

	cmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default: ~/.config/thru/config.toml)")
	cmd.PersistentFlags().StringVar(&opts.prefsPath, "prefs", "", "UI preferences file (default: ~/.config/thru/prefs.toml)")
	cmd.PersistentFlags().StringVar(&opts.catalogPath, "catalog", "", "trail catalog file, TOML or YAML (default: embedded catalog)")

	cmd.AddCommand(newListCmd(opts))
	cmd.AddCommand(newShowCmd(opts))
	cmd.AddCommand(newValidateCmd(opts))
	cmd.AddCommand(newRouteCmd(opts))

	return cmd
}

// loadConfig reads the config file named by --config.
func (o *rootOptions) loadConfig() (config.Config, error) {
	return config.Load(o.configPath)
}

// loadTrails resolves the catalog from --catalog or the config file.
func (o *rootOptions) loadTrails() (config.Config, app.Trails, error) {
	cfg, err := o.loadConfig()
	if err != nil {
		return config.Config{}, app.Trails{}, err
	}
	path, err := app.CatalogPath(cfg, o.catalogPath)
	if err != nil {
		return config.Config{}, app.Trails{}, err
	}
	trails, err := app.LoadTrails(path)
	if err != nil {
		return config.Config{}, app.Trails{}, err
	}
	return cfg, trails, nil
}
