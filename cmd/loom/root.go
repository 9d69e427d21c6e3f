package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	theme      string
	mode       string
	logLevel   string
	logFile    string
	prefsFile  string
	watch      bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "loom",
		Short:         "loom is a themeable component gallery for the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// No subcommand launches the gallery.
			if len(args) == 0 {
				return runGallery(cmd, flags, galleryOptions{})
			}
			return cmd.Help()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVarP(&flags.configPath, "config", "c", "", "Settings file (default: $XDG_CONFIG_HOME/loom/config.yaml)")
	pf.StringVar(&flags.theme, "theme", "", "Theme document (.yaml, .yml or .toml)")
	pf.StringVar(&flags.mode, "mode", "", "Theme mode: auto, light or dark")
	pf.StringVar(&flags.logLevel, "log-level", "", "Log level: debug, info, warn or error")
	pf.StringVar(&flags.logFile, "log-file", "", "Write logs to this file")
	pf.StringVar(&flags.prefsFile, "prefs", "", "Preferences file (default: $XDG_CONFIG_HOME/loom/prefs.json)")
	pf.BoolVar(&flags.watch, "watch", false, "Reload the theme file when it changes")

	cmd.AddCommand(newGalleryCmd(flags))
	cmd.AddCommand(newTokensCmd(flags))
	cmd.AddCommand(newValidateCmd(flags))
	cmd.AddCommand(newDiffCmd())
	cmd.AddCommand(newStoriesCmd())
	cmd.AddCommand(newVersionCmd())

	return cmd
}
