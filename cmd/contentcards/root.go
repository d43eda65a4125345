package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "contentcards",
		Short:         "Browse content cards in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Without a subcommand, open the inbox
			if len(args) == 0 {
				return runInbox(cmd, flags)
			}
			return cmd.Help()
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", "", "Config file (default ~/.config/contentcards/config.yml)")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	pf.String("feed", "", "Card feed YAML file")
	pf.String("log-level", "info", "Log level (trace, debug, info, warn, error)")
	pf.String("theme", "default", "Colour theme (default, dark, light)")
	pf.Int("capacity", 0, "Maximum cards shown, overriding the feed")
	pf.Bool("open-urls", true, "Open action URLs in the system browser")
	pf.String("policy", "degrade", "Card list failure handling (propagate, degrade)")
	pf.Int("image-width", 0, "Thumbnail width in cells for small image cards")
	pf.Duration("refresh-interval", 0, "Re-read the feed on this interval")

	cmd.AddCommand(newInboxCmd(flags))
	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newEventsCmd(flags))
	cmd.AddCommand(newResetCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
