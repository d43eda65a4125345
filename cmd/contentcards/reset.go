package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/contentcards/internal/config"
	"github.com/alexisbeaulieu97/contentcards/internal/readstatus"
)

type resetOptions struct {
	all bool
}

func newResetCmd(flags *rootFlags) *cobra.Command {
	opts := &resetOptions{}

	cmd := &cobra.Command{
		Use:   "reset [card-id...]",
		Short: "Forget read and dismissed state for cards",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runReset(cmd, flags, opts, args)
		},
	}

	cmd.Flags().BoolVar(&opts.all, "all", false, "Forget every card")

	return cmd
}

func runReset(cmd *cobra.Command, flags *rootFlags, opts *resetOptions, ids []string) error {
	if !opts.all && len(ids) == 0 {
		return newCommandError("reset", "choosing cards", errors.New("no card ids given"), "Pass card ids or --all.")
	}

	cfg, err := config.LoadPaths(flags.configPath, cmd.Flags())
	if err != nil {
		return newCommandError("reset", "loading configuration", err, "Check the config file, CONTENTCARDS_* variables and flags.")
	}

	store, err := readstatus.NewStore(cfg.ReadStatusPath)
	if err != nil {
		return newCommandError("reset", "loading read status", err, "Remove or repair the read status file.")
	}

	if opts.all {
		n := len(store.IDs())
		if err := store.Clear(); err != nil {
			return newCommandError("reset", "clearing read status", err, "Check read-status-path permissions.")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Forgot %d card(s).\n", n)
		return nil
	}

	for _, id := range ids {
		if _, ok := store.Get(id); !ok {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: no saved state\n", id)
			continue
		}
		if err := store.Forget(id); err != nil {
			return newCommandError("reset", "forgetting "+id, err, "Check read-status-path permissions.")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: forgotten\n", id)
	}
	return nil
}
