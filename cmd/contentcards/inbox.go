package main

import (
	"context"
	"fmt"
	"io"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/contentcards/internal/state"
	"github.com/alexisbeaulieu97/contentcards/internal/tui/inbox"
)

func newInboxCmd(flags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inbox",
		Short: "Open the interactive card inbox",
		Long:  `Open the interactive inbox. Cards are read from the configured feed; opening a card marks it read and dismissed cards stay hidden across runs.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runInbox(cmd, flags)
		},
	}

	return cmd
}

func runInbox(cmd *cobra.Command, flags *rootFlags) error {
	// Logs share the terminal with the alternate screen, so they are dropped unless --verbose.
	var logWriter io.Writer = io.Discard
	if flags.verbose {
		logWriter = cmd.ErrOrStderr()
	}

	app, err := newAppContext(cmd, flags, logWriter)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	states := state.Combine(ctx, app.Provider.Items(ctx), app.Provider.Template(ctx), app.Policy)
	if app.Config.RefreshInterval > 0 {
		go app.Provider.Poll(ctx, app.Config.RefreshInterval)
	}

	app.Log.Info("opening inbox", "feed", app.Config.Feed, "policy", app.Policy.String())

	m := inbox.NewModel(ctx, states,
		inbox.WithRefresher(app.Provider),
		inbox.WithObserver(app.Handler),
		inbox.WithImageLoader(app.Images),
		inbox.WithLogger(app.Log),
		inbox.WithRendererOptions(app.RendererOptions()...),
	)

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		app.Log.Error(err, "inbox execution failed")
		return fmt.Errorf("failed to run inbox: %w", err)
	}

	app.Log.Info("inbox closed")
	return nil
}
