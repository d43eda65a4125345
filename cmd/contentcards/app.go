package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/contentcards/internal/components"
	"github.com/alexisbeaulieu97/contentcards/internal/config"
	"github.com/alexisbeaulieu97/contentcards/internal/events"
	"github.com/alexisbeaulieu97/contentcards/internal/images"
	"github.com/alexisbeaulieu97/contentcards/internal/logger"
	"github.com/alexisbeaulieu97/contentcards/internal/navigation"
	"github.com/alexisbeaulieu97/contentcards/internal/provider"
	"github.com/alexisbeaulieu97/contentcards/internal/readstatus"
	"github.com/alexisbeaulieu97/contentcards/internal/state"
	"github.com/alexisbeaulieu97/contentcards/internal/style"
	"github.com/alexisbeaulieu97/contentcards/internal/tracking"
)

// AppContext bundles the long-lived services a command needs.
type AppContext struct {
	Config    config.Config
	Log       *logger.Logger
	Store     *readstatus.Store
	Journal   *tracking.Journal
	Publisher *tracking.Publisher
	Opener    events.URIOpener
	Images    *images.Manager
	Provider  *provider.File
	Handler   *events.CardEventHandler
	Policy    state.Policy
}

// newAppContext resolves configuration for cmd and wires every service
// from it. Logs go to logWriter.
func newAppContext(cmd *cobra.Command, flags *rootFlags, logWriter io.Writer) (*AppContext, error) {
	cfg, err := config.Load(flags.configPath, cmd.Flags())
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading configuration", err, "Check the config file, CONTENTCARDS_* variables and flags.")
	}

	level := cfg.LogLevel
	if flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{
		Level:         level,
		HumanReadable: cfg.LogHuman,
		Writer:        logWriter,
		Component:     "contentcards",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	theme, err := components.ThemeByName(cfg.Theme)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "selecting theme", err, "Use one of: default, dark, light.")
	}
	components.SetTheme(theme)

	store, err := readstatus.NewStore(cfg.ReadStatusPath)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "loading read status", err, "Remove or repair the read status file.")
	}

	journal, err := tracking.NewJournal(cfg.JournalPath)
	if err != nil {
		return nil, newCommandError(cmd.Name(), "opening event journal", err, "Check journal-path permissions.")
	}
	publisher := tracking.NewPublisher(surfaceName(cfg.Feed), log, journal)

	var opener events.URIOpener = navigation.NewSystemOpener(log)
	if !cfg.OpenURLs {
		opener = navigation.NewRecorder(log)
	}

	mgr, err := images.NewManager(images.Options{
		CacheDir: cfg.CacheDir,
		Timeout:  cfg.ImageTimeout,
		Logger:   log,
	})
	if err != nil {
		return nil, newCommandError(cmd.Name(), "preparing image cache", err, "Check cache-dir permissions.")
	}

	handler := events.NewCardEventHandler(publisher, opener, store,
		events.WithDismissRecorder(store),
		events.WithLogger(log),
	)

	return &AppContext{
		Config:    cfg,
		Log:       log,
		Store:     store,
		Journal:   journal,
		Publisher: publisher,
		Opener:    opener,
		Images:    mgr,
		Provider:  provider.NewFile(cfg.Feed, store, log, provider.WithCapacity(cfg.Capacity)),
		Handler:   handler,
		Policy:    policyFromName(cfg.Policy),
	}, nil
}

// RendererOptions applies configured style overrides on top of the theme
// defaults.
func (a *AppContext) RendererOptions() []components.RendererOption {
	var opts []components.RendererOption
	if w := a.Config.ImageWidth; w > 0 {
		small := components.NewSmallImageCardStyleBuilder().
			Image(&style.ImageStyle{Width: style.Ptr(w), Height: style.Ptr(w / 2)}).
			Build()
		opts = append(opts, components.WithSmallImageStyle(small))
	}
	return opts
}

func policyFromName(name string) state.Policy {
	if name == "propagate" {
		return state.PropagateItemsFailure
	}
	return state.DegradeToEmpty
}

// surfaceName derives the tracking surface from the feed file name.
func surfaceName(feedPath string) string {
	base := filepath.Base(feedPath)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
