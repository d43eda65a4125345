package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/contentcards/internal/config"
	"github.com/alexisbeaulieu97/contentcards/internal/events"
	"github.com/alexisbeaulieu97/contentcards/internal/tracking"
)

type eventsOptions struct {
	eventType  string
	cardID     string
	limit      int
	jsonOutput bool
}

func newEventsCmd(flags *rootFlags) *cobra.Command {
	opts := &eventsOptions{}

	cmd := &cobra.Command{
		Use:   "events",
		Short: "List tracked card events",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEvents(cmd, flags, opts)
		},
	}

	cmd.Flags().StringVar(&opts.eventType, "type", "", "Only show events of this type (display, dismiss, interact)")
	cmd.Flags().StringVar(&opts.cardID, "card", "", "Only show events for this card")
	cmd.Flags().IntVar(&opts.limit, "limit", 0, "Show at most this many of the latest events")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runEvents(cmd *cobra.Command, flags *rootFlags, opts *eventsOptions) error {
	switch events.EventType(opts.eventType) {
	case "", events.TypeDisplay, events.TypeDismiss, events.TypeInteract:
	default:
		return newCommandError("events", "filtering events", fmt.Errorf("unknown event type %q", opts.eventType), "Use one of: display, dismiss, interact.")
	}

	// The journal does not need a feed, so only the path is resolved.
	cfg, err := config.LoadPaths(flags.configPath, cmd.Flags())
	if err != nil {
		return newCommandError("events", "loading configuration", err, "Check the config file, CONTENTCARDS_* variables and flags.")
	}

	journal, err := tracking.NewJournal(cfg.JournalPath)
	if err != nil {
		return newCommandError("events", "opening event journal", err, "Check journal-path permissions.")
	}
	records, err := journal.ReadAll()
	if err != nil {
		return newCommandError("events", "reading event journal", err, "Remove or repair the journal file.")
	}

	records = filterRecords(records, opts)

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		if records == nil {
			records = []tracking.Record{}
		}
		return encoder.Encode(records)
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No card events recorded yet.")
		return nil
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "TIME\tTYPE\tCARD\tACTION\tSURFACE")
	for _, rec := range records {
		fmt.Fprintf(writer, "%s\t%s\t%s\t%s\t%s\n",
			rec.At.Local().Format(time.DateTime),
			rec.Type,
			rec.CardID,
			valueOrFallback(rec.ActionID, "-"),
			valueOrFallback(rec.Surface, "-"),
		)
	}
	return writer.Flush()
}

func filterRecords(records []tracking.Record, opts *eventsOptions) []tracking.Record {
	var out []tracking.Record
	for _, rec := range records {
		if opts.eventType != "" && string(rec.Type) != opts.eventType {
			continue
		}
		if opts.cardID != "" && rec.CardID != opts.cardID {
			continue
		}
		out = append(out, rec)
	}
	if opts.limit > 0 && len(out) > opts.limit {
		out = out[len(out)-opts.limit:]
	}
	return out
}

func valueOrFallback(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
