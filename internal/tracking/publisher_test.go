package tracking

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/contentcards/internal/events"
	"github.com/alexisbeaulieu97/contentcards/internal/logger"
)

type failingSink struct{ err error }

func (f failingSink) Write(Record) error { return f.err }

func TestPublisherWritesJournalAndLogs(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	journal, err := NewJournal(filepath.Join(t.TempDir(), "events", "journal.jsonl"))
	require.NoError(t, err)

	pub := NewPublisher("home", log, journal)
	pub.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC) }

	ctx := context.Background()
	require.NoError(t, pub.Track(ctx, events.TrackRequest{CardID: "c1", Type: events.TypeDisplay}))
	require.NoError(t, pub.Track(ctx, events.TrackRequest{CardID: "c1", ActionID: "btn1", Type: events.TypeInteract}))

	records, err := journal.ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, events.TypeDisplay, records[0].Type)
	assert.Equal(t, "btn1", records[1].ActionID)
	assert.Equal(t, "home", records[1].Surface)
	assert.NotEmpty(t, records[0].ID)
	assert.NotEqual(t, records[0].ID, records[1].ID)
	assert.Equal(t, 2026, records[0].At.Year())

	assert.Contains(t, buf.String(), "card event")
	assert.Contains(t, buf.String(), `"card_id":"c1"`)
}

func TestPublisherSinkFailurePropagates(t *testing.T) {
	t.Parallel()

	boom := errors.New("disk full")
	pub := NewPublisher("home", logger.Nop(), failingSink{err: boom})

	err := pub.Track(context.Background(), events.TrackRequest{CardID: "c", Type: events.TypeDismiss})
	assert.ErrorIs(t, err, boom)
}

func TestPublisherSubscribers(t *testing.T) {
	t.Parallel()

	pub := NewPublisher("home", logger.Nop(), nil)

	var displays, interacts int
	sub := pub.Subscribe(events.TypeDisplay, func(context.Context, Record) error {
		displays++
		return nil
	})
	pub.Subscribe(events.TypeInteract, func(context.Context, Record) error {
		interacts++
		return errors.New("ignored")
	})

	ctx := context.Background()
	require.NoError(t, pub.Track(ctx, events.TrackRequest{CardID: "c", Type: events.TypeDisplay}))
	require.NoError(t, pub.Track(ctx, events.TrackRequest{CardID: "c", Type: events.TypeInteract}))

	sub.Unsubscribe()
	require.NoError(t, pub.Track(ctx, events.TrackRequest{CardID: "c", Type: events.TypeDisplay}))

	assert.Equal(t, 1, displays)
	assert.Equal(t, 1, interacts)

	pub.Subscribe(events.TypeDismiss, nil).Unsubscribe()
}

func TestJournalReadAllMissingFile(t *testing.T) {
	t.Parallel()

	journal, err := NewJournal(filepath.Join(t.TempDir(), "missing.jsonl"))
	require.NoError(t, err)

	records, err := journal.ReadAll()
	require.NoError(t, err)
	assert.Empty(t, records)
}
