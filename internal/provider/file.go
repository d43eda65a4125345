package provider

import (
	"context"
	"time"

	"github.com/alexisbeaulieu97/contentcards/internal/content"
	"github.com/alexisbeaulieu97/contentcards/internal/feed"
	"github.com/alexisbeaulieu97/contentcards/internal/logger"
	"github.com/alexisbeaulieu97/contentcards/internal/state"
	ccerrors "github.com/alexisbeaulieu97/contentcards/pkg/errors"
)

// File serves cards and the inbox template from a YAML feed on disk. Every
// Refresh re-reads the file and emits fresh cards, hydrated from the
// Hydrator when one is set.
type File struct {
	path     string
	hydrator Hydrator
	log      *logger.Logger
	capacity int

	items    *stream[state.Result[[]*content.Card]]
	template *stream[state.Result[content.InboxTemplate]]
}

// FileOption customises a File provider.
type FileOption func(*File)

// WithCapacity overrides the capacity declared in the feed. Zero keeps the
// feed's value.
func WithCapacity(n int) FileOption {
	return func(f *File) { f.capacity = n }
}

// NewFile creates a provider for the feed at path. hydrator may be nil.
func NewFile(path string, hydrator Hydrator, log *logger.Logger, opts ...FileOption) *File {
	f := &File{
		path:     path,
		hydrator: hydrator,
		log:      log.With("component", "provider", "feed", path),
		items:    newStream[state.Result[[]*content.Card]](),
		template: newStream[state.Result[content.InboxTemplate]](),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Items implements ContentProvider.
func (f *File) Items(ctx context.Context) <-chan state.Result[[]*content.Card] {
	return f.items.subscribe(ctx)
}

// Template implements TemplateProvider.
func (f *File) Template(ctx context.Context) <-chan state.Result[content.InboxTemplate] {
	return f.template.subscribe(ctx)
}

// Refresh re-reads the feed. Parse failures are emitted on both streams and
// also returned.
func (f *File) Refresh(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	doc, err := feed.ParseFile(f.path)
	if err != nil {
		wrapped := ccerrors.NewProviderError("file", f.path, err)
		f.log.Error(err, "feed refresh failed")
		f.items.publish(state.Fail[[]*content.Card](wrapped))
		f.template.publish(state.Fail[content.InboxTemplate](wrapped))
		return wrapped
	}

	cards := doc.NewCards()
	if f.hydrator != nil {
		f.hydrator.Hydrate(cards)
	}

	inbox := doc.Inbox
	if f.capacity > 0 {
		inbox.Capacity = f.capacity
	}

	f.log.Debug("feed refreshed", "cards", len(cards), "surface", inbox.Surface)
	f.template.publish(state.Ok(inbox))
	f.items.publish(state.Ok(cards))
	return nil
}

// Poll refreshes every interval until ctx is done. Refresh errors are
// already delivered on the streams, so Poll only logs them.
func (f *File) Poll(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := f.Refresh(ctx); err != nil && ctx.Err() == nil {
				f.log.Warn("scheduled refresh failed", "error", err.Error())
			}
		}
	}
}

var (
	_ ContentProvider  = (*File)(nil)
	_ TemplateProvider = (*File)(nil)
)
