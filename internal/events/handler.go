package events

import (
	"context"
	"fmt"

	"github.com/alexisbeaulieu97/contentcards/internal/content"
	"github.com/alexisbeaulieu97/contentcards/internal/logger"
)

// TrackRequest is a single call into the tracking sink.
type TrackRequest struct {
	CardID   string
	ActionID string
	Type     EventType
}

// Tracker forwards card events to the analytics backend.
type Tracker interface {
	Track(ctx context.Context, req TrackRequest) error
}

// URIOpener performs the default navigation for a clicked card.
type URIOpener interface {
	OpenURI(ctx context.Context, uri string) error
}

// ReadStatusSetter persists the read flag of a card.
type ReadStatusSetter interface {
	SetReadStatus(ctx context.Context, cardID string, read bool) error
}

// DismissRecorder persists dismissals so a refreshed feed keeps the card
// hidden.
type DismissRecorder interface {
	RecordDismissal(ctx context.Context, cardID string) error
}

// Observer receives events for rendered cards.
type Observer interface {
	OnEvent(ctx context.Context, ev Event, card *content.Card) error
}

// CardEventHandler applies card events to the card's state and forwards them
// to the injected collaborators. It performs no I/O itself.
type CardEventHandler struct {
	tracker   Tracker
	opener    URIOpener
	readState ReadStatusSetter
	dismisses DismissRecorder
	callback  Callback
	log       *logger.Logger
}

// Option customises a CardEventHandler.
type Option func(*CardEventHandler)

// WithCallback registers host callbacks.
func WithCallback(cb Callback) Option {
	return func(h *CardEventHandler) { h.callback = cb }
}

// WithDismissRecorder persists dismissals through r.
func WithDismissRecorder(r DismissRecorder) Option {
	return func(h *CardEventHandler) { h.dismisses = r }
}

// WithLogger sets the handler's logger.
func WithLogger(log *logger.Logger) Option {
	return func(h *CardEventHandler) { h.log = log }
}

// NewCardEventHandler wires a handler to its collaborators.
func NewCardEventHandler(tracker Tracker, opener URIOpener, readState ReadStatusSetter, opts ...Option) *CardEventHandler {
	h := &CardEventHandler{
		tracker:   tracker,
		opener:    opener,
		readState: readState,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// OnEvent handles ev for card. Display and Dismiss are tracked once per card;
// every Interact is tracked. Collaborator errors are returned to the caller.
func (h *CardEventHandler) OnEvent(ctx context.Context, ev Event, card *content.Card) error {
	if card == nil || card.State == nil {
		return fmt.Errorf("event %T: card has no state", ev)
	}

	switch e := ev.(type) {
	case Display:
		return h.display(ctx, card)
	case Dismiss:
		return h.dismiss(ctx, card)
	case Interact:
		return h.interact(ctx, card, e.Action)
	default:
		return fmt.Errorf("unsupported event %T", ev)
	}
}

func (h *CardEventHandler) display(ctx context.Context, card *content.Card) error {
	if card.State.Displayed {
		return nil
	}
	// The flag flips only once tracking succeeded so a failed event can be
	// delivered again.
	if err := h.track(ctx, card, "", TypeDisplay); err != nil {
		return err
	}
	card.State.Displayed = true
	if h.callback.OnDisplay != nil {
		h.callback.OnDisplay(card)
	}
	h.log.Debug("card displayed", "card_id", card.ID)
	return nil
}

func (h *CardEventHandler) dismiss(ctx context.Context, card *content.Card) error {
	if card.State.Dismissed {
		return nil
	}
	if err := h.track(ctx, card, "", TypeDismiss); err != nil {
		return err
	}
	card.State.Dismissed = true
	if h.dismisses != nil {
		if err := h.dismisses.RecordDismissal(ctx, card.ID); err != nil {
			return fmt.Errorf("record dismissal of %s: %w", card.ID, err)
		}
	}
	if h.callback.OnDismiss != nil {
		h.callback.OnDismiss(card)
	}
	h.log.Debug("card dismissed", "card_id", card.ID)
	return nil
}

func (h *CardEventHandler) interact(ctx context.Context, card *content.Card, action Action) error {
	click, ok := action.(Click)
	if !ok {
		return fmt.Errorf("unsupported action %T", action)
	}

	if err := h.track(ctx, card, click.ID, TypeInteract); err != nil {
		return err
	}

	handled := false
	if h.callback.OnInteract != nil {
		handled = h.callback.OnInteract(card, click.ID, click.ActionURL)
	}
	if !handled && click.ActionURL != "" {
		if h.opener == nil {
			return fmt.Errorf("open %s: no URI opener configured", click.ActionURL)
		}
		if err := h.opener.OpenURI(ctx, click.ActionURL); err != nil {
			return fmt.Errorf("open %s: %w", click.ActionURL, err)
		}
	}

	if card.State.TracksRead() {
		if h.readState != nil {
			if err := h.readState.SetReadStatus(ctx, card.ID, true); err != nil {
				return fmt.Errorf("mark %s read: %w", card.ID, err)
			}
		}
		read := true
		card.State.Read = &read
	}

	h.log.Debug("card interaction", "card_id", card.ID, "action_id", click.ID, "handled", handled)
	return nil
}

func (h *CardEventHandler) track(ctx context.Context, card *content.Card, actionID string, typ EventType) error {
	if h.tracker == nil {
		return nil
	}
	err := h.tracker.Track(ctx, TrackRequest{CardID: card.ID, ActionID: actionID, Type: typ})
	if err != nil {
		return fmt.Errorf("track %s for %s: %w", typ, card.ID, err)
	}
	return nil
}

var _ Observer = (*CardEventHandler)(nil)
