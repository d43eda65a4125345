package tracking

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/alexisbeaulieu97/contentcards/internal/events"
	"github.com/alexisbeaulieu97/contentcards/internal/logger"
)

// Record is one tracked card event as delivered to subscribers and the
// journal.
type Record struct {
	ID       string           `json:"id"`
	Surface  string           `json:"surface,omitempty"`
	CardID   string           `json:"card_id"`
	ActionID string           `json:"action_id,omitempty"`
	Type     events.EventType `json:"type"`
	At       time.Time        `json:"at"`
}

// Handler receives published records.
type Handler func(ctx context.Context, rec Record) error

// Sink persists records. Journal is the file-backed implementation.
type Sink interface {
	Write(rec Record) error
}

// Publisher is the tracking sink handed to card event handlers. Every event
// is logged, written to the optional sink, then fanned out to subscribers.
type Publisher struct {
	surface string
	log     *logger.Logger
	sink    Sink
	now     func() time.Time

	mu     sync.RWMutex
	subs   map[events.EventType][]subscriptionEntry
	nextID int
}

// NewPublisher creates a Publisher for surface. sink may be nil.
func NewPublisher(surface string, log *logger.Logger, sink Sink) *Publisher {
	return &Publisher{
		surface: surface,
		log:     log.With("component", "tracking"),
		sink:    sink,
		now:     time.Now,
		subs:    make(map[events.EventType][]subscriptionEntry),
	}
}

// Track implements events.Tracker. Sink failures are returned; subscriber
// failures are only logged.
func (p *Publisher) Track(ctx context.Context, req events.TrackRequest) error {
	rec := Record{
		ID:       uuid.NewString(),
		Surface:  p.surface,
		CardID:   req.CardID,
		ActionID: req.ActionID,
		Type:     req.Type,
		At:       p.now().UTC(),
	}

	p.log.Info("card event", "event_id", rec.ID, "type", string(rec.Type), "card_id", rec.CardID, "action_id", rec.ActionID)

	if p.sink != nil {
		if err := p.sink.Write(rec); err != nil {
			return err
		}
	}

	p.mu.RLock()
	handlers := append([]subscriptionEntry(nil), p.subs[req.Type]...)
	p.mu.RUnlock()

	for _, entry := range handlers {
		if err := entry.handler(ctx, rec); err != nil {
			p.log.Warn("tracking subscriber failed", "type", string(rec.Type), "error", err.Error())
		}
	}
	return nil
}

// Subscribe registers handler for one event type.
func (p *Publisher) Subscribe(typ events.EventType, handler Handler) Subscription {
	if handler == nil {
		return noopSubscription{}
	}
	p.mu.Lock()
	p.nextID++
	id := p.nextID
	p.subs[typ] = append(p.subs[typ], subscriptionEntry{id: id, handler: handler})
	p.mu.Unlock()

	return subscription{
		cancel: func() {
			p.mu.Lock()
			defer p.mu.Unlock()
			handlers := p.subs[typ]
			for i, entry := range handlers {
				if entry.id == id {
					p.subs[typ] = append(handlers[:i:i], handlers[i+1:]...)
					break
				}
			}
		},
	}
}

// Subscription cancels a registered handler.
type Subscription interface {
	Unsubscribe()
}

type noopSubscription struct{}

func (noopSubscription) Unsubscribe() {}

type subscription struct {
	cancel func()
}

func (s subscription) Unsubscribe() {
	if s.cancel != nil {
		s.cancel()
	}
}

type subscriptionEntry struct {
	id      int
	handler Handler
}

var _ events.Tracker = (*Publisher)(nil)
