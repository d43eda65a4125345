package events

import "github.com/alexisbeaulieu97/contentcards/internal/content"

// EventType identifies the kind of tracking call issued for a card.
type EventType string

const (
	TypeDisplay  EventType = "display"
	TypeDismiss  EventType = "dismiss"
	TypeInteract EventType = "interact"
)

// Event is delivered to a card's handler. The only implementations are
// Display, Dismiss and Interact.
type Event interface {
	event()
}

// Display is sent when a card becomes visible.
type Display struct{}

// Dismiss is sent when the user dismisses a card.
type Dismiss struct{}

// Interact is sent when the user acts on a card.
type Interact struct {
	Action Action
}

func (Display) event()  {}
func (Dismiss) event()  {}
func (Interact) event() {}

// Action is the user action carried by Interact. Click is the only
// implementation.
type Action interface {
	action()
}

// Click activates the card or one of its buttons. ID is the button id and is
// empty for a click on the card body. ActionURL may be empty.
type Click struct {
	ID        string
	ActionURL string
}

func (Click) action() {}

// Callback lets the host application observe card events. Any field may be
// nil. OnInteract returning true suppresses the default URL navigation.
type Callback struct {
	OnDisplay  func(card *content.Card)
	OnDismiss  func(card *content.Card)
	OnInteract func(card *content.Card, id, actionURL string) bool
}
