package state

import "github.com/alexisbeaulieu97/contentcards/internal/content"

// UIState is the displayable state of an inbox surface. The only
// implementations are Loading, Success and Error; consumers switch on the
// concrete type.
type UIState interface {
	uiState()
}

// Loading is reported until both the template and the card list have been
// received at least once.
type Loading struct{}

// Success carries the inbox template and every card received, in provider
// order. Cards may be empty.
type Success struct {
	Template content.InboxTemplate
	Cards    []*content.Card
}

// Error is a displayable failure for the current snapshot only. A later
// successful emission replaces it.
type Error struct {
	Cause error
}

func (Loading) uiState() {}
func (Success) uiState() {}
func (Error) uiState()   {}

// Visible returns the cards to render now: dismissed cards removed, then the
// list cut to the template capacity.
func (s Success) Visible() []*content.Card {
	return content.Visible(s.Cards, s.Template.Capacity)
}

func (e Error) Error() string {
	if e.Cause == nil {
		return "unknown error"
	}
	return e.Cause.Error()
}

// Unwrap exposes the cause.
func (e Error) Unwrap() error {
	return e.Cause
}
