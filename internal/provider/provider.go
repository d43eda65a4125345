package provider

import (
	"context"

	"github.com/alexisbeaulieu97/contentcards/internal/content"
	"github.com/alexisbeaulieu97/contentcards/internal/state"
)

// ContentProvider supplies the cards for a surface.
type ContentProvider interface {
	// Items returns a stream of card list results. The latest result, if
	// any, is delivered immediately. The channel closes when ctx is done.
	Items(ctx context.Context) <-chan state.Result[[]*content.Card]
	// Refresh triggers a new emission on every Items stream.
	Refresh(ctx context.Context) error
}

// TemplateProvider supplies the inbox container template for a surface.
type TemplateProvider interface {
	Template(ctx context.Context) <-chan state.Result[content.InboxTemplate]
	Refresh(ctx context.Context) error
}

// Hydrator restores persisted card flags onto freshly built cards.
type Hydrator interface {
	Hydrate(cards []*content.Card)
}
