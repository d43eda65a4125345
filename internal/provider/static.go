package provider

import (
	"context"

	"github.com/alexisbeaulieu97/contentcards/internal/content"
	"github.com/alexisbeaulieu97/contentcards/internal/state"
)

// Static is an in-memory provider for hosts that push content themselves.
// Refresh re-emits the last published values.
type Static struct {
	items    *stream[state.Result[[]*content.Card]]
	template *stream[state.Result[content.InboxTemplate]]
}

// NewStatic returns an empty Static provider.
func NewStatic() *Static {
	return &Static{
		items:    newStream[state.Result[[]*content.Card]](),
		template: newStream[state.Result[content.InboxTemplate]](),
	}
}

// PublishItems emits a card list result.
func (s *Static) PublishItems(res state.Result[[]*content.Card]) {
	s.items.publish(res)
}

// PublishTemplate emits an inbox template result.
func (s *Static) PublishTemplate(res state.Result[content.InboxTemplate]) {
	s.template.publish(res)
}

// Items implements ContentProvider.
func (s *Static) Items(ctx context.Context) <-chan state.Result[[]*content.Card] {
	return s.items.subscribe(ctx)
}

// Template implements TemplateProvider.
func (s *Static) Template(ctx context.Context) <-chan state.Result[content.InboxTemplate] {
	return s.template.subscribe(ctx)
}

// Refresh re-emits the latest values, if any.
func (s *Static) Refresh(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.items.mu.Lock()
	items := s.items.latest
	s.items.mu.Unlock()
	if items != nil {
		s.items.publish(*items)
	}

	s.template.mu.Lock()
	tpl := s.template.latest
	s.template.mu.Unlock()
	if tpl != nil {
		s.template.publish(*tpl)
	}
	return nil
}

var (
	_ ContentProvider  = (*Static)(nil)
	_ TemplateProvider = (*Static)(nil)
)
