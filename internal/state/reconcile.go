package state

import (
	"context"

	"github.com/alexisbeaulieu97/contentcards/internal/content"
)

// Policy decides what happens when the template is available but the card
// list failed.
type Policy int

const (
	// PropagateItemsFailure surfaces the card list failure as Error. It is
	// selected with the propagate policy setting.
	PropagateItemsFailure Policy = iota
	// DegradeToEmpty reports Success with no cards. It is the default.
	DegradeToEmpty
)

func (p Policy) String() string {
	switch p {
	case PropagateItemsFailure:
		return "propagate"
	case DegradeToEmpty:
		return "degrade"
	default:
		return "unknown"
	}
}

// Reconcile combines the latest card list and template results into a
// single UIState. A template failure always wins; a card list failure is
// handled according to policy.
func Reconcile(items Result[[]*content.Card], tpl Result[content.InboxTemplate], policy Policy) UIState {
	if tpl.Failed() {
		return Error{Cause: tpl.Err}
	}
	if items.Failed() {
		if policy == DegradeToEmpty {
			return Success{Template: tpl.Value, Cards: []*content.Card{}}
		}
		return Error{Cause: items.Err}
	}
	cards := items.Value
	if cards == nil {
		cards = []*content.Card{}
	}
	return Success{Template: tpl.Value, Cards: cards}
}

// Reconciler keeps the most recent result from each source and recomputes
// the state on every update. It is not safe for concurrent use; Combine
// drives one from a single goroutine.
type Reconciler struct {
	policy   Policy
	items    *Result[[]*content.Card]
	template *Result[content.InboxTemplate]
}

// NewReconciler returns a Reconciler in the Loading state.
func NewReconciler(policy Policy) *Reconciler {
	return &Reconciler{policy: policy}
}

// SetItems records a card list result and returns the new state.
func (r *Reconciler) SetItems(res Result[[]*content.Card]) UIState {
	r.items = &res
	return r.State()
}

// SetTemplate records a template result and returns the new state.
func (r *Reconciler) SetTemplate(res Result[content.InboxTemplate]) UIState {
	r.template = &res
	return r.State()
}

// State returns Loading until both sources have reported, then the
// reconciliation of their latest results.
func (r *Reconciler) State() UIState {
	if r.items == nil || r.template == nil {
		return Loading{}
	}
	return Reconcile(*r.items, *r.template, r.policy)
}

// Combine pairs the latest emissions of both sources. The returned channel
// receives Loading first and then a recomputed state for every emission on
// either input. It is closed when ctx is done or both inputs are closed.
func Combine(
	ctx context.Context,
	items <-chan Result[[]*content.Card],
	templates <-chan Result[content.InboxTemplate],
	policy Policy,
) <-chan UIState {
	out := make(chan UIState, 1)

	go func() {
		defer close(out)

		r := NewReconciler(policy)
		send := func(s UIState) bool {
			select {
			case out <- s:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !send(r.State()) {
			return
		}

		for items != nil || templates != nil {
			var next UIState
			select {
			case <-ctx.Done():
				return
			case res, ok := <-items:
				if !ok {
					items = nil
					continue
				}
				next = r.SetItems(res)
			case res, ok := <-templates:
				if !ok {
					templates = nil
					continue
				}
				next = r.SetTemplate(res)
			}
			if !send(next) {
				return
			}
		}
	}()

	return out
}
