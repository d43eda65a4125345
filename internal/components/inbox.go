package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/contentcards/internal/content"
	"github.com/alexisbeaulieu97/contentcards/internal/state"
	"github.com/alexisbeaulieu97/contentcards/internal/style"
)

const defaultEmptyMessage = "You're all caught up"

// Selection is the inbox cursor: an index into the visible cards and the
// focused button of that card (-1 for the card body).
type Selection struct {
	Card   int
	Button int
}

// Inbox draws a UI state. Loading and Error use the configured views.
func (r *Renderer) Inbox(st state.UIState, sel Selection, vc ViewContext) string {
	switch s := st.(type) {
	case state.Success:
		return r.success(s, sel, vc)
	case state.Error:
		return r.failed(s, vc)
	default:
		return r.loading(vc)
	}
}

func (r *Renderer) success(s state.Success, sel Selection, vc ViewContext) string {
	visible := s.Visible()
	heading := r.heading(s.Template, visible)

	if len(visible) == 0 {
		return joinVertical(lipgloss.Left, 1, heading, r.empty(s.Template, vc))
	}

	d := r.unreadDecoration(s.Template)
	blocks := make([]string, 0, len(visible))
	for i, card := range visible {
		focus := NoFocus
		if i == sel.Card {
			focus = Focus{Selected: true, Button: sel.Button}
		}
		cd := decoration{}
		if s.Template.UnreadEnabled && card.State.TracksRead() && !card.State.IsRead() {
			cd = d
		}
		blocks = append(blocks, r.card(card, focus, cd))
	}

	list := r.inbox.List
	var body string
	if s.Template.Layout == content.Horizontal {
		body = joinHorizontal(lipgloss.Top, list.Spacing(), blocks...)
	} else {
		body = joinVertical(list.Position(), list.Spacing(), blocks...)
	}
	body = list.Apply(lipgloss.NewStyle()).Render(body)

	return joinVertical(lipgloss.Left, 1, heading, body)
}

// heading draws the inbox title followed by the unread badge when read
// tracking is shown.
func (r *Renderer) heading(tpl content.InboxTemplate, visible []*content.Card) string {
	title := ""
	if tpl.Heading.Content != "" {
		title = r.inbox.Heading.Apply(lipgloss.NewStyle()).Render(tpl.Heading.Content)
	}
	if !tpl.UnreadEnabled {
		return title
	}
	n := content.Unread(visible)
	if n == 0 {
		return title
	}
	badge := r.inbox.UnreadIndicator.Render("●") + fmt.Sprintf(" %d unread", n)
	return joinHorizontal(lipgloss.Top, 2, title, badge)
}

// unreadDecoration resolves the indicator for unread cards. Template values
// win over the style.
func (r *Renderer) unreadDecoration(tpl content.InboxTemplate) decoration {
	icon := r.inbox.UnreadIndicator
	d := decoration{background: r.inbox.UnreadBackground}

	glyph := "●"
	if ind := tpl.UnreadIndicator; ind != nil {
		if ind.Glyph != "" {
			glyph = ind.Glyph
			icon.Glyph = nil
		}
		if ind.Background != "" {
			d.background = &style.Color{Light: ind.Background, Dark: ind.Background}
		}
		d.indicatorEnd = ind.Placement == content.IndicatorTopEnd
	}
	d.indicator = icon.Render(glyph)
	return d
}

func (r *Renderer) empty(tpl content.InboxTemplate, vc ViewContext) string {
	width := vc.Width
	if width <= 0 {
		width = defaultCardWidth
	}

	var img string
	if tpl.EmptyImage != nil && r.inbox.EmptyImage.Visible() {
		w, h := r.inbox.EmptyImage.Size()
		if w <= 0 || w > width {
			w = width
		}
		img = r.inbox.EmptyImage.Apply(lipgloss.NewStyle()).Render(r.image(*tpl.EmptyImage, w, h))
		img = lipgloss.PlaceHorizontal(width, lipgloss.Center, img)
	}

	msg := tpl.EmptyMessage.Content
	if msg == "" {
		msg = defaultEmptyMessage
	}
	return joinVertical(lipgloss.Center, 1, img, renderText(msg, r.inbox.EmptyMessage, width))
}

// DefaultLoadingView shows the spinner frame and a short label.
func DefaultLoadingView(ctx ViewContext) string {
	label := lipgloss.NewStyle().Foreground(GetTheme().Palette.Neutral.Base).Render("Loading cards…")
	if ctx.Spinner == "" {
		return label
	}
	return ctx.Spinner + " " + label
}

// DefaultErrorView shows the failure and how to retry.
func DefaultErrorView(err error, ctx ViewContext) string {
	msg := "unknown error"
	if err != nil {
		msg = err.Error()
	}
	palette := GetTheme().Palette
	width := ctx.Width
	if width <= 0 {
		width = defaultCardWidth
	}
	title := lipgloss.NewStyle().Foreground(palette.Danger.Base).Bold(true).Render("Couldn't load cards")
	detail := lipgloss.NewStyle().Foreground(palette.Neutral.Base).Render(wrapText(msg, width))
	hint := lipgloss.NewStyle().Foreground(palette.Neutral.Muted).Faint(true).Render("press r to retry")
	return joinVertical(lipgloss.Left, 0, title, detail, hint)
}
