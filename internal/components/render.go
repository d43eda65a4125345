package components

import (
	"image"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/contentcards/internal/content"
	"github.com/alexisbeaulieu97/contentcards/internal/images"
	"github.com/alexisbeaulieu97/contentcards/internal/style"
)

// ImageSource looks up decoded images by URL. It reports false while an
// image is loading or after it failed.
type ImageSource interface {
	Lookup(url string) (image.Image, bool)
}

// Focus marks a card as selected. Button is the index of the focused action
// button, or -1 when the card body itself is focused.
type Focus struct {
	Selected bool
	Button   int
}

// NoFocus renders a card without selection highlights.
var NoFocus = Focus{Button: -1}

// ViewContext carries per-frame data to the loading and error views.
type ViewContext struct {
	Width   int
	Spinner string
}

// LoadingView draws the Loading state.
type LoadingView func(ctx ViewContext) string

// ErrorView draws the Error state.
type ErrorView func(err error, ctx ViewContext) string

// Renderer draws cards and the inbox with resolved composite styles.
type Renderer struct {
	small     SmallImageCardStyle
	large     LargeImageCardStyle
	imageOnly ImageOnlyCardStyle
	inbox     InboxStyle

	images  ImageSource
	dark    bool
	darkSet bool

	loading LoadingView
	failed  ErrorView
}

// RendererOption configures a Renderer.
type RendererOption func(*Renderer)

func WithSmallImageStyle(s SmallImageCardStyle) RendererOption {
	return func(r *Renderer) { r.small = s }
}

func WithLargeImageStyle(s LargeImageCardStyle) RendererOption {
	return func(r *Renderer) { r.large = s }
}

func WithImageOnlyStyle(s ImageOnlyCardStyle) RendererOption {
	return func(r *Renderer) { r.imageOnly = s }
}

func WithInboxStyle(s InboxStyle) RendererOption {
	return func(r *Renderer) { r.inbox = s }
}

// WithImages sets where decoded card images come from. Without it every
// image renders as a placeholder.
func WithImages(src ImageSource) RendererOption {
	return func(r *Renderer) { r.images = src }
}

// WithDarkBackground overrides terminal background detection, which picks
// between an image's light and dark URL.
func WithDarkBackground(dark bool) RendererOption {
	return func(r *Renderer) {
		r.dark = dark
		r.darkSet = true
	}
}

// WithLoadingView replaces the default loading view.
func WithLoadingView(v LoadingView) RendererOption {
	return func(r *Renderer) {
		if v != nil {
			r.loading = v
		}
	}
}

// WithErrorView replaces the default error view.
func WithErrorView(v ErrorView) RendererOption {
	return func(r *Renderer) {
		if v != nil {
			r.failed = v
		}
	}
}

// NewRenderer creates a Renderer using the default styles unless options
// replace them.
func NewRenderer(opts ...RendererOption) *Renderer {
	r := &Renderer{
		small:     DefaultSmallImageCardStyle(),
		large:     DefaultLargeImageCardStyle(),
		imageOnly: DefaultImageOnlyCardStyle(),
		inbox:     DefaultInboxStyle(),
		loading:   DefaultLoadingView,
		failed:    DefaultErrorView,
	}
	for _, opt := range opts {
		opt(r)
	}
	if !r.darkSet {
		r.dark = lipgloss.HasDarkBackground()
	}
	return r
}

// CardEnabled reports whether the card's style accepts clicks.
func (r *Renderer) CardEnabled(card *content.Card) bool {
	if card == nil {
		return false
	}
	switch card.Template.(type) {
	case content.SmallImageTemplate:
		return r.small.Card.IsEnabled()
	case content.LargeImageTemplate:
		return r.large.Card.IsEnabled()
	case content.ImageOnlyTemplate:
		return r.imageOnly.Card.IsEnabled()
	default:
		return false
	}
}

// ButtonEnabled reports whether button i of the card accepts clicks.
func (r *Renderer) ButtonEnabled(card *content.Card, i int) bool {
	if card == nil || i < 0 || i >= MaxButtons || i >= len(content.ButtonsOf(card.Template)) {
		return false
	}
	switch card.Template.(type) {
	case content.SmallImageTemplate:
		return r.small.Buttons[i].IsEnabled()
	case content.LargeImageTemplate:
		return r.large.Buttons[i].IsEnabled()
	default:
		return false
	}
}

// Card draws a single card.
func (r *Renderer) Card(card *content.Card, focus Focus) string {
	return r.card(card, focus, decoration{})
}

// decoration carries inbox-level adornments onto a card.
type decoration struct {
	indicator    string
	indicatorEnd bool
	background   *style.Color
}

func (r *Renderer) card(card *content.Card, focus Focus, d decoration) string {
	if card == nil {
		return ""
	}
	switch t := card.Template.(type) {
	case content.SmallImageTemplate:
		return r.smallImage(t, focus, d)
	case content.LargeImageTemplate:
		return r.largeImage(t, focus, d)
	case content.ImageOnlyTemplate:
		return r.imageOnlyCard(t, focus, d)
	default:
		return ""
	}
}

func (r *Renderer) smallImage(t content.SmallImageTemplate, focus Focus, d decoration) string {
	s := r.small
	inner := innerWidth(s.Card.Box)

	var img string
	imgWidth := 0
	if t.Image != nil && s.Image.Visible() {
		w, h := s.Image.Size()
		if w <= 0 {
			w = inner / 3
		}
		imgWidth = w
		img = s.Image.Apply(lipgloss.NewStyle()).Render(r.image(*t.Image, w, h))
	}

	textWidth := inner
	if img != "" {
		textWidth = inner - imgWidth - s.RootRow.Spacing()
		if textWidth < 1 {
			textWidth = 1
		}
	}

	text := joinVertical(s.TextColumn.Position(), s.TextColumn.Spacing(),
		renderText(t.Title.Content, s.Title, textWidth),
		bodyText(t.Body, s.Body, textWidth),
		buttonRow(t.Buttons, s.Buttons, s.ButtonRow, focus),
	)
	text = s.TextColumn.Apply(lipgloss.NewStyle()).Render(text)

	root := joinHorizontal(lipgloss.Top, s.RootRow.Spacing(), img, text)
	root = s.RootRow.Apply(lipgloss.NewStyle()).Render(root)
	return r.frame(s.Card, root, inner, s.DismissIcon, s.DismissAlignment, t.Dismiss, focus, d)
}

func (r *Renderer) largeImage(t content.LargeImageTemplate, focus Focus, d decoration) string {
	s := r.large
	inner := innerWidth(s.Card.Box)

	var img string
	if t.Image != nil && s.Image.Visible() {
		w, h := s.Image.Size()
		if w <= 0 {
			w = inner
		}
		img = s.Image.Apply(lipgloss.NewStyle()).Render(r.image(*t.Image, w, h))
	}

	text := joinVertical(s.TextColumn.Position(), s.TextColumn.Spacing(),
		renderText(t.Title.Content, s.Title, inner),
		bodyText(t.Body, s.Body, inner),
		buttonRow(t.Buttons, s.Buttons, s.ButtonRow, focus),
	)
	text = s.TextColumn.Apply(lipgloss.NewStyle()).Render(text)

	root := joinVertical(s.RootColumn.Position(), s.RootColumn.Spacing(), img, text)
	root = s.RootColumn.Apply(lipgloss.NewStyle()).Render(root)
	return r.frame(s.Card, root, inner, s.DismissIcon, s.DismissAlignment, t.Dismiss, focus, d)
}

func (r *Renderer) imageOnlyCard(t content.ImageOnlyTemplate, focus Focus, d decoration) string {
	s := r.imageOnly
	inner := innerWidth(s.Card.Box)

	var img string
	if s.Image.Visible() {
		w, h := s.Image.Size()
		if w <= 0 {
			w = inner
		}
		img = s.Image.Apply(lipgloss.NewStyle()).Render(r.image(t.Image, w, h))
	}
	return r.frame(s.Card, img, inner, s.DismissIcon, s.DismissAlignment, t.Dismiss, focus, d)
}

// frame adds the corner row with the dismiss icon and unread indicator,
// then draws the card box around body.
func (r *Renderer) frame(
	cs style.CardStyle,
	body string,
	inner int,
	icon style.IconStyle,
	pos style.Position,
	dismiss content.DismissButton,
	focus Focus,
	d decoration,
) string {
	var topStart, topEnd, bottomStart, bottomEnd string
	if glyph := dismiss.Style.Glyph(); glyph != "" {
		rendered := icon.Render(glyph)
		switch pos {
		case style.TopStart:
			topStart = rendered
		case style.BottomStart:
			bottomStart = rendered
		case style.BottomEnd:
			bottomEnd = rendered
		default:
			topEnd = rendered
		}
	}
	if d.indicator != "" {
		if d.indicatorEnd {
			topEnd = joinHorizontal(lipgloss.Top, 1, d.indicator, topEnd)
		} else {
			topStart = joinHorizontal(lipgloss.Top, 1, topStart, d.indicator)
		}
	}

	body = joinVertical(lipgloss.Left, 0,
		cornerRow(inner, topStart, topEnd),
		body,
		cornerRow(inner, bottomStart, bottomEnd),
	)

	box := cs.Apply(lipgloss.NewStyle())
	if d.background != nil {
		box = box.Background(*d.background)
	}
	if focus.Selected {
		box = box.BorderForeground(GetTheme().Palette.Primary.Base)
	}
	if !cs.IsEnabled() {
		box = box.Faint(true)
	}
	return box.Render(body)
}

func (r *Renderer) image(img content.Image, width, height int) string {
	url := img.Source(r.dark)
	if r.images != nil {
		if decoded, ok := r.images.Lookup(url); ok {
			if out := images.Render(decoded, width, height); out != "" {
				return out
			}
		}
	}
	if height <= 0 {
		height = max(1, width/4)
	}
	alt := img.Alt
	if alt == "" {
		alt = "image"
	}
	return images.Placeholder(alt, width, height)
}

func bodyText(body *content.Text, ts style.TextStyle, width int) string {
	if body == nil {
		return ""
	}
	return renderText(body.Content, ts, width)
}

// buttonRow draws at most MaxButtons buttons. The focused one is drawn in
// reverse video.
func buttonRow(buttons []content.Button, styles [MaxButtons]style.ButtonStyle, row style.LayoutStyle, focus Focus) string {
	if len(buttons) == 0 {
		return ""
	}
	parts := make([]string, 0, MaxButtons)
	for i, b := range buttons {
		if i >= MaxButtons {
			break
		}
		st := styles[i].Apply(lipgloss.NewStyle())
		if focus.Selected && focus.Button == i {
			st = st.Reverse(true)
		}
		parts = append(parts, st.Render(b.Text.Content))
	}
	return row.Apply(lipgloss.NewStyle()).Render(joinHorizontal(lipgloss.Top, row.Spacing(), parts...))
}

// cornerRow places start and end at the edges of a width-wide line. It
// returns "" when both are empty.
func cornerRow(width int, start, end string) string {
	if start == "" && end == "" {
		return ""
	}
	gap := width - lipgloss.Width(start) - lipgloss.Width(end)
	if gap < 1 {
		gap = 1
	}
	return start + strings.Repeat(" ", gap) + end
}

func innerWidth(box *style.BoxStyle) int {
	if box == nil {
		return defaultCardWidth
	}
	return box.InnerWidth(defaultCardWidth)
}

// Dark reports whether images use their dark variant.
func (r *Renderer) Dark() bool {
	return r.dark
}
