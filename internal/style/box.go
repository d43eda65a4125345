package style

import "github.com/charmbracelet/lipgloss"

// BoxStyle describes the size, spacing and frame of a rectangular region.
type BoxStyle struct {
	Width       *int
	Height      *int
	Padding     *int
	Margin      *int
	Border      *BorderVariant
	BorderColor *Color
	Background  *Color
}

// Merge resolves override against s.
func (s BoxStyle) Merge(override *BoxStyle) BoxStyle {
	if override == nil {
		return s
	}
	return BoxStyle{
		Width:       pick(override.Width, s.Width),
		Height:      pick(override.Height, s.Height),
		Padding:     pick(override.Padding, s.Padding),
		Margin:      pick(override.Margin, s.Margin),
		Border:      pick(override.Border, s.Border),
		BorderColor: pick(override.BorderColor, s.BorderColor),
		Background:  pick(override.Background, s.Background),
	}
}

// Apply copies the set fields onto base.
func (s BoxStyle) Apply(base lipgloss.Style) lipgloss.Style {
	if s.Width != nil && *s.Width > 0 {
		base = base.Width(*s.Width)
	}
	if s.Height != nil && *s.Height > 0 {
		base = base.Height(*s.Height)
	}
	if s.Padding != nil {
		base = base.Padding(0, *s.Padding)
	}
	if s.Margin != nil {
		base = base.Margin(0, *s.Margin)
	}
	if s.Border != nil && *s.Border != BorderNone {
		base = base.Border(s.Border.Border())
	}
	if s.BorderColor != nil {
		base = base.BorderForeground(*s.BorderColor)
	}
	if s.Background != nil {
		base = base.Background(*s.Background)
	}
	return base
}

// InnerWidth is the width left for content once padding and border are
// taken out. It returns fallback when no width is set.
func (s BoxStyle) InnerWidth(fallback int) int {
	if s.Width == nil || *s.Width <= 0 {
		return fallback
	}
	w := *s.Width
	if s.Padding != nil {
		w -= 2 * *s.Padding
	}
	if s.Border != nil && *s.Border != BorderNone {
		w -= 2
	}
	if w < 1 {
		return 1
	}
	return w
}

func applyBox(base lipgloss.Style, box *BoxStyle) lipgloss.Style {
	if box == nil {
		return base
	}
	return box.Apply(base)
}
