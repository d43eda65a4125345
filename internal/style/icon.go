package style

import "github.com/charmbracelet/lipgloss"

// IconStyle describes a single-glyph icon such as the dismiss button or the
// unread dot.
type IconStyle struct {
	Box   *BoxStyle
	Glyph *string
	Tint  *Color
}

// Merge resolves override against s. Box is replaced, not merged.
func (s IconStyle) Merge(override *IconStyle) IconStyle {
	if override == nil {
		return s
	}
	return IconStyle{
		Box:   pickBox(override.Box, s.Box),
		Glyph: pick(override.Glyph, s.Glyph),
		Tint:  pick(override.Tint, s.Tint),
	}
}

// Apply copies the set fields onto base.
func (s IconStyle) Apply(base lipgloss.Style) lipgloss.Style {
	base = applyBox(base, s.Box)
	if s.Tint != nil {
		base = base.Foreground(*s.Tint)
	}
	return base
}

// Render draws the glyph, or fallback when no glyph is set.
func (s IconStyle) Render(fallback string) string {
	glyph := fallback
	if s.Glyph != nil {
		glyph = *s.Glyph
	}
	return s.Apply(lipgloss.NewStyle()).Render(glyph)
}
