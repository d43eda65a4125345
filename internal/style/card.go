package style

import "github.com/charmbracelet/lipgloss"

// CardStyle describes the outer frame of a card.
type CardStyle struct {
	Box        *BoxStyle
	Enabled    *bool
	Background *Color
}

// Merge resolves override against s. Box is replaced, not merged.
func (s CardStyle) Merge(override *CardStyle) CardStyle {
	if override == nil {
		return s
	}
	return CardStyle{
		Box:        pickBox(override.Box, s.Box),
		Enabled:    pick(override.Enabled, s.Enabled),
		Background: pick(override.Background, s.Background),
	}
}

// IsEnabled reports whether the card reacts to clicks. Unset means enabled.
func (s CardStyle) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// Apply copies the set fields onto base.
func (s CardStyle) Apply(base lipgloss.Style) lipgloss.Style {
	base = applyBox(base, s.Box)
	if s.Background != nil {
		base = base.Background(*s.Background)
	}
	return base
}

// LayoutStyle describes a row or column of child elements.
type LayoutStyle struct {
	Box   *BoxStyle
	Gap   *int
	Align *Alignment
}

// Merge resolves override against s. Box is replaced, not merged.
func (s LayoutStyle) Merge(override *LayoutStyle) LayoutStyle {
	if override == nil {
		return s
	}
	return LayoutStyle{
		Box:   pickBox(override.Box, s.Box),
		Gap:   pick(override.Gap, s.Gap),
		Align: pick(override.Align, s.Align),
	}
}

// Apply copies the frame onto base.
func (s LayoutStyle) Apply(base lipgloss.Style) lipgloss.Style {
	return applyBox(base, s.Box)
}

// Spacing returns the gap between children, zero when unset.
func (s LayoutStyle) Spacing() int {
	if s.Gap == nil || *s.Gap < 0 {
		return 0
	}
	return *s.Gap
}

// Position returns the lipgloss alignment for joining children.
func (s LayoutStyle) Position() lipgloss.Position {
	if s.Align == nil {
		return lipgloss.Left
	}
	return s.Align.lipgloss()
}
