package style

import "github.com/charmbracelet/lipgloss"

// ButtonStyle describes a card action button. Unlike the other records, the
// embedded Text style is merged field by field with the default's.
type ButtonStyle struct {
	Box        *BoxStyle
	Enabled    *bool
	Background *Color
	Text       *TextStyle
}

// Merge resolves override against s.
func (s ButtonStyle) Merge(override *ButtonStyle) ButtonStyle {
	if override == nil {
		return s
	}
	return ButtonStyle{
		Box:        pickBox(override.Box, s.Box),
		Enabled:    pick(override.Enabled, s.Enabled),
		Background: pick(override.Background, s.Background),
		Text:       mergeText(s.Text, override.Text),
	}
}

func mergeText(def, override *TextStyle) *TextStyle {
	if def == nil && override == nil {
		return nil
	}
	base := TextStyle{}
	if def != nil {
		base = base.Merge(def)
	}
	t := base.Merge(override)
	return &t
}

// IsEnabled reports whether the button accepts clicks. Unset means enabled.
func (s ButtonStyle) IsEnabled() bool {
	return s.Enabled == nil || *s.Enabled
}

// Apply copies the set fields onto base. Disabled buttons are drawn faint.
func (s ButtonStyle) Apply(base lipgloss.Style) lipgloss.Style {
	base = applyBox(base, s.Box)
	if s.Background != nil {
		base = base.Background(*s.Background)
	}
	if s.Text != nil {
		base = s.Text.Apply(base)
	}
	if !s.IsEnabled() {
		base = base.Faint(true)
	}
	return base
}
