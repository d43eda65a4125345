package style

import "github.com/charmbracelet/lipgloss"

// TextStyle describes how a run of text is drawn.
type TextStyle struct {
	Foreground *Color
	Background *Color
	Bold       *bool
	Italic     *bool
	Underline  *bool
	Align      *Alignment
	MaxLines   *int
}

// Merge resolves override against s.
func (s TextStyle) Merge(override *TextStyle) TextStyle {
	if override == nil {
		return s
	}
	return TextStyle{
		Foreground: pick(override.Foreground, s.Foreground),
		Background: pick(override.Background, s.Background),
		Bold:       pick(override.Bold, s.Bold),
		Italic:     pick(override.Italic, s.Italic),
		Underline:  pick(override.Underline, s.Underline),
		Align:      pick(override.Align, s.Align),
		MaxLines:   pick(override.MaxLines, s.MaxLines),
	}
}

// Apply copies the set fields onto base. MaxLines is enforced by the caller
// since lipgloss has no line clamp.
func (s TextStyle) Apply(base lipgloss.Style) lipgloss.Style {
	if s.Foreground != nil {
		base = base.Foreground(*s.Foreground)
	}
	if s.Background != nil {
		base = base.Background(*s.Background)
	}
	if s.Bold != nil {
		base = base.Bold(*s.Bold)
	}
	if s.Italic != nil {
		base = base.Italic(*s.Italic)
	}
	if s.Underline != nil {
		base = base.Underline(*s.Underline)
	}
	if s.Align != nil {
		base = base.Align(s.Align.lipgloss())
	}
	return base
}

// Lines returns the configured line limit, or zero for unlimited.
func (s TextStyle) Lines() int {
	if s.MaxLines == nil || *s.MaxLines < 0 {
		return 0
	}
	return *s.MaxLines
}
