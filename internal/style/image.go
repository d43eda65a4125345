package style

import "github.com/charmbracelet/lipgloss"

// ImageStyle sizes the terminal rendering of a card image.
type ImageStyle struct {
	Box    *BoxStyle
	Width  *int
	Height *int
	Hidden *bool
}

// Merge resolves override against s. Box is replaced, not merged.
func (s ImageStyle) Merge(override *ImageStyle) ImageStyle {
	if override == nil {
		return s
	}
	return ImageStyle{
		Box:    pickBox(override.Box, s.Box),
		Width:  pick(override.Width, s.Width),
		Height: pick(override.Height, s.Height),
		Hidden: pick(override.Hidden, s.Hidden),
	}
}

// Apply copies the frame onto base.
func (s ImageStyle) Apply(base lipgloss.Style) lipgloss.Style {
	return applyBox(base, s.Box)
}

// Visible reports whether the image should be drawn at all.
func (s ImageStyle) Visible() bool {
	return s.Hidden == nil || !*s.Hidden
}

// Size returns the cell dimensions, substituting zero for unset values.
func (s ImageStyle) Size() (width, height int) {
	if s.Width != nil {
		width = *s.Width
	}
	if s.Height != nil {
		height = *s.Height
	}
	return width, height
}

func pickBox(override, def *BoxStyle) *BoxStyle {
	if override != nil {
		return cloneBox(override)
	}
	return cloneBox(def)
}

func cloneBox(b *BoxStyle) *BoxStyle {
	if b == nil {
		return nil
	}
	c := BoxStyle{}.Merge(b)
	return &c
}
