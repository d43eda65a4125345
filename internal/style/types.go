package style

import "github.com/charmbracelet/lipgloss"

// Color is a light/dark colour pair resolved against the terminal background.
type Color = lipgloss.AdaptiveColor

// Alignment positions content along a row or column.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

func (a Alignment) lipgloss() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

// Position places the dismiss icon on a card corner.
type Position int

const (
	TopEnd Position = iota
	TopStart
	BottomEnd
	BottomStart
)

// Top reports whether the position is on the upper edge.
func (p Position) Top() bool { return p == TopEnd || p == TopStart }

// End reports whether the position is on the trailing edge.
func (p Position) End() bool { return p == TopEnd || p == BottomEnd }

// BorderVariant selects a border glyph set.
type BorderVariant int

const (
	BorderNone BorderVariant = iota
	BorderNormal
	BorderRounded
	BorderThick
	BorderDouble
)

// Border returns the lipgloss border for the variant.
func (b BorderVariant) Border() lipgloss.Border {
	switch b {
	case BorderNormal:
		return lipgloss.NormalBorder()
	case BorderRounded:
		return lipgloss.RoundedBorder()
	case BorderThick:
		return lipgloss.ThickBorder()
	case BorderDouble:
		return lipgloss.DoubleBorder()
	default:
		return lipgloss.HiddenBorder()
	}
}
