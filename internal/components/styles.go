package components

import "github.com/alexisbeaulieu97/contentcards/internal/style"

// MaxButtons is the number of action buttons a card can carry.
const MaxButtons = 3

// SmallImageCardStyle styles a card with a thumbnail beside its text.
type SmallImageCardStyle struct {
	Card             style.CardStyle
	RootRow          style.LayoutStyle
	Image            style.ImageStyle
	TextColumn       style.LayoutStyle
	Title            style.TextStyle
	Body             style.TextStyle
	ButtonRow        style.LayoutStyle
	Buttons          [MaxButtons]style.ButtonStyle
	DismissIcon      style.IconStyle
	DismissAlignment style.Position
}

// LargeImageCardStyle styles a card with a full-width image above its text.
type LargeImageCardStyle struct {
	Card             style.CardStyle
	RootColumn       style.LayoutStyle
	Image            style.ImageStyle
	TextColumn       style.LayoutStyle
	Title            style.TextStyle
	Body             style.TextStyle
	ButtonRow        style.LayoutStyle
	Buttons          [MaxButtons]style.ButtonStyle
	DismissIcon      style.IconStyle
	DismissAlignment style.Position
}

// ImageOnlyCardStyle styles a card that is a single clickable image.
type ImageOnlyCardStyle struct {
	Card             style.CardStyle
	Image            style.ImageStyle
	DismissIcon      style.IconStyle
	DismissAlignment style.Position
}

// InboxStyle styles the container around a list of cards. UnreadBackground
// is nil by default, in which case unread cards keep their own background.
type InboxStyle struct {
	Heading          style.TextStyle
	List             style.LayoutStyle
	EmptyMessage     style.TextStyle
	EmptyImage       style.ImageStyle
	UnreadIndicator  style.IconStyle
	UnreadBackground *style.Color
}

const defaultCardWidth = 60

func defaultCard(t Theme) style.CardStyle {
	return style.CardStyle{
		Box: &style.BoxStyle{
			Width:       style.Ptr(defaultCardWidth),
			Padding:     style.Ptr(1),
			Border:      style.Ptr(style.BorderRounded),
			BorderColor: style.Ptr(t.Palette.Neutral.Base),
		},
		Enabled: style.Ptr(true),
	}
}

func defaultTitle(t Theme) style.TextStyle {
	return style.TextStyle{
		Foreground: style.Ptr(t.Palette.Surface.OnBase),
		Bold:       style.Ptr(true),
		MaxLines:   style.Ptr(2),
	}
}

func defaultBody(t Theme, lines int) style.TextStyle {
	return style.TextStyle{
		Foreground: style.Ptr(t.Palette.Neutral.Base),
		MaxLines:   style.Ptr(lines),
	}
}

// defaultButtons gives the first button the primary colours and the rest
// the muted surface colours.
func defaultButtons(t Theme) [MaxButtons]style.ButtonStyle {
	var out [MaxButtons]style.ButtonStyle
	for i := range out {
		bg, fg := t.Palette.Surface.Muted, t.Palette.Surface.OnBase
		if i == 0 {
			bg, fg = t.Palette.Primary.Base, t.Palette.Primary.OnBase
		}
		out[i] = style.ButtonStyle{
			Box:        &style.BoxStyle{Padding: style.Ptr(1)},
			Enabled:    style.Ptr(true),
			Background: style.Ptr(bg),
			Text: &style.TextStyle{
				Foreground: style.Ptr(fg),
				Bold:       style.Ptr(i == 0),
			},
		}
	}
	return out
}

func defaultDismissIcon(t Theme) style.IconStyle {
	return style.IconStyle{Tint: style.Ptr(t.Palette.Neutral.Base)}
}

// DefaultSmallImageCardStyle returns the library defaults for small image
// cards, coloured from the current theme.
func DefaultSmallImageCardStyle() SmallImageCardStyle {
	t := GetTheme()
	return SmallImageCardStyle{
		Card:             defaultCard(t),
		RootRow:          style.LayoutStyle{Gap: style.Ptr(2), Align: style.Ptr(style.AlignStart)},
		Image:            style.ImageStyle{Width: style.Ptr(16), Height: style.Ptr(8), Hidden: style.Ptr(false)},
		TextColumn:       style.LayoutStyle{Gap: style.Ptr(0), Align: style.Ptr(style.AlignStart)},
		Title:            defaultTitle(t),
		Body:             defaultBody(t, 3),
		ButtonRow:        style.LayoutStyle{Gap: style.Ptr(1)},
		Buttons:          defaultButtons(t),
		DismissIcon:      defaultDismissIcon(t),
		DismissAlignment: style.TopEnd,
	}
}

// DefaultLargeImageCardStyle returns the library defaults for large image
// cards. An image width of zero fills the card.
func DefaultLargeImageCardStyle() LargeImageCardStyle {
	t := GetTheme()
	return LargeImageCardStyle{
		Card:             defaultCard(t),
		RootColumn:       style.LayoutStyle{Gap: style.Ptr(1), Align: style.Ptr(style.AlignStart)},
		Image:            style.ImageStyle{Width: style.Ptr(0), Height: style.Ptr(12), Hidden: style.Ptr(false)},
		TextColumn:       style.LayoutStyle{Gap: style.Ptr(0), Align: style.Ptr(style.AlignStart)},
		Title:            defaultTitle(t),
		Body:             defaultBody(t, 4),
		ButtonRow:        style.LayoutStyle{Gap: style.Ptr(1)},
		Buttons:          defaultButtons(t),
		DismissIcon:      defaultDismissIcon(t),
		DismissAlignment: style.TopEnd,
	}
}

// DefaultImageOnlyCardStyle returns the library defaults for image only
// cards.
func DefaultImageOnlyCardStyle() ImageOnlyCardStyle {
	t := GetTheme()
	card := defaultCard(t)
	card.Box.Padding = style.Ptr(0)
	return ImageOnlyCardStyle{
		Card:             card,
		Image:            style.ImageStyle{Width: style.Ptr(0), Height: style.Ptr(14), Hidden: style.Ptr(false)},
		DismissIcon:      defaultDismissIcon(t),
		DismissAlignment: style.TopEnd,
	}
}

// DefaultInboxStyle returns the library defaults for the inbox container.
func DefaultInboxStyle() InboxStyle {
	t := GetTheme()
	return InboxStyle{
		Heading: style.TextStyle{
			Foreground: style.Ptr(t.Palette.Primary.Base),
			Bold:       style.Ptr(true),
		},
		List: style.LayoutStyle{Gap: style.Ptr(1), Align: style.Ptr(style.AlignStart)},
		EmptyMessage: style.TextStyle{
			Foreground: style.Ptr(t.Palette.Neutral.Base),
			Italic:     style.Ptr(true),
			Align:      style.Ptr(style.AlignCenter),
		},
		EmptyImage: style.ImageStyle{Width: style.Ptr(24), Height: style.Ptr(8), Hidden: style.Ptr(false)},
		UnreadIndicator: style.IconStyle{
			Glyph: style.Ptr("●"),
			Tint:  style.Ptr(t.Palette.Primary.Base),
		},
	}
}
