package content

// Kind names a card template type.
type Kind string

const (
	KindSmallImage Kind = "small_image"
	KindLargeImage Kind = "large_image"
	KindImageOnly  Kind = "image_only"
)

// Text is a run of card text.
type Text struct {
	Content string
}

// Image references a card image. DarkURL, when set, is preferred on dark
// terminal backgrounds.
type Image struct {
	URL     string
	DarkURL string
	Alt     string
}

// Source picks the URL to fetch for the given background.
func (i Image) Source(dark bool) string {
	if dark && i.DarkURL != "" {
		return i.DarkURL
	}
	return i.URL
}

// Button is an action attached to a card.
type Button struct {
	ID        string
	ActionURL string
	Text      Text
}

// DismissStyle selects the dismiss affordance drawn on a card.
type DismissStyle int

const (
	DismissNone DismissStyle = iota
	DismissSimple
	DismissCircle
)

// Glyph returns the default icon for the style.
func (d DismissStyle) Glyph() string {
	switch d {
	case DismissSimple:
		return "✕"
	case DismissCircle:
		return "ⓧ"
	default:
		return ""
	}
}

// DismissButton configures the dismiss affordance.
type DismissButton struct {
	Style DismissStyle
}

// Template is implemented by the card template types in this package.
type Template interface {
	Kind() Kind
	template()
}

// SmallImageTemplate is a card with a thumbnail beside its text.
type SmallImageTemplate struct {
	Title     Text
	Body      *Text
	Image     *Image
	ActionURL string
	Buttons   []Button
	Dismiss   DismissButton
}

// LargeImageTemplate is a card with a full-width image above its text.
type LargeImageTemplate struct {
	Title     Text
	Body      *Text
	Image     *Image
	ActionURL string
	Buttons   []Button
	Dismiss   DismissButton
}

// ImageOnlyTemplate is a card consisting of a single image.
type ImageOnlyTemplate struct {
	Image     Image
	ActionURL string
	Dismiss   DismissButton
}

func (SmallImageTemplate) Kind() Kind { return KindSmallImage }
func (LargeImageTemplate) Kind() Kind { return KindLargeImage }
func (ImageOnlyTemplate) Kind() Kind  { return KindImageOnly }

func (SmallImageTemplate) template() {}
func (LargeImageTemplate) template() {}
func (ImageOnlyTemplate) template()  {}

// ActionURLOf returns the card-level action URL of t.
func ActionURLOf(t Template) string {
	switch tpl := t.(type) {
	case SmallImageTemplate:
		return tpl.ActionURL
	case LargeImageTemplate:
		return tpl.ActionURL
	case ImageOnlyTemplate:
		return tpl.ActionURL
	default:
		return ""
	}
}

// ButtonsOf returns the action buttons of t, if any.
func ButtonsOf(t Template) []Button {
	switch tpl := t.(type) {
	case SmallImageTemplate:
		return tpl.Buttons
	case LargeImageTemplate:
		return tpl.Buttons
	default:
		return nil
	}
}

// ImageOf returns the image of t, or nil when it has none.
func ImageOf(t Template) *Image {
	switch tpl := t.(type) {
	case SmallImageTemplate:
		return tpl.Image
	case LargeImageTemplate:
		return tpl.Image
	case ImageOnlyTemplate:
		img := tpl.Image
		return &img
	default:
		return nil
	}
}
