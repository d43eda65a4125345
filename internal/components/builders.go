package components

import "github.com/alexisbeaulieu97/contentcards/internal/style"

// SmallImageCardStyleBuilder collects per-role overrides for a
// SmallImageCardStyle. A nil argument leaves the role at its default.
type SmallImageCardStyleBuilder struct {
	card             *style.CardStyle
	rootRow          *style.LayoutStyle
	image            *style.ImageStyle
	textColumn       *style.LayoutStyle
	title            *style.TextStyle
	body             *style.TextStyle
	buttonRow        *style.LayoutStyle
	buttons          []*style.ButtonStyle
	dismissIcon      *style.IconStyle
	dismissAlignment *style.Position
}

// NewSmallImageCardStyleBuilder starts a builder with no overrides.
func NewSmallImageCardStyleBuilder() *SmallImageCardStyleBuilder {
	return &SmallImageCardStyleBuilder{}
}

func (b *SmallImageCardStyleBuilder) Card(s *style.CardStyle) *SmallImageCardStyleBuilder {
	b.card = s
	return b
}

func (b *SmallImageCardStyleBuilder) RootRow(s *style.LayoutStyle) *SmallImageCardStyleBuilder {
	b.rootRow = s
	return b
}

func (b *SmallImageCardStyleBuilder) Image(s *style.ImageStyle) *SmallImageCardStyleBuilder {
	b.image = s
	return b
}

func (b *SmallImageCardStyleBuilder) TextColumn(s *style.LayoutStyle) *SmallImageCardStyleBuilder {
	b.textColumn = s
	return b
}

func (b *SmallImageCardStyleBuilder) Title(s *style.TextStyle) *SmallImageCardStyleBuilder {
	b.title = s
	return b
}

func (b *SmallImageCardStyleBuilder) Body(s *style.TextStyle) *SmallImageCardStyleBuilder {
	b.body = s
	return b
}

func (b *SmallImageCardStyleBuilder) ButtonRow(s *style.LayoutStyle) *SmallImageCardStyleBuilder {
	b.buttonRow = s
	return b
}

// ButtonStyles sets overrides by position. Entries past MaxButtons are
// ignored by Build.
func (b *SmallImageCardStyleBuilder) ButtonStyles(s ...*style.ButtonStyle) *SmallImageCardStyleBuilder {
	b.buttons = s
	return b
}

func (b *SmallImageCardStyleBuilder) DismissIcon(s *style.IconStyle) *SmallImageCardStyleBuilder {
	b.dismissIcon = s
	return b
}

func (b *SmallImageCardStyleBuilder) DismissAlignment(p *style.Position) *SmallImageCardStyleBuilder {
	b.dismissAlignment = p
	return b
}

// Build merges every override against DefaultSmallImageCardStyle.
func (b *SmallImageCardStyleBuilder) Build() SmallImageCardStyle {
	def := DefaultSmallImageCardStyle()
	return SmallImageCardStyle{
		Card:             style.Merge(def.Card, b.card),
		RootRow:          style.Merge(def.RootRow, b.rootRow),
		Image:            style.Merge(def.Image, b.image),
		TextColumn:       style.Merge(def.TextColumn, b.textColumn),
		Title:            style.Merge(def.Title, b.title),
		Body:             style.Merge(def.Body, b.body),
		ButtonRow:        style.Merge(def.ButtonRow, b.buttonRow),
		Buttons:          mergeButtons(def.Buttons, b.buttons),
		DismissIcon:      style.Merge(def.DismissIcon, b.dismissIcon),
		DismissAlignment: orDefault(def.DismissAlignment, b.dismissAlignment),
	}
}

// LargeImageCardStyleBuilder collects per-role overrides for a
// LargeImageCardStyle.
type LargeImageCardStyleBuilder struct {
	card             *style.CardStyle
	rootColumn       *style.LayoutStyle
	image            *style.ImageStyle
	textColumn       *style.LayoutStyle
	title            *style.TextStyle
	body             *style.TextStyle
	buttonRow        *style.LayoutStyle
	buttons          []*style.ButtonStyle
	dismissIcon      *style.IconStyle
	dismissAlignment *style.Position
}

// NewLargeImageCardStyleBuilder starts a builder with no overrides.
func NewLargeImageCardStyleBuilder() *LargeImageCardStyleBuilder {
	return &LargeImageCardStyleBuilder{}
}

func (b *LargeImageCardStyleBuilder) Card(s *style.CardStyle) *LargeImageCardStyleBuilder {
	b.card = s
	return b
}

func (b *LargeImageCardStyleBuilder) RootColumn(s *style.LayoutStyle) *LargeImageCardStyleBuilder {
	b.rootColumn = s
	return b
}

func (b *LargeImageCardStyleBuilder) Image(s *style.ImageStyle) *LargeImageCardStyleBuilder {
	b.image = s
	return b
}

func (b *LargeImageCardStyleBuilder) TextColumn(s *style.LayoutStyle) *LargeImageCardStyleBuilder {
	b.textColumn = s
	return b
}

func (b *LargeImageCardStyleBuilder) Title(s *style.TextStyle) *LargeImageCardStyleBuilder {
	b.title = s
	return b
}

func (b *LargeImageCardStyleBuilder) Body(s *style.TextStyle) *LargeImageCardStyleBuilder {
	b.body = s
	return b
}

func (b *LargeImageCardStyleBuilder) ButtonRow(s *style.LayoutStyle) *LargeImageCardStyleBuilder {
	b.buttonRow = s
	return b
}

func (b *LargeImageCardStyleBuilder) ButtonStyles(s ...*style.ButtonStyle) *LargeImageCardStyleBuilder {
	b.buttons = s
	return b
}

func (b *LargeImageCardStyleBuilder) DismissIcon(s *style.IconStyle) *LargeImageCardStyleBuilder {
	b.dismissIcon = s
	return b
}

func (b *LargeImageCardStyleBuilder) DismissAlignment(p *style.Position) *LargeImageCardStyleBuilder {
	b.dismissAlignment = p
	return b
}

// Build merges every override against DefaultLargeImageCardStyle.
func (b *LargeImageCardStyleBuilder) Build() LargeImageCardStyle {
	def := DefaultLargeImageCardStyle()
	return LargeImageCardStyle{
		Card:             style.Merge(def.Card, b.card),
		RootColumn:       style.Merge(def.RootColumn, b.rootColumn),
		Image:            style.Merge(def.Image, b.image),
		TextColumn:       style.Merge(def.TextColumn, b.textColumn),
		Title:            style.Merge(def.Title, b.title),
		Body:             style.Merge(def.Body, b.body),
		ButtonRow:        style.Merge(def.ButtonRow, b.buttonRow),
		Buttons:          mergeButtons(def.Buttons, b.buttons),
		DismissIcon:      style.Merge(def.DismissIcon, b.dismissIcon),
		DismissAlignment: orDefault(def.DismissAlignment, b.dismissAlignment),
	}
}

// ImageOnlyCardStyleBuilder collects per-role overrides for an
// ImageOnlyCardStyle.
type ImageOnlyCardStyleBuilder struct {
	card             *style.CardStyle
	image            *style.ImageStyle
	dismissIcon      *style.IconStyle
	dismissAlignment *style.Position
}

// NewImageOnlyCardStyleBuilder starts a builder with no overrides.
func NewImageOnlyCardStyleBuilder() *ImageOnlyCardStyleBuilder {
	return &ImageOnlyCardStyleBuilder{}
}

func (b *ImageOnlyCardStyleBuilder) Card(s *style.CardStyle) *ImageOnlyCardStyleBuilder {
	b.card = s
	return b
}

func (b *ImageOnlyCardStyleBuilder) Image(s *style.ImageStyle) *ImageOnlyCardStyleBuilder {
	b.image = s
	return b
}

func (b *ImageOnlyCardStyleBuilder) DismissIcon(s *style.IconStyle) *ImageOnlyCardStyleBuilder {
	b.dismissIcon = s
	return b
}

func (b *ImageOnlyCardStyleBuilder) DismissAlignment(p *style.Position) *ImageOnlyCardStyleBuilder {
	b.dismissAlignment = p
	return b
}

// Build merges every override against DefaultImageOnlyCardStyle.
func (b *ImageOnlyCardStyleBuilder) Build() ImageOnlyCardStyle {
	def := DefaultImageOnlyCardStyle()
	return ImageOnlyCardStyle{
		Card:             style.Merge(def.Card, b.card),
		Image:            style.Merge(def.Image, b.image),
		DismissIcon:      style.Merge(def.DismissIcon, b.dismissIcon),
		DismissAlignment: orDefault(def.DismissAlignment, b.dismissAlignment),
	}
}

// InboxStyleBuilder collects per-role overrides for an InboxStyle.
type InboxStyleBuilder struct {
	heading          *style.TextStyle
	list             *style.LayoutStyle
	emptyMessage     *style.TextStyle
	emptyImage       *style.ImageStyle
	unreadIndicator  *style.IconStyle
	unreadBackground *style.Color
}

// NewInboxStyleBuilder starts a builder with no overrides.
func NewInboxStyleBuilder() *InboxStyleBuilder {
	return &InboxStyleBuilder{}
}

func (b *InboxStyleBuilder) Heading(s *style.TextStyle) *InboxStyleBuilder {
	b.heading = s
	return b
}

func (b *InboxStyleBuilder) List(s *style.LayoutStyle) *InboxStyleBuilder {
	b.list = s
	return b
}

func (b *InboxStyleBuilder) EmptyMessage(s *style.TextStyle) *InboxStyleBuilder {
	b.emptyMessage = s
	return b
}

func (b *InboxStyleBuilder) EmptyImage(s *style.ImageStyle) *InboxStyleBuilder {
	b.emptyImage = s
	return b
}

func (b *InboxStyleBuilder) UnreadIndicator(s *style.IconStyle) *InboxStyleBuilder {
	b.unreadIndicator = s
	return b
}

func (b *InboxStyleBuilder) UnreadBackground(c *style.Color) *InboxStyleBuilder {
	b.unreadBackground = c
	return b
}

// Build merges every override against DefaultInboxStyle. UnreadBackground
// stays nil when neither the default nor the override sets it.
func (b *InboxStyleBuilder) Build() InboxStyle {
	def := DefaultInboxStyle()
	bg := def.UnreadBackground
	if b.unreadBackground != nil {
		c := *b.unreadBackground
		bg = &c
	}
	return InboxStyle{
		Heading:          style.Merge(def.Heading, b.heading),
		List:             style.Merge(def.List, b.list),
		EmptyMessage:     style.Merge(def.EmptyMessage, b.emptyMessage),
		EmptyImage:       style.Merge(def.EmptyImage, b.emptyImage),
		UnreadIndicator:  style.Merge(def.UnreadIndicator, b.unreadIndicator),
		UnreadBackground: bg,
	}
}

func mergeButtons(defaults [MaxButtons]style.ButtonStyle, overrides []*style.ButtonStyle) [MaxButtons]style.ButtonStyle {
	var out [MaxButtons]style.ButtonStyle
	copy(out[:], style.MergePositional(defaults[:], overrides))
	return out
}

func orDefault[T any](def T, override *T) T {
	if override == nil {
		return def
	}
	return *override
}
