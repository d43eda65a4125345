package content

// Orientation lays out the inbox list.
type Orientation int

const (
	Vertical Orientation = iota
	Horizontal
)

// UnreadIndicator marks unread cards in the inbox.
type UnreadIndicator struct {
	Glyph      string
	Background string
	Placement  IndicatorPlacement
}

// IndicatorPlacement positions the unread indicator on a card.
type IndicatorPlacement int

const (
	IndicatorTopStart IndicatorPlacement = iota
	IndicatorTopEnd
)

// InboxTemplate is the container template that frames a list of cards.
// Capacity zero means unlimited.
type InboxTemplate struct {
	Surface         string
	Heading         Text
	Layout          Orientation
	Capacity        int
	EmptyMessage    Text
	EmptyImage      *Image
	UnreadIndicator *UnreadIndicator
	UnreadEnabled   bool
}
