package content

// CardState holds the mutable flags of a single rendered card. It belongs to
// exactly one Card and is only changed by that card's event handler.
type CardState struct {
	Displayed bool
	Dismissed bool
	// Read is nil when the card type does not track read status.
	Read *bool
}

// IsRead reports whether the card tracks read status and has been read.
func (s *CardState) IsRead() bool {
	return s != nil && s.Read != nil && *s.Read
}

// TracksRead reports whether read status applies to the card.
func (s *CardState) TracksRead() bool {
	return s != nil && s.Read != nil
}

// Card is one rendered content card: its identity, its template and its
// owned state cell.
type Card struct {
	ID       string
	Template Template
	State    *CardState
}

// NewCard returns a card with a fresh state cell. When tracksRead is true
// the card starts unread.
func NewCard(id string, tpl Template, tracksRead bool) *Card {
	state := &CardState{}
	if tracksRead {
		read := false
		state.Read = &read
	}
	return &Card{ID: id, Template: tpl, State: state}
}

// Dismissed reports whether the card has been dismissed.
func (c *Card) Dismissed() bool {
	return c != nil && c.State != nil && c.State.Dismissed
}

// Visible returns the first capacity cards that are not dismissed, in their
// original order. A capacity of zero or less means unlimited. The input slice
// is not modified.
func Visible(cards []*Card, capacity int) []*Card {
	out := make([]*Card, 0, len(cards))
	for _, c := range cards {
		if c == nil || c.Dismissed() {
			continue
		}
		if capacity > 0 && len(out) == capacity {
			break
		}
		out = append(out, c)
	}
	return out
}

// Unread counts visible cards that track read status and are unread.
func Unread(cards []*Card) int {
	n := 0
	for _, c := range cards {
		if c == nil || c.Dismissed() || c.State == nil {
			continue
		}
		if c.State.TracksRead() && !c.State.IsRead() {
			n++
		}
	}
	return n
}
