package feed

// Document is the YAML feed consumed by the file provider.
type Document struct {
	Surface string     `yaml:"surface" validate:"required"`
	Inbox   InboxSpec  `yaml:"inbox"`
	Cards   []CardSpec `yaml:"cards" validate:"dive"`
}

// InboxSpec describes the container template.
type InboxSpec struct {
	Heading         string         `yaml:"heading"`
	Layout          string         `yaml:"layout" validate:"omitempty,oneof=vertical horizontal"`
	Capacity        int            `yaml:"capacity" validate:"gte=0"`
	EmptyMessage    string         `yaml:"empty_message"`
	EmptyImage      *ImageSpec     `yaml:"empty_image"`
	UnreadEnabled   bool           `yaml:"unread_enabled"`
	UnreadIndicator *IndicatorSpec `yaml:"unread_indicator"`
}

// IndicatorSpec describes the unread indicator.
type IndicatorSpec struct {
	Glyph      string `yaml:"glyph"`
	Background string `yaml:"background" validate:"omitempty,hexcolor"`
	Placement  string `yaml:"placement" validate:"omitempty,oneof=top_start top_end"`
}

// CardSpec describes one card.
type CardSpec struct {
	ID           string       `yaml:"id" validate:"required,card_id"`
	Type         string       `yaml:"type" validate:"required,oneof=small_image large_image image_only"`
	Title        string       `yaml:"title"`
	Body         string       `yaml:"body"`
	Image        *ImageSpec   `yaml:"image"`
	ActionURL    string       `yaml:"action_url" validate:"omitempty,action_url"`
	Buttons      []ButtonSpec `yaml:"buttons" validate:"max=3,dive"`
	Dismiss      string       `yaml:"dismiss" validate:"omitempty,oneof=none simple circle"`
	ReadTracking *bool        `yaml:"read_tracking"`

	line int
}

// ImageSpec references an image.
type ImageSpec struct {
	URL     string `yaml:"url" validate:"required,image_url"`
	DarkURL string `yaml:"dark_url" validate:"omitempty,image_url"`
	Alt     string `yaml:"alt"`
}

// ButtonSpec describes an action button.
type ButtonSpec struct {
	ID        string `yaml:"id" validate:"required,card_id"`
	Text      string `yaml:"text" validate:"required"`
	ActionURL string `yaml:"action_url" validate:"omitempty,action_url"`
}
