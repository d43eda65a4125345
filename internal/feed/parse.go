package feed

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/contentcards/internal/content"
	ccerrors "github.com/alexisbeaulieu97/contentcards/pkg/errors"
)

var yamlLineRegex = regexp.MustCompile(`line (\d+)`)

// Feed is a parsed, validated document.
type Feed struct {
	Inbox content.InboxTemplate
	Cards []CardEntry
}

// CardEntry is a parsed card template plus its read-tracking flag. Cards are
// built from entries so every emission gets fresh state cells.
type CardEntry struct {
	ID         string
	Template   content.Template
	TracksRead bool
}

// NewCards builds fresh cards from the entries.
func (f *Feed) NewCards() []*content.Card {
	out := make([]*content.Card, 0, len(f.Cards))
	for _, e := range f.Cards {
		out = append(out, content.NewCard(e.ID, e.Template, e.TracksRead))
	}
	return out
}

// ParseFile reads and parses the feed at path.
func ParseFile(path string) (*Feed, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ccerrors.NewTemplateError(path, "", 0, err)
	}
	return Parse(path, data)
}

// Parse decodes, validates and converts a feed document. source names the
// document in errors.
func Parse(source string, data []byte) (*Feed, error) {
	var root yaml.Node
	if err := yaml.Unmarshal(data, &root); err != nil {
		return nil, ccerrors.NewTemplateError(source, "", extractLine(err), err)
	}
	if len(root.Content) == 0 {
		return nil, ccerrors.NewTemplateError(source, "", 0, errors.New("empty document"))
	}

	var doc Document
	if err := root.Decode(&doc); err != nil {
		return nil, ccerrors.NewTemplateError(source, "", extractLine(err), err)
	}
	recordCardLines(&root, &doc)

	if err := validateDocument(source, &doc); err != nil {
		return nil, err
	}

	feed := &Feed{Inbox: inboxTemplate(doc)}
	for _, spec := range doc.Cards {
		tpl, err := cardTemplate(spec)
		if err != nil {
			return nil, ccerrors.NewTemplateError(source, spec.ID, spec.line, err)
		}
		feed.Cards = append(feed.Cards, CardEntry{
			ID:         spec.ID,
			Template:   tpl,
			TracksRead: spec.ReadTracking == nil || *spec.ReadTracking,
		})
	}
	return feed, nil
}

func validateDocument(source string, doc *Document) error {
	if err := validatorInstance().Struct(doc); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			fe := fieldErrs[0]
			return ccerrors.NewTemplateError(source, cardIDForNamespace(doc, fe.Namespace()), 0,
				fmt.Errorf("%s failed %q validation", fe.Namespace(), fe.Tag()))
		}
		return ccerrors.NewTemplateError(source, "", 0, err)
	}

	seen := make(map[string]int, len(doc.Cards))
	for _, c := range doc.Cards {
		if prev, ok := seen[c.ID]; ok {
			return ccerrors.NewTemplateError(source, c.ID, c.line,
				fmt.Errorf("duplicate card id (first defined on line %d)", prev))
		}
		seen[c.ID] = c.line
	}
	return nil
}

func cardTemplate(spec CardSpec) (content.Template, error) {
	buttons := make([]content.Button, 0, len(spec.Buttons))
	for _, b := range spec.Buttons {
		buttons = append(buttons, content.Button{ID: b.ID, ActionURL: b.ActionURL, Text: content.Text{Content: b.Text}})
	}
	dismiss := content.DismissButton{Style: dismissStyle(spec.Dismiss)}

	var body *content.Text
	if spec.Body != "" {
		body = &content.Text{Content: spec.Body}
	}

	switch content.Kind(spec.Type) {
	case content.KindSmallImage:
		if spec.Title == "" {
			return nil, errors.New("small_image card requires a title")
		}
		return content.SmallImageTemplate{
			Title:     content.Text{Content: spec.Title},
			Body:      body,
			Image:     imageOf(spec.Image),
			ActionURL: spec.ActionURL,
			Buttons:   buttons,
			Dismiss:   dismiss,
		}, nil
	case content.KindLargeImage:
		if spec.Title == "" {
			return nil, errors.New("large_image card requires a title")
		}
		return content.LargeImageTemplate{
			Title:     content.Text{Content: spec.Title},
			Body:      body,
			Image:     imageOf(spec.Image),
			ActionURL: spec.ActionURL,
			Buttons:   buttons,
			Dismiss:   dismiss,
		}, nil
	case content.KindImageOnly:
		if spec.Image == nil {
			return nil, errors.New("image_only card requires an image")
		}
		if len(spec.Buttons) > 0 {
			return nil, errors.New("image_only card cannot have buttons")
		}
		return content.ImageOnlyTemplate{
			Image:     *imageOf(spec.Image),
			ActionURL: spec.ActionURL,
			Dismiss:   dismiss,
		}, nil
	default:
		return nil, fmt.Errorf("unknown card type %q", spec.Type)
	}
}

func inboxTemplate(doc Document) content.InboxTemplate {
	tpl := content.InboxTemplate{
		Surface:       doc.Surface,
		Heading:       content.Text{Content: doc.Inbox.Heading},
		Capacity:      doc.Inbox.Capacity,
		EmptyMessage:  content.Text{Content: doc.Inbox.EmptyMessage},
		EmptyImage:    imageOf(doc.Inbox.EmptyImage),
		UnreadEnabled: doc.Inbox.UnreadEnabled,
	}
	if doc.Inbox.Layout == "horizontal" {
		tpl.Layout = content.Horizontal
	}
	if ind := doc.Inbox.UnreadIndicator; ind != nil {
		placement := content.IndicatorTopStart
		if ind.Placement == "top_end" {
			placement = content.IndicatorTopEnd
		}
		tpl.UnreadIndicator = &content.UnreadIndicator{
			Glyph:      ind.Glyph,
			Background: ind.Background,
			Placement:  placement,
		}
	}
	return tpl
}

func imageOf(spec *ImageSpec) *content.Image {
	if spec == nil {
		return nil
	}
	return &content.Image{URL: spec.URL, DarkURL: spec.DarkURL, Alt: spec.Alt}
}

func dismissStyle(s string) content.DismissStyle {
	switch s {
	case "simple":
		return content.DismissSimple
	case "circle":
		return content.DismissCircle
	default:
		return content.DismissNone
	}
}

// recordCardLines copies the source line of each card mapping onto doc.
func recordCardLines(root *yaml.Node, doc *Document) {
	if root.Kind != yaml.DocumentNode || len(root.Content) == 0 {
		return
	}
	top := root.Content[0]
	if top.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(top.Content); i += 2 {
		if top.Content[i].Value != "cards" {
			continue
		}
		seq := top.Content[i+1]
		for j, item := range seq.Content {
			if j < len(doc.Cards) {
				doc.Cards[j].line = item.Line
			}
		}
	}
}

// cardIDForNamespace maps a validator namespace such as
// "Document.Cards[2].ActionURL" back to the card's id.
func cardIDForNamespace(doc *Document, ns string) string {
	start := strings.Index(ns, "Cards[")
	if start < 0 {
		return ""
	}
	rest := ns[start+len("Cards["):]
	end := strings.Index(rest, "]")
	if end < 0 {
		return ""
	}
	idx, err := strconv.Atoi(rest[:end])
	if err != nil || idx < 0 || idx >= len(doc.Cards) {
		return ""
	}
	return doc.Cards[idx].ID
}

func extractLine(err error) int {
	if err == nil {
		return 0
	}
	matches := yamlLineRegex.FindStringSubmatch(err.Error())
	if len(matches) != 2 {
		return 0
	}
	line, convErr := strconv.Atoi(matches[1])
	if convErr != nil {
		return 0
	}
	return line
}
