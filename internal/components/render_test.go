package components

import (
	"errors"
	"image"
	"image/color"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/alexisbeaulieu97/contentcards/internal/content"
	"github.com/alexisbeaulieu97/contentcards/internal/state"
	"github.com/alexisbeaulieu97/contentcards/internal/style"
)

type fakeImages map[string]image.Image

func (f fakeImages) Lookup(url string) (image.Image, bool) {
	img, ok := f[url]
	return img, ok
}

func solid(w, h int) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			img.Set(x, y, color.RGBA{R: 200, A: 255})
		}
	}
	return img
}

func smallCard(id string) *content.Card {
	body := content.Text{Content: "Body copy"}
	return content.NewCard(id, content.SmallImageTemplate{
		Title:   content.Text{Content: "Title " + id},
		Body:    &body,
		Image:   &content.Image{URL: "https://cdn.example.com/a.png", DarkURL: "https://cdn.example.com/a-dark.png", Alt: "banner"},
		Buttons: []content.Button{{ID: "b1", Text: content.Text{Content: "Open"}}, {ID: "b2", Text: content.Text{Content: "Later"}}},
		Dismiss: content.DismissButton{Style: content.DismissSimple},
	}, true)
}

func TestRenderSmallImageCard(t *testing.T) {
	r := NewRenderer(WithDarkBackground(false))
	out := r.Card(smallCard("one"), NoFocus)

	assert.Contains(t, out, "Title one")
	assert.Contains(t, out, "Body copy")
	assert.Contains(t, out, "Open")
	assert.Contains(t, out, "Later")
	assert.Contains(t, out, "✕")
	assert.Contains(t, out, "banner")
}

func TestRenderUsesImageSource(t *testing.T) {
	src := fakeImages{"https://cdn.example.com/a-dark.png": solid(8, 8)}

	dark := NewRenderer(WithDarkBackground(true), WithImages(src)).Card(smallCard("one"), NoFocus)
	assert.Contains(t, dark, "▀")
	assert.NotContains(t, dark, "banner")

	light := NewRenderer(WithDarkBackground(false), WithImages(src)).Card(smallCard("one"), NoFocus)
	assert.Contains(t, light, "banner")
}

func TestRenderLargeAndImageOnly(t *testing.T) {
	r := NewRenderer(WithDarkBackground(false))

	large := content.NewCard("l", content.LargeImageTemplate{
		Title: content.Text{Content: "Large title"},
	}, false)
	assert.Contains(t, r.Card(large, NoFocus), "Large title")

	only := content.NewCard("i", content.ImageOnlyTemplate{
		Image:   content.Image{URL: "https://cdn.example.com/hero.png", Alt: "hero"},
		Dismiss: content.DismissButton{Style: content.DismissCircle},
	}, false)
	out := r.Card(only, NoFocus)
	assert.Contains(t, out, "hero")
	assert.Contains(t, out, "ⓧ")
}

func TestRenderClampsTitle(t *testing.T) {
	style1 := NewLargeImageCardStyleBuilder().
		Title(&style.TextStyle{MaxLines: style.Ptr(1)}).
		Card(&style.CardStyle{Box: &style.BoxStyle{Width: style.Ptr(12)}}).
		Build()
	r := NewRenderer(WithDarkBackground(false), WithLargeImageStyle(style1))

	card := content.NewCard("l", content.LargeImageTemplate{
		Title: content.Text{Content: "alpha beta gamma delta"},
	}, false)
	out := r.Card(card, NoFocus)
	assert.Contains(t, out, "alpha beta…")
	assert.NotContains(t, out, "gamma")
}

func TestButtonEnabled(t *testing.T) {
	s := NewSmallImageCardStyleBuilder().
		ButtonStyles(nil, &style.ButtonStyle{Enabled: style.Ptr(false)}).
		Build()
	r := NewRenderer(WithDarkBackground(false), WithSmallImageStyle(s))
	card := smallCard("one")

	assert.True(t, r.CardEnabled(card))
	assert.True(t, r.ButtonEnabled(card, 0))
	assert.False(t, r.ButtonEnabled(card, 1))
	assert.False(t, r.ButtonEnabled(card, 2), "no third button on this card")
	assert.False(t, r.ButtonEnabled(card, -1))
}

func TestCardDisabled(t *testing.T) {
	s := NewImageOnlyCardStyleBuilder().Card(&style.CardStyle{Enabled: style.Ptr(false)}).Build()
	r := NewRenderer(WithDarkBackground(false), WithImageOnlyStyle(s))

	card := content.NewCard("i", content.ImageOnlyTemplate{}, false)
	assert.False(t, r.CardEnabled(card))
	assert.False(t, r.CardEnabled(nil))
}

func TestInboxLoadingAndErrorViews(t *testing.T) {
	r := NewRenderer(WithDarkBackground(false))

	assert.Contains(t, r.Inbox(state.Loading{}, Selection{}, ViewContext{Spinner: "*"}), "* Loading cards")
	assert.Contains(t, r.Inbox(nil, Selection{}, ViewContext{}), "Loading cards")

	out := r.Inbox(state.Error{Cause: errors.New("feed offline")}, Selection{}, ViewContext{Width: 40})
	assert.Contains(t, out, "Couldn't load cards")
	assert.Contains(t, out, "feed offline")
	assert.Contains(t, out, "press r to retry")
}

func TestInboxCustomViews(t *testing.T) {
	r := NewRenderer(
		WithDarkBackground(false),
		WithLoadingView(func(ViewContext) string { return "custom loading" }),
		WithErrorView(func(err error, _ ViewContext) string { return "custom: " + err.Error() }),
	)

	assert.Equal(t, "custom loading", r.Inbox(state.Loading{}, Selection{}, ViewContext{}))
	assert.Equal(t, "custom: boom", r.Inbox(state.Error{Cause: errors.New("boom")}, Selection{}, ViewContext{}))

	fallback := NewRenderer(WithDarkBackground(false), WithLoadingView(nil))
	assert.Contains(t, fallback.Inbox(state.Loading{}, Selection{}, ViewContext{}), "Loading cards")
}

func TestInboxEmptyState(t *testing.T) {
	r := NewRenderer(WithDarkBackground(false))

	tpl := content.InboxTemplate{Heading: content.Text{Content: "Inbox"}}
	out := r.Inbox(state.Success{Template: tpl}, Selection{}, ViewContext{Width: 40})
	assert.Contains(t, out, "Inbox")
	assert.Contains(t, out, defaultEmptyMessage)

	tpl.EmptyMessage = content.Text{Content: "Nothing new"}
	tpl.EmptyImage = &content.Image{URL: "https://cdn.example.com/empty.png", Alt: "empty"}
	dismissed := smallCard("gone")
	dismissed.State.Dismissed = true

	out = r.Inbox(state.Success{Template: tpl, Cards: []*content.Card{dismissed}}, Selection{}, ViewContext{Width: 40})
	assert.Contains(t, out, "Nothing new")
	assert.Contains(t, out, "empty")
	assert.NotContains(t, out, "Title gone")
}

func TestInboxRendersVisibleCardsOnly(t *testing.T) {
	r := NewRenderer(WithDarkBackground(false))

	cards := []*content.Card{smallCard("a"), smallCard("b"), smallCard("c")}
	cards[0].State.Dismissed = true
	tpl := content.InboxTemplate{Capacity: 1}

	out := r.Inbox(state.Success{Template: tpl, Cards: cards}, Selection{Card: 0, Button: -1}, ViewContext{})
	assert.NotContains(t, out, "Title a")
	assert.Contains(t, out, "Title b")
	assert.NotContains(t, out, "Title c")
}

func TestInboxUnreadBadge(t *testing.T) {
	r := NewRenderer(WithDarkBackground(false))

	cards := []*content.Card{smallCard("a"), smallCard("b")}
	read := true
	cards[1].State.Read = &read

	tpl := content.InboxTemplate{
		Heading:         content.Text{Content: "News"},
		UnreadEnabled:   true,
		UnreadIndicator: &content.UnreadIndicator{Glyph: "★", Placement: content.IndicatorTopEnd},
	}
	out := r.Inbox(state.Success{Template: tpl, Cards: cards}, Selection{Card: -1}, ViewContext{})
	assert.Contains(t, out, "1 unread")
	assert.Equal(t, 1, strings.Count(out, "★"))

	tpl.UnreadEnabled = false
	out = r.Inbox(state.Success{Template: tpl, Cards: cards}, Selection{Card: -1}, ViewContext{})
	assert.NotContains(t, out, "unread")
	assert.NotContains(t, out, "★")
}

func TestInboxHorizontalLayout(t *testing.T) {
	r := NewRenderer(WithDarkBackground(false))

	cards := []*content.Card{smallCard("a"), smallCard("b")}
	tpl := content.InboxTemplate{Layout: content.Horizontal}
	out := r.Inbox(state.Success{Template: tpl, Cards: cards}, Selection{Card: -1}, ViewContext{})

	first := strings.Split(out, "\n")
	found := false
	for _, line := range first {
		if strings.Contains(line, "Title a") && strings.Contains(line, "Title b") {
			found = true
		}
	}
	assert.True(t, found, "cards should share a row")
}

func TestTextHelpers(t *testing.T) {
	assert.Equal(t, "abc\ndef", wrapText("abcdef", 3))
	assert.Equal(t, "one two\nthree", wrapText("one two three", 7))
	assert.Equal(t, "a\nb…", clampLines("a\nb\nc", 2))
	assert.Equal(t, "a\nb", clampLines("a\nb", 0))
	assert.Equal(t, "x   y", cornerRow(5, "x", "y"))
	assert.Empty(t, cornerRow(5, "", ""))
	assert.Empty(t, joinVertical(0, 1, "", ""))
}
