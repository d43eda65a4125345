package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/contentcards/internal/style"
)

func TestBuildersWithoutOverridesMatchDefaults(t *testing.T) {
	assert.Equal(t, DefaultSmallImageCardStyle(), NewSmallImageCardStyleBuilder().Build())
	assert.Equal(t, DefaultLargeImageCardStyle(), NewLargeImageCardStyleBuilder().Build())
	assert.Equal(t, DefaultImageOnlyCardStyle(), NewImageOnlyCardStyleBuilder().Build())
	assert.Equal(t, DefaultInboxStyle(), NewInboxStyleBuilder().Build())
}

func TestBuildersAcceptNilOverrides(t *testing.T) {
	got := NewSmallImageCardStyleBuilder().
		Card(nil).
		RootRow(nil).
		Image(nil).
		TextColumn(nil).
		Title(nil).
		Body(nil).
		ButtonRow(nil).
		ButtonStyles(nil, nil).
		DismissIcon(nil).
		DismissAlignment(nil).
		Build()

	assert.Equal(t, DefaultSmallImageCardStyle(), got)
}

func TestSmallImageBuilderOverrides(t *testing.T) {
	def := DefaultSmallImageCardStyle()
	red := style.Color{Light: "#ff0000", Dark: "#ff0000"}

	got := NewSmallImageCardStyleBuilder().
		Title(&style.TextStyle{Foreground: &red}).
		DismissAlignment(style.Ptr(style.BottomStart)).
		Build()

	require.NotNil(t, got.Title.Foreground)
	assert.Equal(t, red, *got.Title.Foreground)
	assert.Equal(t, def.Title.Bold, got.Title.Bold)
	assert.Equal(t, def.Title.MaxLines, got.Title.MaxLines)
	assert.Equal(t, style.BottomStart, got.DismissAlignment)
	assert.Equal(t, def.Body, got.Body)
}

func TestButtonStylesArePositional(t *testing.T) {
	def := DefaultLargeImageCardStyle()

	got := NewLargeImageCardStyleBuilder().
		ButtonStyles(nil, &style.ButtonStyle{Enabled: style.Ptr(false)}, nil, &style.ButtonStyle{Enabled: style.Ptr(false)}).
		Build()

	assert.Equal(t, def.Buttons[0], got.Buttons[0])
	assert.False(t, got.Buttons[1].IsEnabled())
	assert.Equal(t, def.Buttons[1].Background, got.Buttons[1].Background)
	assert.Equal(t, def.Buttons[1].Text, got.Buttons[1].Text)
	assert.Equal(t, def.Buttons[2], got.Buttons[2])
}

func TestButtonTextIsMergedNotReplaced(t *testing.T) {
	def := DefaultSmallImageCardStyle()
	italic := true

	got := NewSmallImageCardStyleBuilder().
		ButtonStyles(&style.ButtonStyle{Text: &style.TextStyle{Italic: &italic}}).
		Build()

	require.NotNil(t, got.Buttons[0].Text)
	assert.Equal(t, &italic, got.Buttons[0].Text.Italic)
	assert.Equal(t, def.Buttons[0].Text.Foreground, got.Buttons[0].Text.Foreground)
	assert.Equal(t, def.Buttons[0].Text.Bold, got.Buttons[0].Text.Bold)
}

func TestCardBoxIsReplacedWholesale(t *testing.T) {
	got := NewImageOnlyCardStyleBuilder().
		Card(&style.CardStyle{Box: &style.BoxStyle{Width: style.Ptr(30)}}).
		Build()

	require.NotNil(t, got.Card.Box)
	assert.Equal(t, 30, *got.Card.Box.Width)
	assert.Nil(t, got.Card.Box.Border)
	assert.True(t, got.Card.IsEnabled())
}

func TestInboxUnreadBackground(t *testing.T) {
	assert.Nil(t, NewInboxStyleBuilder().Build().UnreadBackground)

	bg := style.Color{Light: "#dbeafe", Dark: "#1e3a8a"}
	got := NewInboxStyleBuilder().UnreadBackground(&bg).Build()
	require.NotNil(t, got.UnreadBackground)
	assert.Equal(t, bg, *got.UnreadBackground)

	bg.Light = "#000000"
	assert.Equal(t, "#dbeafe", got.UnreadBackground.Light)
}

func TestDefaultsFollowTheme(t *testing.T) {
	t.Cleanup(func() { SetTheme(DefaultTheme()) })

	SetTheme(DarkTheme())
	got := DefaultSmallImageCardStyle()
	require.NotNil(t, got.Title.Foreground)
	assert.Equal(t, DarkTheme().Palette.Surface.OnBase, *got.Title.Foreground)
	assert.Equal(t, got, NewSmallImageCardStyleBuilder().Build())
}
