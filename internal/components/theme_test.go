package components

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestThemeByName(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{name: "", want: "default"},
		{name: "default", want: "default"},
		{name: " Dark ", want: "dark"},
		{name: "light", want: "light"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			theme, err := ThemeByName(tt.name)
			require.NoError(t, err)
			assert.Equal(t, tt.want, theme.Name)
		})
	}

	_, err := ThemeByName("neon")
	assert.ErrorContains(t, err, "neon")
}

func TestThemeManager(t *testing.T) {
	m := NewThemeManager(DefaultTheme())
	assert.Equal(t, "default", m.Theme().Name)

	m.SetTheme(DarkTheme())
	assert.Equal(t, "dark", m.Theme().Name)
	assert.NotEqual(t, DefaultTheme().Palette.Surface, m.Theme().Palette.Surface)
}
