package components

import (
	"fmt"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
)

// ColourSet groups the colours of one semantic slot.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by the card defaults.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Danger    ColourSet
	Neutral   ColourSet
}

// Theme is the colour source for every Default*Style function.
type Theme struct {
	Name    string
	Palette Palette
}

// ThemeManager coordinates access to a Theme instance.
type ThemeManager struct {
	mu    sync.RWMutex
	theme Theme
}

// NewThemeManager allocates a ThemeManager with the provided theme.
func NewThemeManager(theme Theme) *ThemeManager {
	return &ThemeManager{theme: theme}
}

// SetTheme replaces the managed theme.
func (m *ThemeManager) SetTheme(theme Theme) {
	m.mu.Lock()
	m.theme = theme
	m.mu.Unlock()
}

// Theme returns a copy of the managed theme.
func (m *ThemeManager) Theme() Theme {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.theme
}

func ac(light, dark string) lipgloss.AdaptiveColor {
	return lipgloss.AdaptiveColor{Light: light, Dark: dark}
}

// DefaultTheme returns the adaptive theme that follows the terminal
// background.
func DefaultTheme() Theme {
	return Theme{
		Name: "default",
		Palette: Palette{
			Primary: ColourSet{
				Base:     ac("#3b82f6", "#60a5fa"),
				OnBase:   ac("#f8fafc", "#0b1120"),
				Muted:    ac("#2563eb", "#1d4ed8"),
				Contrast: ac("#facc15", "#ca8a04"),
			},
			Secondary: ColourSet{
				Base:     ac("#a855f7", "#c084fc"),
				OnBase:   ac("#f8fafc", "#1f2937"),
				Muted:    ac("#7c3aed", "#6b21a8"),
				Contrast: ac("#f472b6", "#f472b6"),
			},
			Surface: ColourSet{
				Base:     ac("#f9fafb", "#111827"),
				OnBase:   ac("#111827", "#f9fafb"),
				Muted:    ac("#e2e8f0", "#1f2937"),
				Contrast: ac("#3b82f6", "#60a5fa"),
			},
			Danger: ColourSet{
				Base:     ac("#ef4444", "#f87171"),
				OnBase:   ac("#7f1d1d", "#450a0a"),
				Muted:    ac("#dc2626", "#b91c1c"),
				Contrast: ac("#f8fafc", "#f8fafc"),
			},
			Neutral: ColourSet{
				Base:     ac("#64748b", "#94a3b8"),
				OnBase:   ac("#f1f5f9", "#0f172a"),
				Muted:    ac("#475569", "#334155"),
				Contrast: ac("#f8fafc", "#f8fafc"),
			},
		},
	}
}

// DarkTheme pins the surface colours to their dark variants.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "dark"

	theme.Palette.Surface = ColourSet{
		Base:     ac("#111827", "#0b1120"),
		OnBase:   ac("#f9fafb", "#e5e7eb"),
		Muted:    ac("#1f2937", "#111827"),
		Contrast: ac("#3b82f6", "#60a5fa"),
	}
	theme.Palette.Neutral = ColourSet{
		Base:     ac("#475569", "#334155"),
		OnBase:   ac("#e5e7eb", "#cbd5f5"),
		Muted:    ac("#374151", "#1f2937"),
		Contrast: ac("#f8fafc", "#f8fafc"),
	}
	return theme
}

// LightTheme returns a light theme variant
func LightTheme() Theme {
	theme := DefaultTheme()
	theme.Name = "light"
	return theme
}

// ThemeByName resolves a configured theme name.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return DefaultTheme(), nil
	case "dark":
		return DarkTheme(), nil
	case "light":
		return LightTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}

var defaultThemeManager = NewThemeManager(DefaultTheme())

// SetTheme sets the global theme
func SetTheme(theme Theme) {
	defaultThemeManager.SetTheme(theme)
}

// GetTheme returns the current global theme
func GetTheme() Theme {
	return defaultThemeManager.Theme()
}
