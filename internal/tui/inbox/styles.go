package inbox

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	mutedColor = lipgloss.AdaptiveColor{Light: "#64748b", Dark: "#94a3b8"}
	errorColor = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}

	spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#3b82f6", Dark: "#60a5fa"})

	helpStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Faint(true)

	statusStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)
)
