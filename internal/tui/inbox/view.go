package inbox

import (
	"strings"

	"github.com/alexisbeaulieu97/contentcards/internal/components"
)

const maxButtons = components.MaxButtons

// View renders the current model state
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.viewport.View())
	b.WriteString("\n")
	b.WriteString(m.renderFooter())
	return b.String()
}

// Render returns the inbox body without the viewport or footer.
func (m Model) Render() string {
	return m.renderer.Inbox(m.current, components.Selection{Card: m.cursor, Button: m.button}, components.ViewContext{
		Width:   m.width,
		Spinner: m.spinner.View(),
	})
}

func (m *Model) syncViewport() {
	m.viewport.SetContent(m.Render())
}

func (m Model) renderFooter() string {
	if m.status != "" {
		return statusStyle.Render(m.status) + "\n" + helpStyle.Render("esc to clear")
	}
	help := "↑/↓ select • tab button • enter open • 1-3 press button • d dismiss • r refresh • q quit"
	if m.refreshing {
		help = m.spinner.View() + " refreshing… " + help
	}
	if m.closed {
		help = "feed closed • q quit"
	}
	return "\n" + helpStyle.Render(help)
}
