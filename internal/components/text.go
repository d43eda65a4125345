package components

import (
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/contentcards/internal/style"
)

// renderText wraps text to width, clamps it to the style's line limit and
// applies the style.
func renderText(text string, ts style.TextStyle, width int) string {
	if text == "" {
		return ""
	}
	body := clampLines(wrapText(text, width), ts.Lines())
	base := lipgloss.NewStyle()
	if width > 0 {
		base = base.Width(width)
	}
	return ts.Apply(base).Render(body)
}

// wrapText wraps text to fit within width columns.
// It handles long words by breaking them across multiple lines.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return text
	}

	var lines []string
	currentLine := ""

	for _, word := range words {
		if utf8.RuneCountInString(word) > width {
			wordRunes := []rune(word)
			if currentLine != "" {
				lines = append(lines, currentLine)
				currentLine = ""
			}
			for len(wordRunes) > width {
				lines = append(lines, string(wordRunes[:width]))
				wordRunes = wordRunes[width:]
			}
			if len(wordRunes) > 0 {
				currentLine = string(wordRunes)
			}
			continue
		}

		testLine := currentLine
		if currentLine != "" {
			testLine += " "
		}
		testLine += word

		if utf8.RuneCountInString(testLine) <= width {
			currentLine = testLine
		} else {
			if currentLine != "" {
				lines = append(lines, currentLine)
			}
			currentLine = word
		}
	}

	if currentLine != "" {
		lines = append(lines, currentLine)
	}

	return strings.Join(lines, "\n")
}

// clampLines keeps the first n lines, marking the cut with an ellipsis.
// n <= 0 keeps everything.
func clampLines(text string, n int) string {
	if n <= 0 {
		return text
	}
	lines := strings.Split(text, "\n")
	if len(lines) <= n {
		return text
	}
	lines = lines[:n]
	lines[n-1] = strings.TrimRight(lines[n-1], " ") + "…"
	return strings.Join(lines, "\n")
}

// joinVertical stacks non-empty blocks with gap blank lines between them.
func joinVertical(pos lipgloss.Position, gap int, blocks ...string) string {
	parts := make([]string, 0, len(blocks)*2)
	for _, b := range blocks {
		if b == "" {
			continue
		}
		if len(parts) > 0 && gap > 0 {
			parts = append(parts, strings.Repeat("\n", gap-1))
		}
		parts = append(parts, b)
	}
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.JoinVertical(pos, parts...)
}

// joinHorizontal places non-empty blocks side by side with gap columns
// between them.
func joinHorizontal(pos lipgloss.Position, gap int, blocks ...string) string {
	parts := make([]string, 0, len(blocks)*2)
	for _, b := range blocks {
		if b == "" {
			continue
		}
		if len(parts) > 0 && gap > 0 {
			parts = append(parts, strings.Repeat(" ", gap))
		}
		parts = append(parts, b)
	}
	if len(parts) == 0 {
		return ""
	}
	return lipgloss.JoinHorizontal(pos, parts...)
}
