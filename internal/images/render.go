package images

import (
	"fmt"
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/image/draw"
)

// Render draws img as half-block cells, width columns wide. Each cell covers
// two source rows, so the output is height lines. A height of zero keeps the
// aspect ratio.
func Render(img image.Image, width, height int) string {
	if img == nil || width <= 0 {
		return ""
	}
	b := img.Bounds()
	if b.Dx() == 0 || b.Dy() == 0 {
		return ""
	}
	if height <= 0 {
		// Terminal cells are roughly twice as tall as wide; a cell holds two
		// pixel rows, which cancels out.
		height = (b.Dy()*width/b.Dx() + 1) / 2
		if height < 1 {
			height = 1
		}
	}

	dst := image.NewRGBA(image.Rect(0, 0, width, height*2))
	draw.ApproxBiLinear.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)

	var sb strings.Builder
	for row := 0; row < height; row++ {
		if row > 0 {
			sb.WriteByte('\n')
		}
		for col := 0; col < width; col++ {
			top := hexColor(dst.At(col, row*2))
			bottom := hexColor(dst.At(col, row*2+1))
			cell := lipgloss.NewStyle().
				Foreground(lipgloss.Color(top)).
				Background(lipgloss.Color(bottom))
			sb.WriteString(cell.Render("▀"))
		}
	}
	return sb.String()
}

// Placeholder fills a width x height box with a shaded pattern and the alt
// text, used while an image loads or when it fails.
func Placeholder(alt string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	label := alt
	if len([]rune(label)) > width {
		label = string([]rune(label)[:width])
	}
	return lipgloss.NewStyle().
		Width(width).
		Height(height).
		Align(lipgloss.Center, lipgloss.Center).
		Foreground(lipgloss.AdaptiveColor{Light: "#64748b", Dark: "#94a3b8"}).
		Render(label)
}

func hexColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
