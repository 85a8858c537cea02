package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var popupStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(colorInfo).
	Padding(0, 1)

// RenderPopup frames popup and draws it centred over base, which is clipped
// or padded to width x height first. Rows of base outside the popup are kept.
func RenderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	canvas := splitToLines(base, height)
	for i := range canvas {
		canvas[i] = padRight(canvas[i], width)
	}
	card := strings.Split(popupStyle.Render(popup), "\n")
	cardW := lipgloss.Width(strings.Join(card, "\n"))
	if cardW == 0 {
		return strings.Join(canvas, "\n")
	}
	x := max(0, (width-cardW)/2)
	y := max(0, (height-len(card))/2)
	for i, line := range card {
		if y+i >= height {
			break
		}
		canvas[y+i] = splice(canvas[y+i], padRight(line, cardW), x, width)
	}
	return strings.Join(canvas, "\n")
}

// splice replaces the columns of row starting at x with over, keeping the
// row's cells on both sides and its total width.
func splice(row, over string, x, width int) string {
	left := padRight(ansi.Truncate(row, x, ""), x)
	end := x + ansi.StringWidth(over)
	right := ""
	if end < width {
		right = ansi.TruncateLeft(row, end, "")
	}
	return padRight(left+over+right, width)
}
