package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var paneTitleStyle = lipgloss.NewStyle().Foreground(colorText).Bold(true)

// Pane draws a rounded frame with the title set into the top border.
// Height is the preferred height; a positive available height caps it.
type Pane struct {
	Title    string
	Height   int
	Content  string
	Selected bool
}

func (p Pane) Render(width, height int) string {
	if width <= 0 {
		return ""
	}
	width = max(width, 5)
	h := max(p.Height, 3)
	if height > 0 {
		h = max(3, min(h, height))
	}
	inner := width - 2

	edge := lipgloss.NewStyle().Foreground(colorBorder)
	title := "  " + p.Title
	if p.Selected {
		edge = edge.Foreground(colorInfo)
		title = "▶ " + p.Title
	}
	title = " " + ansi.Truncate(strings.TrimSpace(title), max(1, inner-3), "…") + " "
	fill := max(0, inner-1-ansi.StringWidth(title))

	rows := make([]string, 0, h)
	rows = append(rows, edge.Render("╭─")+paneTitleStyle.Render(title)+edge.Render(strings.Repeat("─", fill)+"╮"))
	var body []string
	if strings.TrimSpace(p.Content) != "" {
		body = strings.Split(p.Content, "\n")
	}
	side := edge.Render("│")
	for i := 0; i < h-2; i++ {
		line := ""
		if i < len(body) {
			line = body[i]
		}
		rows = append(rows, side+" "+padRight(line, inner-2)+" "+side)
	}
	rows = append(rows, edge.Render("╰"+strings.Repeat("─", inner)+"╯"))
	return strings.Join(rows, "\n")
}
