package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

type SidebarItem struct {
	Icon  string
	Label string
}

// Sidebar is the persistent navigation column of a shell.
type Sidebar struct {
	Brand  string
	Items  []SidebarItem
	Active int
	Footer string
}

var (
	sidebarStyle = lipgloss.NewStyle().
			Background(colorBrand).
			Foreground(colorText)
	sidebarBrandStyle = lipgloss.NewStyle().
				Background(colorBrand).
				Foreground(colorGreen).
				Bold(true)
	sidebarItemStyle = lipgloss.NewStyle().
				Background(colorBrand).
				Foreground(colorMuted)
	sidebarActiveStyle = lipgloss.NewStyle().
				Background(colorGreen).
				Foreground(colorBrand).
				Bold(true)
)

func (s Sidebar) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := make([]string, 0, height)
	rows = append(rows, sidebarBrandStyle.Render(padRight(" "+s.Brand, width)))
	rows = append(rows, sidebarStyle.Render(padRight(" "+strings.Repeat("─", max(0, width-2)), width)))
	for i, item := range s.Items {
		label := fmt.Sprintf(" %d %s %s", i+1, item.Icon, item.Label)
		if i == s.Active {
			rows = append(rows, sidebarActiveStyle.Render(padRight(label, width)))
			continue
		}
		rows = append(rows, sidebarItemStyle.Render(padRight(label, width)))
	}
	footer := ""
	if s.Footer != "" {
		footer = sidebarItemStyle.Render(padRight(" "+ansi.Truncate(s.Footer, max(1, width-1), "…"), width))
	}
	blank := sidebarStyle.Render(strings.Repeat(" ", width))
	limit := height
	if footer != "" {
		limit = height - 1
	}
	if len(rows) > limit {
		rows = rows[:max(0, limit)]
	}
	for len(rows) < limit {
		rows = append(rows, blank)
	}
	if footer != "" && height > 0 {
		rows = append(rows, footer)
	}
	return strings.Join(rows, "\n")
}
