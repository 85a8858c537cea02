package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// Table aligns columns to the widest cell. Cursor < 0 disables the highlight.
type Table struct {
	Headers []string
	Rows    [][]string
	Cursor  int
	Empty   string
}

func (t Table) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	if len(t.Headers) == 0 {
		return "No data"
	}
	widths := make([]int, len(t.Headers))
	for i, h := range t.Headers {
		widths[i] = ansi.StringWidth(h)
	}
	for _, row := range t.Rows {
		for i := 0; i < len(row) && i < len(widths); i++ {
			widths[i] = max(widths[i], ansi.StringWidth(row[i]))
		}
	}
	lines := []string{HeaderStyle.Render(padRight(t.row(t.Headers, widths), width))}
	if len(t.Rows) == 0 && t.Empty != "" {
		lines = append(lines, MutedStyle.Render(t.Empty))
	}
	start := scrollStart(t.Cursor, len(t.Rows), height-1)
	for i := start; i < len(t.Rows); i++ {
		line := padRight(t.row(t.Rows[i], widths), width)
		if i == t.Cursor {
			line = CursorStyle.Render(line)
		}
		lines = append(lines, line)
		if len(lines) >= height {
			break
		}
	}
	return strings.Join(lines, "\n")
}

func (t Table) row(cells []string, widths []int) string {
	cols := make([]string, len(widths))
	for i := range widths {
		cell := ""
		if i < len(cells) {
			cell = cells[i]
		}
		cols[i] = padRight(cell, widths[i])
	}
	return strings.Join(cols, " │ ")
}
