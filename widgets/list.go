package widgets

import "strings"

// List renders items one per line. Cursor < 0 disables the highlight.
type List struct {
	Title  string
	Items  []string
	Cursor int
	Empty  string
}

func (l List) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	rows := make([]string, 0, len(l.Items)+1)
	if l.Title != "" {
		rows = append(rows, HeaderStyle.Render(l.Title))
	}
	if len(l.Items) == 0 && l.Empty != "" {
		rows = append(rows, MutedStyle.Render(l.Empty))
	}
	start := scrollStart(l.Cursor, len(l.Items), height-len(rows))
	for i := start; i < len(l.Items); i++ {
		item := padRight("  "+l.Items[i], width)
		if i == l.Cursor {
			item = CursorStyle.Render(padRight("▶ "+l.Items[i], width))
		}
		rows = append(rows, item)
		if len(rows) >= height {
			break
		}
	}
	return strings.Join(rows, "\n")
}

// scrollStart keeps the cursor row visible inside a window of n rows.
func scrollStart(cursor, total, n int) int {
	if n <= 0 || cursor < n || total <= n {
		return 0
	}
	start := cursor - n + 1
	if start > total-n {
		start = total - n
	}
	return max(0, start)
}
