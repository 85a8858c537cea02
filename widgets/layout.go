package widgets

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VStack splits the height between its children, top to bottom. Ratios,
// when given one per child, weight the split; otherwise it is even.
type VStack struct {
	Widgets []Widget
	Spacing int
	Ratios  []float64
}

func (v VStack) Render(width, height int) string {
	n := len(v.Widgets)
	if n == 0 || width <= 0 || height <= 0 {
		return ""
	}
	sizes := distribute(height-v.Spacing*(n-1), n, v.Ratios)
	gap := strings.Repeat("\n", v.Spacing)
	var b strings.Builder
	for i, w := range v.Widgets {
		if i > 0 {
			b.WriteString("\n" + gap)
		}
		b.WriteString(w.Render(width, sizes[i]))
	}
	return b.String()
}

// HStack places its children side by side, each padded to its column.
type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	n := len(h.Widgets)
	if n == 0 || width <= 0 || height <= 0 {
		return ""
	}
	sizes := distribute(width-h.Gap*(n-1), n, h.Ratios)
	columns := make([][]string, n)
	rows := 0
	for i, w := range h.Widgets {
		columns[i] = strings.Split(w.Render(sizes[i], height), "\n")
		rows = max(rows, len(columns[i]))
	}
	sep := strings.Repeat(" ", h.Gap)
	out := make([]string, rows)
	for r := range out {
		cells := make([]string, n)
		for i, col := range columns {
			line := ""
			if r < len(col) {
				line = col[r]
			}
			cells[i] = padRight(line, sizes[i])
		}
		out[r] = strings.Join(cells, sep)
	}
	return strings.Join(out, "\n")
}

// distribute splits total cells over n slots, at least one cell each. The
// remainder left by flooring goes to the leading slots.
func distribute(total, n int, ratios []float64) []int {
	total = max(total, n)
	weights := make([]float64, n)
	sum := 0.0
	for i := range weights {
		weights[i] = 1
		if len(ratios) == n && ratios[i] > 0 {
			weights[i] = ratios[i]
		}
		sum += weights[i]
	}
	rest := total - n
	sizes := make([]int, n)
	used := 0
	for i, w := range weights {
		sizes[i] = 1 + int(w/sum*float64(rest))
		used += sizes[i]
	}
	for i := 0; used < total; i = (i + 1) % n {
		sizes[i]++
		used++
	}
	return sizes
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if gap := width - ansi.StringWidth(s); gap > 0 {
		s += strings.Repeat(" ", gap)
	}
	return s
}

// splitToLines splits s and, when height is positive, clips or pads the
// result to exactly height lines.
func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height <= 0 {
		return lines
	}
	if len(lines) > height {
		return lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}
