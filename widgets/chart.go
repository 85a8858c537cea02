package widgets

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

type ChartPoint struct {
	Label string
	Value float64
}

// Chart is a horizontal bar chart scaled to the largest value. Bars use
// eighth-cell blocks so close values stay distinguishable in narrow panes.
type Chart struct {
	Title string
	Data  []ChartPoint
	Unit  string
}

var eighths = []string{"", "▏", "▎", "▍", "▌", "▋", "▊", "▉"}

func (c Chart) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	var lines []string
	if c.Title != "" {
		lines = append(lines, HeaderStyle.Render(c.Title))
	}
	if len(c.Data) == 0 {
		return strings.Join(append(lines, MutedStyle.Render("(sem dados)")), "\n")
	}
	labelW, peak := 0, 0.0
	for _, p := range c.Data {
		labelW = max(labelW, ansi.StringWidth(p.Label))
		peak = max(peak, p.Value)
	}
	if peak <= 0 {
		peak = 1
	}
	valueW := len(fmt.Sprintf("%g%s", peak, c.Unit))
	span := max(1, width-labelW-valueW-2)
	for _, p := range c.Data {
		if len(lines) >= height {
			break
		}
		lines = append(lines, fmt.Sprintf("%s %s %g%s",
			padRight(p.Label, labelW), AccentStyle.Render(bar(p.Value/peak, span)), p.Value, c.Unit))
	}
	return strings.Join(lines, "\n")
}

// bar draws frac of span cells, never less than a sliver for positive values.
func bar(frac float64, span int) string {
	units := int(max(0, frac) * float64(span*8))
	if frac > 0 && units == 0 {
		units = 1
	}
	full, part := units/8, units%8
	return strings.Repeat("█", full) + eighths[part]
}
