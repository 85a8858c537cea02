package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Widget renders itself into a width x height cell box.
type Widget interface {
	Render(width, height int) string
}

// Text is a pre-rendered block clipped to the box it is given.
type Text string

func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := splitToLines(string(t), height)
	for i := range lines {
		lines[i] = padRight(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

var (
	colorText   lipgloss.Color = "#e6edf3"
	colorMuted  lipgloss.Color = "#9aa7b4"
	colorBorder lipgloss.Color = "#3d5a73"
	colorBrand  lipgloss.Color = "#002b4e"
	colorGreen  lipgloss.Color = "#7ed957"
	colorInfo   lipgloss.Color = "#89b4fa"
)

var (
	MutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	AccentStyle = lipgloss.NewStyle().Foreground(colorGreen).Bold(true)
	HeaderStyle = lipgloss.NewStyle().Foreground(colorInfo).Bold(true)
	CursorStyle = lipgloss.NewStyle().Foreground(colorBrand).Background(colorGreen).Bold(true)
)
