package core

import "github.com/charmbracelet/lipgloss"

// BhioHub palette: navy surfaces with the brand green as accent.
var (
	colorText     lipgloss.Color = "#e6edf3"
	colorMuted    lipgloss.Color = "#9aa7b4"
	colorAccent   lipgloss.Color = "#7ed957"
	colorError    lipgloss.Color = "#f38ba8"
	colorInfo     lipgloss.Color = "#89b4fa"
	colorMantle   lipgloss.Color = "#0b1a2a"
	colorSurface0 lipgloss.Color = "#14283d"
)

var (
	appStyle    = lipgloss.NewStyle().Foreground(colorText)
	footerStyle = lipgloss.NewStyle().Background(colorMantle)
	statusStyle = lipgloss.NewStyle().Background(colorSurface0)

	footerKeyStyle  = lipgloss.NewStyle().Foreground(colorAccent).Background(colorMantle).Bold(true)
	footerDescStyle = lipgloss.NewStyle().Foreground(colorMuted).Background(colorMantle)
)

// toastLook is the glyph and colour a toast variant gets in the status bar.
var toastLook = map[ToastVariant]struct {
	glyph string
	color lipgloss.Color
}{
	ToastInfo:        {"•", colorInfo},
	ToastSuccess:     {"✔", colorAccent},
	ToastDestructive: {"✖", colorError},
}
