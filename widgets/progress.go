package widgets

import (
	"fmt"

	"github.com/charmbracelet/bubbles/progress"
)

// ProgressBar renders a static percentage bar followed by its value.
func ProgressBar(percent, width int) string {
	percent = min(100, max(0, percent))
	label := fmt.Sprintf(" %3d%%", percent)
	barWidth := max(4, width-len(label))
	bar := progress.New(
		progress.WithGradient(string(colorInfo), string(colorGreen)),
		progress.WithWidth(barWidth),
		progress.WithoutPercentage(),
	)
	return bar.ViewAs(float64(percent) / 100) + label
}
