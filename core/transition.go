package core

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

const transitionFrames = 6

// Transition slides freshly mounted content in from the right. It only
// affects rendering; the tab switch it decorates has already been applied.
type Transition struct {
	enabled  bool
	interval time.Duration
	gen      int
	left     int
}

func NewTransition(enabled bool, duration time.Duration) Transition {
	if duration <= 0 {
		duration = 300 * time.Millisecond
	}
	return Transition{enabled: enabled, interval: duration / transitionFrames}
}

func (t *Transition) start() tea.Cmd {
	if !t.enabled {
		return nil
	}
	t.gen++
	t.left = transitionFrames
	return tickAfter(t.interval, transitionFrameMsg{gen: t.gen})
}

func (t *Transition) frame(msg transitionFrameMsg) tea.Cmd {
	if msg.gen != t.gen || t.left == 0 {
		return nil
	}
	t.left--
	if t.left == 0 {
		return nil
	}
	return tickAfter(t.interval, transitionFrameMsg{gen: t.gen})
}

func (t Transition) Active() bool {
	return t.left > 0
}

// Offset is the number of columns content is shifted right this frame.
func (t Transition) Offset() int {
	return t.left * 3
}

func (t Transition) apply(content string, width int) string {
	off := t.Offset()
	if off == 0 || width <= off {
		return content
	}
	pad := strings.Repeat(" ", off)
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = TrimToWidth(pad+line, width)
	}
	return strings.Join(lines, "\n")
}
