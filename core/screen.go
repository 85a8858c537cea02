package core

import tea "github.com/charmbracelet/bubbletea"

// Screen is the content mounted in a shell's main region.
type Screen interface {
	Title() string
	Scope() string
	Update(msg tea.Msg) tea.Cmd
	View(width, height int) string
}

// Mounter is implemented by screens that hold resources across their
// mounted lifetime (timers, focused inputs).
type Mounter interface {
	Mount() tea.Cmd
	Unmount()
}

// InputCapturer reports whether a screen is editing text, in which case the
// shell hands it keys before applying global shortcuts.
type InputCapturer interface {
	CapturesInput() bool
}

// Navigator is the only navigation surface handed to screens.
type Navigator[K ~string] interface {
	ActiveTab() K
	SetActiveTab(id K) error
}

// ViewEntry describes one tab of a shell.
type ViewEntry[K ~string] struct {
	ID             K
	Label          string
	Icon           string
	NeedsNavigator bool
	Render         func(nav Navigator[K]) Screen
}

func (v ViewEntry[K]) build(nav Navigator[K]) Screen {
	if !v.NeedsNavigator {
		nav = nil
	}
	return v.Render(nav)
}
