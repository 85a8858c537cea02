package admin

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bhiohub/bhiohub/core"
)

type fakeNav struct {
	active Tab
	calls  []Tab
}

func (n *fakeNav) ActiveTab() Tab { return n.active }

func (n *fakeNav) SetActiveTab(id Tab) error {
	n.calls = append(n.calls, id)
	switch id {
	case TabDashboard, TabTalents, TabGeolocation, TabArticles, TabProfile:
		n.active = id
		return nil
	}
	return &core.InvalidTabError{ID: string(id)}
}

func newTestSession() *Session {
	return NewSession(time.Millisecond, 10)
}

func key(name string) tea.KeyMsg {
	switch name {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

func typeInto(s core.Screen, text string) tea.Cmd {
	return s.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

// collect runs cmd and every batched command, returning the messages.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	if msg == nil {
		return nil
	}
	return []tea.Msg{msg}
}

func toastOf(cmd tea.Cmd) (core.ToastMsg, bool) {
	for _, msg := range collect(cmd) {
		if t, ok := msg.(core.ToastMsg); ok {
			return t, true
		}
	}
	return core.ToastMsg{}, false
}
