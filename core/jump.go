package core

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bhiohub/bhiohub/widgets"
)

const (
	ActionJump = "jump"
	jumpScope  = "modal:jump"
)

// jumpModal is the "go to tab" palette. Selecting an entry posts a
// NavigateMsg so the change goes through the shell like any other.
type jumpModal struct {
	picker *Picker
}

func newJumpModal[K ~string](reg *Registry[K, ViewEntry[K]], active K) *jumpModal {
	ids := reg.IDs()
	items := make([]PickerItem, 0, len(ids))
	for i, id := range ids {
		entry, _ := reg.Resolve(id)
		meta := fmt.Sprintf("%d", i+1)
		if id == active {
			meta += " · atual"
		}
		items = append(items, PickerItem{
			ID:     string(id),
			Label:  entry.Icon + " " + entry.Label,
			Meta:   meta,
			Search: entry.Label + " " + string(id),
		})
	}
	return &jumpModal{picker: NewPicker(items)}
}

func (m *jumpModal) Title() string { return "Ir para" }
func (m *jumpModal) Scope() string { return jumpScope }

func (m *jumpModal) Update(msg tea.Msg) (Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil, false
	}
	action, item := m.picker.HandleKey(keyMsg.String())
	switch action {
	case PickerSelected:
		return nil, NavigateCmd(item.ID), true
	case PickerCancelled:
		return nil, nil, true
	}
	return m, nil, false
}

func (m *jumpModal) View(width, height int) string {
	lines := []string{"> " + m.picker.Query() + "▏"}
	items := m.picker.Items()
	if len(items) == 0 {
		lines = append(lines, widgets.MutedStyle.Render("Nenhuma aba encontrada"))
	}
	for i, it := range items {
		row := fmt.Sprintf("%-22s %s", it.Label, widgets.MutedStyle.Render(it.Meta))
		if i == m.picker.Cursor() {
			row = widgets.CursorStyle.Render("▶ " + it.Label + "  " + it.Meta)
		} else {
			row = "  " + row
		}
		lines = append(lines, row)
	}
	return widgets.Pane{
		Title:    "Ir para",
		Height:   min(height, len(items)+3),
		Content:  strings.Join(lines, "\n"),
		Selected: true,
	}.Render(width, height)
}

func jumpBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"enter"}, Action: "jump-select", Description: "ir", Scopes: []string{jumpScope}},
		{Keys: []string{"esc"}, Action: "jump-cancel", Description: "fechar", Scopes: []string{jumpScope}},
	}
}
