package screens

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/bhiohub/bhiohub/core"
	"github.com/bhiohub/bhiohub/widgets"
)

const ConfirmScope = "modal:confirm"

// Confirm asks a yes/no question; onYes runs only on confirmation.
type Confirm struct {
	title  string
	prompt string
	yes    string
	onYes  tea.Cmd
}

func NewConfirm(title, prompt, yes string, onYes tea.Cmd) *Confirm {
	if yes == "" {
		yes = "Confirmar"
	}
	return &Confirm{title: title, prompt: prompt, yes: yes, onYes: onYes}
}

func (c *Confirm) Title() string { return c.title }
func (c *Confirm) Scope() string { return ConfirmScope }

func (c *Confirm) Update(msg tea.Msg) (core.Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return c, nil, false
	}
	switch keyMsg.String() {
	case "y", "enter":
		return nil, c.onYes, true
	case "n", "esc":
		return nil, nil, true
	}
	return c, nil, false
}

func (c *Confirm) View(width, height int) string {
	prompt := lipgloss.NewStyle().Width(max(10, width-4)).Render(c.prompt)
	body := prompt + "\n\n" +
		widgets.AccentStyle.Render("[y] "+c.yes) + "   " + widgets.MutedStyle.Render("[n] Cancelar")
	return widgets.Pane{Title: c.title, Height: min(height, 8), Content: body, Selected: true}.Render(width, height)
}

func ConfirmBindings() []core.KeyBinding {
	scopes := []string{ConfirmScope}
	return []core.KeyBinding{
		{Keys: []string{"y", "enter"}, Action: "confirm", Description: "confirmar", Scopes: scopes},
		{Keys: []string{"n", "esc"}, Action: "cancel", Description: "cancelar", Scopes: scopes},
	}
}
