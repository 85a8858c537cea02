package screens

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bhiohub/bhiohub/core"
	"github.com/bhiohub/bhiohub/widgets"
)

type FormField struct {
	Key         string
	Label       string
	Value       string
	Placeholder string
	Secret      bool
}

type FormResult int

const (
	FormEditing FormResult = iota
	FormSubmitted
	FormCancelled
)

// Form is a stack of text inputs edited one at a time. Enter moves to the
// next field and submits from the last one.
type Form struct {
	title  string
	fields []FormField
	inputs []textinput.Model
	focus  int
}

func NewForm(title string, fields []FormField) *Form {
	inputs := make([]textinput.Model, 0, len(fields))
	for i, f := range fields {
		inp := textinput.New()
		inp.Prompt = f.Label + ": "
		inp.Placeholder = f.Placeholder
		inp.SetValue(f.Value)
		if f.Secret {
			inp.EchoMode = textinput.EchoPassword
			inp.EchoCharacter = '•'
		}
		if i == 0 {
			inp.Focus()
		}
		inputs = append(inputs, inp)
	}
	return &Form{title: title, fields: fields, inputs: inputs}
}

func (f *Form) Title() string { return f.title }

// Focused returns the key of the field being edited.
func (f *Form) Focused() string {
	if len(f.fields) == 0 {
		return ""
	}
	return f.fields[f.focus].Key
}

func (f *Form) Value(key string) string {
	for i, field := range f.fields {
		if field.Key == key {
			return f.inputs[i].Value()
		}
	}
	return ""
}

func (f *Form) SetValue(key, value string) {
	for i, field := range f.fields {
		if field.Key == key {
			f.inputs[i].SetValue(value)
			return
		}
	}
}

func (f *Form) Values() map[string]string {
	out := make(map[string]string, len(f.fields))
	for i, field := range f.fields {
		out[field.Key] = f.inputs[i].Value()
	}
	return out
}

// Reset clears every input and focuses the first one.
func (f *Form) Reset() {
	for i := range f.inputs {
		f.inputs[i].SetValue("")
	}
	f.move(-f.focus)
}

func (f *Form) Update(msg tea.Msg) (FormResult, tea.Cmd) {
	if len(f.inputs) == 0 {
		return FormCancelled, nil
	}
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "esc":
			return FormCancelled, nil
		case "tab", "down":
			f.move(1)
			return FormEditing, nil
		case "shift+tab", "up":
			f.move(-1)
			return FormEditing, nil
		case "enter":
			if f.focus == len(f.inputs)-1 {
				return FormSubmitted, nil
			}
			f.move(1)
			return FormEditing, nil
		}
	}
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return FormEditing, cmd
}

func (f *Form) move(delta int) {
	f.inputs[f.focus].Blur()
	n := len(f.inputs)
	f.focus = ((f.focus+delta)%n + n) % n
	f.inputs[f.focus].Focus()
}

func (f *Form) View(width int) string {
	lines := []string{widgets.HeaderStyle.Render(f.title)}
	for i := range f.inputs {
		f.inputs[i].Width = max(10, width-len(f.fields[i].Label)-4)
		lines = append(lines, f.inputs[i].View())
	}
	lines = append(lines, widgets.MutedStyle.Render("enter: próximo/enviar  tab: campo  esc: cancelar"))
	return strings.Join(lines, "\n")
}

// FormBindings are shown in the footer while a form captures input.
func FormBindings(scope string) []core.KeyBinding {
	scopes := []string{scope}
	return []core.KeyBinding{
		{Keys: []string{"enter"}, Action: "form-submit", Description: "enviar", Scopes: scopes},
		{Keys: []string{"tab"}, Action: "form-next", Description: "campo", Scopes: scopes},
		{Keys: []string{"esc"}, Action: "form-cancel", Description: "cancelar", Scopes: scopes},
	}
}
