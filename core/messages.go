package core

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type PushModalMsg struct {
	Modal Modal
}

// NavigateMsg asks the shell to activate a tab by its string form. It is the
// asynchronous counterpart of Navigator.SetActiveTab for commands.
type NavigateMsg struct {
	ID string
}

type ToastVariant string

const (
	ToastInfo        ToastVariant = "info"
	ToastSuccess     ToastVariant = "success"
	ToastDestructive ToastVariant = "destructive"
)

type ToastMsg struct {
	Title       string
	Description string
	Variant     ToastVariant
}

type toastExpiredMsg struct {
	id int
}

type transitionFrameMsg struct {
	gen int
}

func PushModalCmd(m Modal) tea.Cmd {
	return func() tea.Msg { return PushModalMsg{Modal: m} }
}

func ToastCmd(variant ToastVariant, title, description string) tea.Cmd {
	return func() tea.Msg {
		return ToastMsg{Title: title, Description: description, Variant: variant}
	}
}

func ErrorToastCmd(title string, err error) tea.Cmd {
	if err == nil {
		return nil
	}
	return ToastCmd(ToastDestructive, title, err.Error())
}

func NavigateCmd(id string) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{ID: id} }
}

func tickAfter(d time.Duration, msg tea.Msg) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return msg })
}
