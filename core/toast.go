package core

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

type Toast struct {
	id          int
	Title       string
	Description string
	Variant     ToastVariant
}

// Toasts keeps transient notifications; the newest one is shown.
type Toasts struct {
	ttl   time.Duration
	next  int
	items []Toast
}

func NewToasts(ttl time.Duration) Toasts {
	if ttl <= 0 {
		ttl = 4 * time.Second
	}
	return Toasts{ttl: ttl}
}

func (t *Toasts) push(msg ToastMsg) tea.Cmd {
	t.next++
	variant := msg.Variant
	if variant == "" {
		variant = ToastInfo
	}
	t.items = append(t.items, Toast{id: t.next, Title: msg.Title, Description: msg.Description, Variant: variant})
	return tickAfter(t.ttl, toastExpiredMsg{id: t.next})
}

func (t *Toasts) expire(id int) {
	for i, item := range t.items {
		if item.id == id {
			t.items = append(t.items[:i], t.items[i+1:]...)
			return
		}
	}
}

func (t Toasts) Current() (Toast, bool) {
	if len(t.items) == 0 {
		return Toast{}, false
	}
	return t.items[len(t.items)-1], true
}

func (t Toast) Text() string {
	if t.Description == "" {
		return t.Title
	}
	if t.Title == "" {
		return t.Description
	}
	return t.Title + ": " + t.Description
}
