package core

import tea "github.com/charmbracelet/bubbletea"

// Modal is a dialog drawn over the content region. Update reports pop=true
// when the modal closes itself.
type Modal interface {
	Update(msg tea.Msg) (Modal, tea.Cmd, bool)
	View(width, height int) string
	Scope() string
	Title() string
}

type ModalStack struct {
	items []Modal
}

func (s *ModalStack) Push(modal Modal) {
	if modal == nil {
		return
	}
	s.items = append(s.items, modal)
}

func (s *ModalStack) Pop() Modal {
	if len(s.items) == 0 {
		return nil
	}
	last := s.items[len(s.items)-1]
	s.items = s.items[:len(s.items)-1]
	return last
}

func (s ModalStack) Top() Modal {
	if len(s.items) == 0 {
		return nil
	}
	return s.items[len(s.items)-1]
}

func (s ModalStack) Len() int {
	return len(s.items)
}

func (s *ModalStack) Clear() {
	s.items = nil
}

// route hands msg to the top modal, replacing or popping it.
func (s *ModalStack) route(msg tea.Msg) tea.Cmd {
	top := s.Top()
	if top == nil {
		return nil
	}
	next, cmd, pop := top.Update(msg)
	if pop {
		s.Pop()
		return cmd
	}
	if next != nil {
		s.items[len(s.items)-1] = next
	}
	return cmd
}
