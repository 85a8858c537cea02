package core

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (s *Shell[K]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return s, s.flush(s.update(msg))
}

func (s *Shell[K]) update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		s.width, s.height = msg.Width, msg.Height
		return nil
	case ToastMsg:
		return s.toasts.push(msg)
	case toastExpiredMsg:
		s.toasts.expire(msg.id)
		return nil
	case transitionFrameMsg:
		return s.transition.frame(msg)
	case PushModalMsg:
		s.modals.Push(msg.Modal)
		return nil
	case NavigateMsg:
		if err := s.SetActiveTab(K(msg.ID)); err != nil {
			return ErrorToastCmd("Navegação", err)
		}
		return nil
	case tea.KeyMsg:
		return s.handleKey(msg)
	}
	if s.content != nil {
		return s.content.Update(msg)
	}
	return nil
}

func (s *Shell[K]) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.String() == "ctrl+c" {
		s.quitting = true
		return tea.Quit
	}
	if s.modals.Top() != nil {
		return s.modals.route(msg)
	}
	if s.capturing() {
		return s.content.Update(msg)
	}

	scope := s.scope()
	if s.keys.IsAction(msg, ActionQuit, scope) {
		s.quitting = true
		return tea.Quit
	}
	if s.keys.IsAction(msg, ActionJump, scope) {
		s.modals.Push(newJumpModal(s.registry, s.nav.ActiveTab()))
		return nil
	}
	if s.keys.IsAction(msg, ActionNextTab, scope) {
		return s.step(1)
	}
	if s.keys.IsAction(msg, ActionPrevTab, scope) {
		return s.step(-1)
	}
	for i := 0; i < s.registry.Len(); i++ {
		if s.keys.IsAction(msg, SwitchTabAction(i+1), scope) {
			if err := s.nav.SelectIndex(i); err != nil {
				return ErrorToastCmd("Navegação", err)
			}
			return nil
		}
	}
	if s.content != nil {
		return s.content.Update(msg)
	}
	return nil
}

func (s *Shell[K]) step(delta int) tea.Cmd {
	if err := s.nav.Step(delta); err != nil {
		return ErrorToastCmd("Navegação", err)
	}
	return nil
}
