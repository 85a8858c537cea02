package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/bhiohub/bhiohub/widgets"
)

const sidebarWidth = 24

func (s *Shell[K]) View() string {
	if s.quitting {
		return "Até logo!\n"
	}
	width := max(1, s.width)
	status := renderStatusBar(s.toasts, s.statusLine(), width)
	footer := renderFooter(s.keys.BindingsForScope(s.scope()), width)
	bodyHeight := max(0, s.height-lipgloss.Height(status)-lipgloss.Height(footer))

	sideW := min(sidebarWidth, max(0, width/3))
	contentW := max(1, width-sideW-1)
	var body string
	if bodyHeight > 0 && s.content != nil {
		body = s.content.View(contentW, bodyHeight)
		if top := s.modals.Top(); top != nil {
			body = widgets.RenderPopup(body, top.View(max(20, contentW-8), max(6, bodyHeight-4)), contentW, bodyHeight)
		}
		body = s.transition.apply(fitHeight(body, bodyHeight), contentW)
	}
	body = fitHeight(body, bodyHeight)

	main := body
	if sideW > 0 && bodyHeight > 0 {
		side := s.sidebar.Render(sideW, bodyHeight)
		main = lipgloss.JoinHorizontal(lipgloss.Top, side, " ", body)
	}
	view := strings.Join([]string{main, status, footer}, "\n")
	view = fitHeight(view, max(1, s.height))
	return appStyle.Width(width).MaxWidth(width).Render(view)
}

func (s *Shell[K]) statusLine() string {
	if s.content == nil {
		return s.brand
	}
	return s.brand + " · " + s.content.Title()
}
