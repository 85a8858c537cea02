package user

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bhiohub/bhiohub/core"
	"github.com/bhiohub/bhiohub/internal/catalog"
	"github.com/bhiohub/bhiohub/widgets"
)

const homeScope = "screen:home"

type Home struct {
	nav        core.Navigator[Tab]
	quick      []catalog.QuickAccess
	highlights []catalog.Highlight
	cursor     int
}

func NewHome(nav core.Navigator[Tab]) *Home {
	return &Home{nav: nav, quick: catalog.UserQuickAccess(), highlights: catalog.UserHighlights()}
}

func (h *Home) Title() string { return "Início" }
func (h *Home) Scope() string { return homeScope }

func (h *Home) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "up", "k":
		h.cursor = max(0, h.cursor-1)
	case "down", "j":
		h.cursor = min(len(h.quick)-1, h.cursor+1)
	case "enter":
		if h.nav == nil || h.cursor >= len(h.quick) {
			return nil
		}
		return core.ErrorToastCmd("Navegação", h.nav.SetActiveTab(Tab(h.quick[h.cursor].Target)))
	}
	return nil
}

func (h *Home) View(width, height int) string {
	items := make([]string, len(h.quick))
	for i, q := range h.quick {
		items[i] = fmt.Sprintf("%s %-16s %3d", q.Icon, q.Label, q.Count)
	}
	lines := []string{
		widgets.HeaderStyle.Render("Olá! Continue sua jornada de aprendizado."),
		"",
		widgets.List{Title: "Acesso rápido", Items: items, Cursor: h.cursor}.Render(width, len(items)+1),
		"",
		widgets.HeaderStyle.Render("Destaques da Semana"),
	}
	for _, hl := range h.highlights {
		lines = append(lines, widgets.AccentStyle.Render("• "+hl.Title), "  "+hl.Description)
		switch {
		case hl.Kind == catalog.HighlightRanking:
			lines = append(lines, "  "+widgets.MutedStyle.Render("Posição no ranking · badge "+hl.Badge))
		case hl.Detail != "":
			lines = append(lines, "  "+widgets.MutedStyle.Render(hl.Detail))
		}
	}
	return strings.Join(lines, "\n")
}
