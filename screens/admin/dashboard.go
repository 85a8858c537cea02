package admin

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bhiohub/bhiohub/core"
	"github.com/bhiohub/bhiohub/internal/catalog"
	"github.com/bhiohub/bhiohub/widgets"
)

const dashboardScope = "screen:dashboard"

// ShowAllTalentsLabel is the hero action that opens the talent directory.
const ShowAllTalentsLabel = "Ver Todos os Talentos"

type Dashboard struct {
	nav        core.Navigator[Tab]
	quick      []catalog.QuickAccess
	highlights []catalog.Highlight
	cursor     int
}

func NewDashboard(nav core.Navigator[Tab]) *Dashboard {
	return &Dashboard{
		nav:        nav,
		quick:      catalog.AdminQuickAccess(),
		highlights: catalog.AdminHighlights(),
	}
}

func (d *Dashboard) Title() string { return "Dashboard" }
func (d *Dashboard) Scope() string { return dashboardScope }

// ShowAllTalents is the hero button's action.
func (d *Dashboard) ShowAllTalents() error {
	return d.goTo(TabTalents)
}

func (d *Dashboard) goTo(tab Tab) error {
	if d.nav == nil {
		return fmt.Errorf("dashboard: no navigator")
	}
	return d.nav.SetActiveTab(tab)
}

func (d *Dashboard) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "up", "k":
		d.cursor = max(0, d.cursor-1)
	case "down", "j":
		d.cursor = min(len(d.quick)-1, d.cursor+1)
	case "t":
		return core.ErrorToastCmd("Navegação", d.ShowAllTalents())
	case "a":
		return core.ErrorToastCmd("Navegação", d.goTo(TabArticles))
	case "enter":
		if d.cursor < 0 || d.cursor >= len(d.quick) {
			return nil
		}
		return core.ErrorToastCmd("Navegação", d.goTo(Tab(d.quick[d.cursor].Target)))
	}
	return nil
}

func (d *Dashboard) View(width, height int) string {
	hero := widgets.Box{
		Title: "Bem-vindo ao painel de talentos da BhioHub!",
		Content: "Gerencie talentos, acompanhe o progresso e descubra os melhores profissionais.\n" +
			"[t] " + ShowAllTalentsLabel,
	}
	items := make([]string, len(d.quick))
	for i, q := range d.quick {
		items[i] = fmt.Sprintf("%s %-22s %3d", q.Icon, q.Label, q.Count)
	}
	quick := widgets.Pane{
		Title:   "Acesso rápido",
		Height:  len(items) + 2,
		Content: widgets.List{Items: items, Cursor: d.cursor}.Render(max(1, width-4), len(items)),
	}
	return widgets.VStack{
		Widgets: []widgets.Widget{hero, quick, widgets.Text(renderHighlights(d.highlights))},
		Ratios:  []float64{0.25, 0.3, 0.45},
	}.Render(width, height)
}

func renderHighlights(items []catalog.Highlight) string {
	lines := []string{widgets.HeaderStyle.Render("Destaques da Semana")}
	for _, h := range items {
		lines = append(lines, widgets.AccentStyle.Render("• "+h.Title))
		if h.Description != "" {
			lines = append(lines, "  "+h.Description)
		}
		meta := strings.TrimSpace(strings.Join(nonEmpty(h.Badge, h.Detail), " · "))
		if h.Kind == catalog.HighlightArticle {
			meta = "[a] Ver artigos"
		}
		if meta != "" {
			lines = append(lines, "  "+widgets.MutedStyle.Render(meta))
		}
	}
	return strings.Join(lines, "\n")
}

func nonEmpty(values ...string) []string {
	out := values[:0]
	for _, v := range values {
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

func dashboardBindings() []core.KeyBinding {
	return scoped(dashboardScope,
		[3]string{"t", "show-talents", "talentos"},
		[3]string{"enter", "open-quick-access", "abrir"},
		[3]string{"a", "show-articles", "artigos"},
	)
}
