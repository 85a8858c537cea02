package admin

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/bhiohub/bhiohub/core"
	"github.com/bhiohub/bhiohub/internal/talent"
	"github.com/bhiohub/bhiohub/widgets"
)

const (
	talentsScope       = "screen:talents"
	talentsSearchScope = "screen:talents/search"
	talentDetailScope  = "modal:talent"
)

type Talents struct {
	nav       core.Navigator[Tab]
	sess      *Session
	filter    talent.Filter
	search    textinput.Model
	searching bool
	results   []talent.Talent
	cursor    int
}

func NewTalents(nav core.Navigator[Tab], sess *Session) *Talents {
	search := textinput.New()
	search.Prompt = "Buscar Talento: "
	search.Placeholder = "nome ou cargo"
	t := &Talents{
		nav:    nav,
		sess:   sess,
		filter: talent.Filter{Expertise: talent.All, Level: talent.All},
		search: search,
	}
	t.refresh()
	return t
}

func (t *Talents) Title() string { return "Talentos" }

func (t *Talents) Scope() string {
	if t.searching {
		return talentsSearchScope
	}
	return talentsScope
}

func (t *Talents) CapturesInput() bool { return t.searching }

func (t *Talents) Filter() talent.Filter { return t.filter }

func (t *Talents) Results() []talent.Talent { return t.results }

func (t *Talents) refresh() {
	t.filter.Query = t.search.Value()
	t.results = t.sess.Directory.Apply(t.filter)
	t.cursor = min(max(0, t.cursor), max(0, len(t.results)-1))
}

func (t *Talents) selected() (talent.Talent, bool) {
	if t.cursor < 0 || t.cursor >= len(t.results) {
		return talent.Talent{}, false
	}
	return t.results[t.cursor], true
}

func (t *Talents) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if t.searching {
		return t.updateSearch(keyMsg)
	}
	switch keyMsg.String() {
	case "/":
		t.searching = true
		return t.search.Focus()
	case "up", "k":
		t.cursor = max(0, t.cursor-1)
	case "down", "j":
		t.cursor = min(max(0, len(t.results)-1), t.cursor+1)
	case "e":
		t.filter.Expertise = talent.Cycle(t.sess.Badges, t.filter.Expertise)
		t.refresh()
	case "g":
		t.filter.Level = talent.Cycle(t.sess.Levels, t.filter.Level)
		t.refresh()
	case "x":
		t.search.SetValue("")
		t.filter = talent.Filter{Expertise: talent.All, Level: talent.All}
		t.refresh()
	case "enter":
		if sel, ok := t.selected(); ok {
			return core.PushModalCmd(&talentDetail{t: sel})
		}
	case "m":
		sel, ok := t.selected()
		if !ok || t.nav == nil {
			return nil
		}
		t.sess.FocusOnMap(sel.ID)
		return core.ErrorToastCmd("Navegação", t.nav.SetActiveTab(TabGeolocation))
	}
	return nil
}

func (t *Talents) updateSearch(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter", "esc":
		t.searching = false
		t.search.Blur()
		return nil
	}
	var cmd tea.Cmd
	t.search, cmd = t.search.Update(msg)
	t.refresh()
	return cmd
}

func (t *Talents) View(width, height int) string {
	lines := []string{
		widgets.HeaderStyle.Render("Banco de Talentos"),
		widgets.MutedStyle.Render("Encontre e gerencie os profissionais da BhioHub."),
		t.search.View(),
		fmt.Sprintf("Especialidade: %s   Nível: %s",
			widgets.AccentStyle.Render(talent.OptionName(t.sess.Badges, t.filter.Expertise)),
			widgets.AccentStyle.Render(talent.OptionName(t.sess.Levels, t.filter.Level)),
		),
		"",
	}
	if len(t.results) == 0 {
		lines = append(lines,
			widgets.AccentStyle.Render("Nenhum talento encontrado"),
			widgets.MutedStyle.Render("Tente ajustar seus filtros ou termo de busca."),
		)
		return strings.Join(lines, "\n")
	}
	rows := make([][]string, len(t.results))
	for i, tl := range t.results {
		rows[i] = []string{
			tl.Name,
			tl.Role,
			levelName(tl.Level),
			widgets.ProgressBar(tl.Progress, 18),
			tl.Location,
		}
	}
	table := widgets.Table{
		Headers: []string{"Nome", "Cargo", "Nível", "Evolução Geral", "Local"},
		Rows:    rows,
		Cursor:  t.cursor,
	}
	lines = append(lines, table.Render(width, max(1, height-len(lines))))
	return strings.Join(lines, "\n")
}

func levelName(l talent.Level) string {
	switch l {
	case talent.LevelGold:
		return "Ouro"
	case talent.LevelSilver:
		return "Prata"
	case talent.LevelBronze:
		return "Bronze"
	}
	return string(l)
}

// talentDetail is the "Ver Perfil Completo" dialog.
type talentDetail struct {
	t talent.Talent
}

func (d *talentDetail) Title() string { return d.t.Name }
func (d *talentDetail) Scope() string { return talentDetailScope }

func (d *talentDetail) Update(msg tea.Msg) (core.Modal, tea.Cmd, bool) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return d, nil, false
	}
	switch keyMsg.String() {
	case "esc", "enter":
		return nil, nil, true
	}
	return d, nil, false
}

func (d *talentDetail) View(width, height int) string {
	body := strings.Join([]string{
		d.t.Role + " · " + d.t.Location,
		"Nível: " + levelName(d.t.Level),
		"Trilhas Principais: " + strings.Join(d.t.Trails, ", "),
		"Badges: " + strings.Join(d.t.Badges, ", "),
		"Pronto para: " + d.t.ReadyFor,
		widgets.ProgressBar(d.t.Progress, max(10, width-6)),
	}, "\n")
	return widgets.Pane{Title: "Ver Perfil Completo: " + d.t.Name, Height: 8, Content: body, Selected: true}.Render(width, height)
}

func talentsBindings() []core.KeyBinding {
	out := scoped(talentsScope,
		[3]string{"/", "search", "buscar"},
		[3]string{"e", "cycle-expertise", "especialidade"},
		[3]string{"g", "cycle-level", "nível"},
		[3]string{"x", "reset-filters", "limpar"},
		[3]string{"enter", "open-talent", "perfil"},
		[3]string{"m", "show-on-map", "mapa"},
	)
	out = append(out, scoped(talentsSearchScope,
		[3]string{"enter", "finish-search", "aplicar"},
		[3]string{"esc", "finish-search", "sair"},
	)...)
	return append(out, scoped(talentDetailScope, [3]string{"esc", "close", "fechar"})...)
}
