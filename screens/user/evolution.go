package user

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bhiohub/bhiohub/internal/catalog"
	"github.com/bhiohub/bhiohub/widgets"
)

type Evolution struct {
	stats        catalog.UserStats
	skills       []catalog.Skill
	achievements []catalog.Achievement
	monthly      []catalog.MonthProgress
}

func NewEvolution() *Evolution {
	return &Evolution{
		stats:        catalog.Stats(),
		skills:       catalog.Skills(),
		achievements: catalog.Achievements(),
		monthly:      catalog.MonthlyProgress(),
	}
}

func (e *Evolution) Title() string          { return "Evolução" }
func (e *Evolution) Scope() string          { return "screen:evolution" }
func (e *Evolution) Update(tea.Msg) tea.Cmd { return nil }

func rarityLabel(r catalog.Rarity) string {
	switch r {
	case catalog.RarityRare:
		return "Raro"
	case catalog.RarityEpic:
		return "Épico"
	case catalog.RarityLegendary:
		return "Lendário"
	}
	return "Comum"
}

func (e *Evolution) View(width, height int) string {
	s := e.stats
	barW := min(30, max(10, width-30))
	lines := []string{
		widgets.HeaderStyle.Render("Evolução e Nível de Expertise"),
		widgets.MutedStyle.Render("Acompanhe seu progresso e desenvolvimento profissional"),
		"",
		fmt.Sprintf("Seu nível atual de expertise: %s · %d / %d XP",
			widgets.AccentStyle.Render(s.Level), s.CurrentXP, s.NextLevelXP),
		widgets.ProgressBar(s.XPPercent(), barW+10),
		fmt.Sprintf("Cursos Concluídos %d/%d · Certificados %d · Horas de estudo %d · Taxa de Conclusão %d%%",
			s.CompletedCourses, s.TotalCourses, s.Certificates, s.StudyHours,
			s.CompletedCourses*100/max(1, s.TotalCourses)),
		"",
		widgets.HeaderStyle.Render("Habilidades por Área"),
	}
	for _, sk := range e.skills {
		lines = append(lines, fmt.Sprintf("%-24s %s", sk.Name, widgets.ProgressBar(sk.Level, barW)))
	}

	lines = append(lines, "", widgets.HeaderStyle.Render("Conquistas Recentes"))
	for _, a := range e.achievements {
		lines = append(lines, fmt.Sprintf("%s %s %s · %s",
			a.Icon, widgets.AccentStyle.Render(a.Title), widgets.MutedStyle.Render("["+rarityLabel(a.Rarity)+"]"), a.Date))
	}

	points := make([]widgets.ChartPoint, len(e.monthly))
	for i, m := range e.monthly {
		points[i] = widgets.ChartPoint{Label: m.Month, Value: float64(m.Hours)}
	}
	lines = append(lines, "", widgets.Chart{Title: "Progresso Mensal (horas)", Data: points, Unit: "h"}.Render(width, len(points)+1))
	return strings.Join(lines, "\n")
}
