package user

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bhiohub/bhiohub/internal/catalog"
	"github.com/bhiohub/bhiohub/widgets"
)

const coursesScope = "screen:courses"

type Courses struct {
	categories  []catalog.Category
	category    int
	paths       []catalog.LearningPath
	courses     []catalog.Course
	recommended []catalog.Recommendation
}

func NewCourses() *Courses {
	return &Courses{
		categories:  catalog.Categories(),
		paths:       catalog.LearningPaths(),
		courses:     catalog.Courses(),
		recommended: catalog.RecommendedCourses(),
	}
}

func (c *Courses) Title() string { return "Cursos" }
func (c *Courses) Scope() string { return coursesScope }

// Category returns the selected category id.
func (c *Courses) Category() string {
	return c.categories[c.category].ID
}

// Visible returns the courses of the selected category.
func (c *Courses) Visible() []catalog.Course {
	return catalog.CoursesIn(c.courses, c.Category())
}

func (c *Courses) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	n := len(c.categories)
	switch keyMsg.String() {
	case "right", "l":
		c.category = (c.category + 1) % n
	case "left", "h":
		c.category = (c.category - 1 + n) % n
	}
	return nil
}

func (c *Courses) View(width, height int) string {
	lines := []string{
		widgets.HeaderStyle.Render("Cursos e Trilhas"),
		widgets.MutedStyle.Render("Desenvolva suas competências com nossos cursos especializados"),
		"",
		widgets.HeaderStyle.Render("Trilhas de Aprendizagem"),
	}
	for _, p := range c.paths {
		lines = append(lines,
			fmt.Sprintf("%s · %s · %d cursos · %s", widgets.AccentStyle.Render(p.Title), p.Level, p.Courses, p.Duration),
			"  Progresso "+widgets.ProgressBar(p.Progress, min(30, max(10, width-14))),
		)
	}

	tabs := make([]string, len(c.categories))
	for i, cat := range c.categories {
		label := fmt.Sprintf("%s (%d)", cat.Name, cat.Count)
		if i == c.category {
			label = widgets.CursorStyle.Render(" " + label + " ")
		}
		tabs[i] = label
	}
	lines = append(lines, "", widgets.HeaderStyle.Render("Cursos Disponíveis"), strings.Join(tabs, "  "))
	for _, course := range c.Visible() {
		required := ""
		if course.Required {
			required = " · Obrigatório"
		}
		lines = append(lines,
			widgets.AccentStyle.Render(course.Title)+widgets.MutedStyle.Render(required),
			fmt.Sprintf("  %s · %s · %d alunos · ★ %.1f · %d%%",
				course.Instructor, course.Duration, course.Students, course.Rating, course.Progress),
		)
	}

	lines = append(lines, "", widgets.HeaderStyle.Render("Recomendado para Você"))
	for _, r := range c.recommended {
		lines = append(lines, fmt.Sprintf("%s · %s · ★ %.1f", widgets.AccentStyle.Render(r.Title), r.Duration, r.Rating),
			"  "+widgets.MutedStyle.Render(r.Reason))
	}
	return strings.Join(lines, "\n")
}
