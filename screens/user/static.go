package user

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bhiohub/bhiohub/internal/catalog"
	"github.com/bhiohub/bhiohub/widgets"
)

type Community struct {
	topics []catalog.Topic
	cursor int
}

func NewCommunity() *Community {
	return &Community{topics: catalog.CommunityTopics()}
}

func (c *Community) Title() string { return "Comunidade" }
func (c *Community) Scope() string { return "screen:community" }

func (c *Community) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "up", "k":
			c.cursor = max(0, c.cursor-1)
		case "down", "j":
			c.cursor = min(len(c.topics)-1, c.cursor+1)
		}
	}
	return nil
}

func (c *Community) View(width, height int) string {
	rows := make([][]string, len(c.topics))
	for i, t := range c.topics {
		rows[i] = []string{t.Title, t.Author, t.Tag, fmt.Sprintf("%d", t.Replies)}
	}
	table := widgets.Table{Headers: []string{"Tópico", "Autor", "Tag", "Respostas"}, Rows: rows, Cursor: c.cursor}
	return widgets.HeaderStyle.Render("Comunidade") + "\n" +
		widgets.MutedStyle.Render("Troque experiências com outros profissionais.") + "\n\n" +
		table.Render(width, max(1, height-3))
}

type Profile struct {
	user  catalog.UserProfile
	stats catalog.UserStats
}

func NewProfile() *Profile {
	return &Profile{user: catalog.User(), stats: catalog.Stats()}
}

func (p *Profile) Title() string          { return "Perfil" }
func (p *Profile) Scope() string          { return "screen:profile" }
func (p *Profile) Update(tea.Msg) tea.Cmd { return nil }

func (p *Profile) View(width, height int) string {
	return strings.Join([]string{
		widgets.HeaderStyle.Render("Meu Perfil"),
		"",
		widgets.MutedStyle.Render("Nome: ") + p.user.Name,
		widgets.MutedStyle.Render("Email: ") + p.user.Email,
		widgets.MutedStyle.Render("Cargo: ") + p.user.Role,
		widgets.MutedStyle.Render("Unidade: ") + p.user.Unit,
		"",
		widgets.MutedStyle.Render("Nível: ") + widgets.AccentStyle.Render(p.stats.Level),
		widgets.ProgressBar(p.stats.XPPercent(), min(40, width)),
	}, "\n")
}

type Connections struct {
	people []catalog.Connection
	cursor int
}

func NewConnections() *Connections {
	return &Connections{people: catalog.Connections()}
}

func (c *Connections) Title() string { return "Conexões" }
func (c *Connections) Scope() string { return "screen:connections" }

func (c *Connections) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch keyMsg.String() {
		case "up", "k":
			c.cursor = max(0, c.cursor-1)
		case "down", "j":
			c.cursor = min(len(c.people)-1, c.cursor+1)
		}
	}
	return nil
}

func (c *Connections) View(width, height int) string {
	items := make([]string, len(c.people))
	for i, p := range c.people {
		items[i] = fmt.Sprintf("%s · %s · %s · %d em comum", p.Name, p.Role, p.City, p.Mutual)
	}
	return widgets.List{Title: "Conexões", Items: items, Cursor: c.cursor, Empty: "Nenhuma conexão ainda"}.Render(width, height)
}
