package admin

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bhiohub/bhiohub/core"
	"github.com/bhiohub/bhiohub/internal/geo"
	"github.com/bhiohub/bhiohub/widgets"
)

const geolocationScope = "screen:geolocation"

type Geolocation struct {
	locations []geo.Location
	cursor    int
	selected  int
	viewport  geo.Viewport
}

// NewGeolocation frames every marker, or the talent handed over by
// Session.FocusOnMap.
func NewGeolocation(sess *Session) *Geolocation {
	g := &Geolocation{locations: sess.Locations, selected: -1}
	g.reset()
	if id := sess.takeMapFocus(); id != 0 {
		for i, l := range g.locations {
			if l.ID == id {
				g.cursor = i
				g.selectAt(i)
			}
		}
	}
	return g
}

func (g *Geolocation) Title() string { return "Geolocalização" }
func (g *Geolocation) Scope() string { return geolocationScope }

func (g *Geolocation) Viewport() geo.Viewport { return g.viewport }

// Selected returns the focused location, if any.
func (g *Geolocation) Selected() (geo.Location, bool) {
	if g.selected < 0 || g.selected >= len(g.locations) {
		return geo.Location{}, false
	}
	return g.locations[g.selected], true
}

func (g *Geolocation) selectAt(i int) {
	if i < 0 || i >= len(g.locations) {
		return
	}
	g.selected = i
	g.viewport = geo.Focus(g.locations[i])
}

func (g *Geolocation) reset() {
	g.selected = -1
	g.viewport = geo.Fit(g.locations)
}

func (g *Geolocation) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	switch keyMsg.String() {
	case "up", "k":
		g.cursor = max(0, g.cursor-1)
	case "down", "j":
		g.cursor = min(max(0, len(g.locations)-1), g.cursor+1)
	case "enter":
		g.selectAt(g.cursor)
	case "r", "esc":
		g.reset()
	case "+", "=":
		g.viewport.Zoom = min(geo.MaxZoom, g.viewport.Zoom+1)
	case "-":
		g.viewport.Zoom = max(1, g.viewport.Zoom-1)
	}
	return nil
}

// frame returns the area drawn by the map. With nothing selected it is the
// padded marker bounds so every marker stays visible.
func (g *Geolocation) frame(cols, rows int) geo.Bounds {
	if b, ok := geo.FitBounds(g.locations); ok && g.selected < 0 && !b.Degenerate() && g.viewport == geo.Fit(g.locations) {
		return b.Pad(0.1)
	}
	// terminal cells are about twice as tall as wide
	return g.viewport.Bounds(2 * float64(rows) / float64(max(1, cols)))
}

func (g *Geolocation) renderMap(cols, rows int) string {
	grid := make([][]rune, rows)
	for y := range grid {
		grid[y] = []rune(strings.Repeat("·", cols))
	}
	b := g.frame(cols, rows)
	for i, l := range g.locations {
		x, y, ok := geo.Project(l.Position, b, cols, rows)
		if !ok {
			continue
		}
		mark := rune('1' + i%9)
		if i == g.selected {
			mark = '◉'
		}
		grid[y][x] = mark
	}
	lines := make([]string, rows)
	for y, row := range grid {
		lines[y] = string(row)
	}
	return strings.Join(lines, "\n")
}

func (g *Geolocation) View(width, height int) string {
	listW := min(32, max(16, width/3))
	mapW := max(10, width-listW-1)
	bodyH := max(6, height-8)

	items := make([]string, len(g.locations))
	for i, l := range g.locations {
		items[i] = fmt.Sprintf("%d %s (%s)", i+1, l.Name, l.State)
	}
	list := widgets.List{Title: "Talentos", Items: items, Cursor: g.cursor}.Render(listW, bodyH)

	mapPane := widgets.Pane{
		Title:   fmt.Sprintf("Mapa · zoom %d", g.viewport.Zoom),
		Height:  bodyH,
		Content: g.renderMap(max(1, mapW-4), max(1, bodyH-2)),
	}.Render(mapW, bodyH)

	body := widgets.HStack{
		Widgets: []widgets.Widget{widgets.Text(list), widgets.Text(mapPane)},
		Ratios:  []float64{float64(listW), float64(mapW)},
		Gap:     1,
	}.Render(width, bodyH)

	lines := []string{
		widgets.HeaderStyle.Render("Geolocalização de Talentos"),
		widgets.MutedStyle.Render("Visualize a distribuição dos talentos BhioHub no mapa."),
		body,
	}
	lines = append(lines, g.detail()...)
	return strings.Join(lines, "\n")
}

func (g *Geolocation) detail() []string {
	l, ok := g.Selected()
	if !ok {
		return []string{widgets.MutedStyle.Render("Selecione um talento no mapa para ver os detalhes.")}
	}
	return []string{
		widgets.AccentStyle.Render(l.Name) + " · " + l.Role,
		fmt.Sprintf("%s, %s · %s", l.City, l.State, l.Phone),
		"Especialidades: " + strings.Join(l.Expertise, ", "),
	}
}

func geolocationBindings() []core.KeyBinding {
	return scoped(geolocationScope,
		[3]string{"enter", "select-talent", "focar"},
		[3]string{"r", "reset-map", "ver todos"},
		[3]string{"+", "zoom-in", "zoom+"},
		[3]string{"-", "zoom-out", "zoom-"},
	)
}
