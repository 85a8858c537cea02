// Package user implements the end-user dashboard screens.
package user

import (
	"github.com/bhiohub/bhiohub/core"
)

// Tab identifies a screen of the end-user shell.
type Tab string

const (
	TabHome        Tab = "home"
	TabCourses     Tab = "courses"
	TabCommunity   Tab = "community"
	TabEvolution   Tab = "evolution"
	TabProfile     Tab = "profile"
	TabConnections Tab = "connections"
)

const (
	Brand  = "BhioHub"
	Footer = "Plataforma de Talentos"
)

// Views returns the end-user tabs in sidebar order.
func Views() []core.ViewEntry[Tab] {
	return []core.ViewEntry[Tab]{
		{ID: TabHome, Label: "Início", Icon: "⌂", NeedsNavigator: true,
			Render: func(nav core.Navigator[Tab]) core.Screen { return NewHome(nav) }},
		{ID: TabCourses, Label: "Cursos", Icon: "▣",
			Render: func(core.Navigator[Tab]) core.Screen { return NewCourses() }},
		{ID: TabCommunity, Label: "Comunidade", Icon: "☰",
			Render: func(core.Navigator[Tab]) core.Screen { return NewCommunity() }},
		{ID: TabEvolution, Label: "Evolução", Icon: "↗",
			Render: func(core.Navigator[Tab]) core.Screen { return NewEvolution() }},
		{ID: TabProfile, Label: "Perfil", Icon: "◉",
			Render: func(core.Navigator[Tab]) core.Screen { return NewProfile() }},
		{ID: TabConnections, Label: "Conexões", Icon: "⋈",
			Render: func(core.Navigator[Tab]) core.Screen { return NewConnections() }},
	}
}

// NewRegistry builds the end-user view registry with home as default.
func NewRegistry() (*core.Registry[Tab, core.ViewEntry[Tab]], error) {
	return core.NewViewRegistry(TabHome, Views()...)
}

// Bindings are the screen-scoped shortcuts of the end-user screens.
func Bindings() []core.KeyBinding {
	return []core.KeyBinding{
		{Keys: []string{"enter"}, Action: "open-quick-access", Description: "abrir", Scopes: []string{homeScope}},
		{Keys: []string{"left"}, Action: "prev-category", Description: "categoria ←", Scopes: []string{coursesScope}},
		{Keys: []string{"right"}, Action: "next-category", Description: "categoria →", Scopes: []string{coursesScope}},
	}
}
