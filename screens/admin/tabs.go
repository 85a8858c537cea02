// Package admin implements the administrator dashboard screens.
package admin

import (
	"time"

	"github.com/bhiohub/bhiohub/core"
	"github.com/bhiohub/bhiohub/internal/articles"
	"github.com/bhiohub/bhiohub/internal/catalog"
	"github.com/bhiohub/bhiohub/internal/geo"
	"github.com/bhiohub/bhiohub/internal/profile"
	"github.com/bhiohub/bhiohub/internal/talent"
	"github.com/bhiohub/bhiohub/screens"
)

// Tab identifies a screen of the admin shell.
type Tab string

const (
	TabDashboard   Tab = "dashboard"
	TabTalents     Tab = "talents"
	TabGeolocation Tab = "geolocation"
	TabArticles    Tab = "articles"
	TabProfile     Tab = "profile"
)

const (
	Brand  = "BhioHub Admin"
	Footer = "© BhioHub"
)

// Session is the data that outlives a single mount of a screen.
type Session struct {
	Directory *talent.Directory
	Badges    []talent.Option
	Levels    []talent.Option
	Locations []geo.Location
	Articles  *articles.Store
	Profile   *profile.Editor
	Tick      time.Duration

	mapFocus   int
	articleGen int
}

// NewSession seeds a session from the catalog. tick and step drive the
// simulated video processing.
func NewSession(tick time.Duration, step int) *Session {
	if tick <= 0 {
		tick = 500 * time.Millisecond
	}
	return &Session{
		Directory: talent.NewDirectory(catalog.Talents(), catalog.ExpertiseBadges()),
		Badges:    catalog.ExpertiseBadges(),
		Levels:    catalog.Levels(),
		Locations: catalog.Locations(),
		Articles:  articles.NewStore(catalog.SeedArticles(), step),
		Profile:   profile.NewEditor(catalog.AdminProfile()),
		Tick:      tick,
	}
}

// FocusOnMap asks the next geolocation mount to centre on a talent.
func (s *Session) FocusOnMap(talentID int) {
	s.mapFocus = talentID
}

func (s *Session) takeMapFocus() int {
	id := s.mapFocus
	s.mapFocus = 0
	return id
}

// Views returns the admin tabs in sidebar order.
func Views(sess *Session) []core.ViewEntry[Tab] {
	return []core.ViewEntry[Tab]{
		{ID: TabDashboard, Label: "Dashboard", Icon: "▦", NeedsNavigator: true,
			Render: func(nav core.Navigator[Tab]) core.Screen { return NewDashboard(nav) }},
		{ID: TabTalents, Label: "Talentos", Icon: "☰", NeedsNavigator: true,
			Render: func(nav core.Navigator[Tab]) core.Screen { return NewTalents(nav, sess) }},
		{ID: TabGeolocation, Label: "Geolocalização", Icon: "⌖",
			Render: func(core.Navigator[Tab]) core.Screen { return NewGeolocation(sess) }},
		{ID: TabArticles, Label: "Artigos", Icon: "▤",
			Render: func(core.Navigator[Tab]) core.Screen { return NewArticles(sess) }},
		{ID: TabProfile, Label: "Perfil", Icon: "◉",
			Render: func(core.Navigator[Tab]) core.Screen { return NewProfile(sess) }},
	}
}

// NewRegistry builds the admin view registry with dashboard as default.
func NewRegistry(sess *Session) (*core.Registry[Tab, core.ViewEntry[Tab]], error) {
	return core.NewViewRegistry(TabDashboard, Views(sess)...)
}

// Bindings are the screen-scoped shortcuts of every admin screen.
func Bindings() []core.KeyBinding {
	var out []core.KeyBinding
	out = append(out, dashboardBindings()...)
	out = append(out, talentsBindings()...)
	out = append(out, geolocationBindings()...)
	out = append(out, articlesBindings()...)
	out = append(out, profileBindings()...)
	out = append(out, screens.ConfirmBindings()...)
	return out
}

func scoped(scope string, items ...[3]string) []core.KeyBinding {
	out := make([]core.KeyBinding, 0, len(items))
	for _, it := range items {
		out = append(out, core.KeyBinding{
			Keys:        []string{it[0]},
			Action:      it[1],
			Description: it[2],
			Scopes:      []string{scope},
		})
	}
	return out
}
