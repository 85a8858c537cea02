package core

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

type testTab string

const (
	tabAlpha testTab = "alpha"
	tabBeta  testTab = "beta"
	tabGamma testTab = "gamma"
)

type stubScreen struct {
	id      testTab
	live    *int
	mounted bool
	keys    []string
	nav     Navigator[testTab]
	capture bool
}

func (s *stubScreen) Title() string        { return string(s.id) }
func (s *stubScreen) Scope() string        { return "screen:" + string(s.id) }
func (s *stubScreen) View(int, int) string { return "content:" + string(s.id) }
func (s *stubScreen) Update(msg tea.Msg) tea.Cmd {
	if km, ok := msg.(tea.KeyMsg); ok {
		s.keys = append(s.keys, km.String())
		if km.String() == "g" && s.nav != nil {
			_ = s.nav.SetActiveTab(tabGamma)
		}
	}
	return nil
}
func (s *stubScreen) Mount() tea.Cmd {
	s.mounted = true
	*s.live++
	return nil
}
func (s *stubScreen) Unmount() {
	s.mounted = false
	*s.live--
}
func (s *stubScreen) CapturesInput() bool { return s.capture }

type stubViews struct {
	live  int
	built map[testTab][]*stubScreen
}

func (v *stubViews) entry(id testTab, needsNav bool) ViewEntry[testTab] {
	return ViewEntry[testTab]{
		ID:             id,
		Label:          string(id),
		Icon:           "*",
		NeedsNavigator: needsNav,
		Render: func(nav Navigator[testTab]) Screen {
			s := &stubScreen{id: id, live: &v.live, nav: nav}
			if v.built == nil {
				v.built = map[testTab][]*stubScreen{}
			}
			v.built[id] = append(v.built[id], s)
			return s
		},
	}
}

func (v *stubViews) registry(t *testing.T) *Registry[testTab, ViewEntry[testTab]] {
	t.Helper()
	reg, err := NewViewRegistry(tabAlpha, v.entry(tabAlpha, true), v.entry(tabBeta, false), v.entry(tabGamma, true))
	if err != nil {
		t.Fatalf("registry: %v", err)
	}
	return reg
}

func TestRegistryResolvesEveryDeclaredID(t *testing.T) {
	views := &stubViews{}
	reg := views.registry(t)
	for _, id := range reg.IDs() {
		entry, err := reg.Resolve(id)
		if err != nil {
			t.Fatalf("resolve %q: %v", id, err)
		}
		if entry.ID != id || entry.Render == nil {
			t.Fatalf("entry for %q is incomplete: %+v", id, entry)
		}
	}
	if got := reg.IDs(); len(got) != 3 || got[0] != tabAlpha || got[2] != tabGamma {
		t.Fatalf("declaration order lost: %v", got)
	}
}

func TestRegistryUnknownIDReturnsInvalidTabError(t *testing.T) {
	reg := (&stubViews{}).registry(t)
	_, err := reg.Resolve("nonexistent")
	if !errors.Is(err, ErrInvalidTab) {
		t.Fatalf("expected ErrInvalidTab, got %v", err)
	}
	var invalid *InvalidTabError
	if !errors.As(err, &invalid) || invalid.ID != "nonexistent" {
		t.Fatalf("expected *InvalidTabError carrying the id, got %v", err)
	}
}

func TestRegistryResolveOrDefaultFallsBack(t *testing.T) {
	reg := (&stubViews{}).registry(t)
	id, entry := reg.ResolveOrDefault("nope")
	if id != tabAlpha || entry.ID != tabAlpha {
		t.Fatalf("fallback = %q/%q, want alpha", id, entry.ID)
	}
	id, _ = reg.ResolveOrDefault(tabBeta)
	if id != tabBeta {
		t.Fatalf("known id should resolve to itself, got %q", id)
	}
}

func TestRegistryConstructionRejectsBadInput(t *testing.T) {
	v := &stubViews{}
	cases := map[string]func() error{
		"empty": func() error {
			_, err := NewRegistry[testTab, int](tabAlpha, nil)
			return err
		},
		"duplicate": func() error {
			_, err := NewViewRegistry(tabAlpha, v.entry(tabAlpha, false), v.entry(tabAlpha, false))
			return err
		},
		"missing default": func() error {
			_, err := NewViewRegistry(tabGamma, v.entry(tabAlpha, false))
			return err
		},
		"blank id": func() error {
			_, err := NewViewRegistry(tabAlpha, v.entry(tabAlpha, false), v.entry("  ", false))
			return err
		},
		"no renderer": func() error {
			_, err := NewViewRegistry(tabAlpha, ViewEntry[testTab]{ID: tabAlpha})
			return err
		},
	}
	for name, build := range cases {
		if err := build(); err == nil {
			t.Fatalf("%s: expected construction error", name)
		}
	}
}
