package core

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestKeyRegistryScopeMatch(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"ctrl+k"}, Action: "palette", Scopes: []string{"screen:a"}},
		{Keys: []string{" Q "}, Action: "quit", Scopes: []string{"*"}},
	})
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", "screen:a") {
		t.Fatalf("expected ctrl+k in screen:a")
	}
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlK}, "palette", "screen:b") {
		t.Fatalf("did not expect ctrl+k in screen:b")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, "quit", "screen:b") {
		t.Fatalf("expected normalized q to match wildcard scope")
	}
}

func TestKeyRegistryBindingsForScopeOnePerAction(t *testing.T) {
	reg := NewKeyRegistry([]KeyBinding{
		{Keys: []string{"enter"}, Action: "submit", Description: "enviar", Scopes: []string{"modal:x"}},
		{Keys: []string{"ctrl+s"}, Action: "submit", Description: "salvar", Scopes: []string{"modal:x"}},
		{Keys: []string{"esc"}, Action: "cancel", Scopes: []string{"modal:y"}},
	})
	got := reg.BindingsForScope("modal:x")
	if len(got) != 1 || got[0].Description != "enviar" {
		t.Fatalf("expected the first submit binding only, got %#v", got)
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlS}, "submit", "modal:x") {
		t.Fatalf("hidden duplicate should still match")
	}
}

func TestApplyActionKeybindingsOverridesKeys(t *testing.T) {
	defaults := DefaultKeyBindings([]string{"Início"})
	got := ApplyActionKeybindings(defaults, map[string][]string{ActionQuit: {"ctrl+q", " "}})
	reg := NewKeyRegistry(got)
	if reg.IsAction(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'q'}}, ActionQuit, "screen:home") {
		t.Fatalf("q should no longer quit")
	}
	if !reg.IsAction(tea.KeyMsg{Type: tea.KeyCtrlQ}, ActionQuit, "screen:home") {
		t.Fatalf("ctrl+q should quit")
	}
	if keys := DefaultKeybindingsByAction(defaults)[ActionQuit]; len(keys) != 1 || keys[0] != "q" {
		t.Fatalf("defaults mutated: %v", keys)
	}
}
