package core

import (
	"fmt"
	"slices"
	"strings"
)

const (
	ActionQuit    = "quit"
	ActionNextTab = "next-tab"
	ActionPrevTab = "prev-tab"
)

// SwitchTabAction names the numeric shortcut for the n-th tab (1-based).
func SwitchTabAction(n int) string {
	return fmt.Sprintf("switch-tab-%d", n)
}

// DefaultKeyBindings builds shell bindings for a shell with the given tab
// labels, in sidebar order.
func DefaultKeyBindings(labels []string) []KeyBinding {
	out := []KeyBinding{
		{Keys: []string{"q"}, Action: ActionQuit, Description: "sair", Scopes: []string{"*"}},
		{Keys: []string{"tab"}, Action: ActionNextTab, Description: "próxima", Scopes: []string{"*"}},
		{Keys: []string{"shift+tab"}, Action: ActionPrevTab, Description: "anterior", Scopes: []string{"*"}},
		{Keys: []string{":", "ctrl+k"}, Action: ActionJump, Description: "ir para", Scopes: []string{"*"}},
	}
	for i, label := range labels {
		if i >= 9 {
			break
		}
		out = append(out, KeyBinding{
			Keys:        []string{fmt.Sprintf("%d", i+1)},
			Action:      SwitchTabAction(i + 1),
			Description: strings.ToLower(label),
			Scopes:      []string{"*"},
		})
	}
	return out
}

func DefaultKeybindingsByAction(bindings []KeyBinding) map[string][]string {
	out := make(map[string][]string, len(bindings))
	for _, b := range bindings {
		if strings.TrimSpace(b.Action) == "" || len(b.Keys) == 0 {
			continue
		}
		if _, exists := out[b.Action]; exists {
			continue
		}
		out[b.Action] = append([]string(nil), b.Keys...)
	}
	return out
}

// ApplyActionKeybindings replaces the keys of bindings whose action appears
// in actionKeys, keeping scopes and descriptions. Blank keys are dropped and
// an override left with no keys is ignored.
func ApplyActionKeybindings(bindings []KeyBinding, actionKeys map[string][]string) []KeyBinding {
	overrides := make(map[string][]string, len(actionKeys))
	for action, keys := range actionKeys {
		var clean []string
		for _, k := range keys {
			if k = normalizeKey(k); k != "" {
				clean = append(clean, k)
			}
		}
		if len(clean) > 0 {
			overrides[strings.TrimSpace(action)] = clean
		}
	}
	out := make([]KeyBinding, 0, len(bindings))
	for _, b := range bindings {
		next := b
		next.Keys = slices.Clone(b.Keys)
		next.Scopes = slices.Clone(b.Scopes)
		if keys, ok := overrides[b.Action]; ok {
			next.Keys = slices.Clone(keys)
		}
		out = append(out, next)
	}
	return out
}
