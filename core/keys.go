package core

import (
	"slices"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// KeyBinding maps keys to an action inside a set of scopes. An empty scope
// list or "*" matches every scope.
type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

func (b KeyBinding) binding() key.Binding {
	keys := make([]string, 0, len(b.Keys))
	for _, k := range b.Keys {
		if k = normalizeKey(k); k != "" {
			keys = append(keys, k)
		}
	}
	if len(keys) == 0 {
		return key.NewBinding(key.WithDisabled())
	}
	return key.NewBinding(key.WithKeys(keys...), key.WithHelp(keys[0], b.Description))
}

func (b KeyBinding) inScope(scope string) bool {
	return len(b.Scopes) == 0 || slices.Contains(b.Scopes, "*") || slices.Contains(b.Scopes, scope)
}

type KeyRegistry struct {
	bindings []KeyBinding
	compiled []key.Binding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	r := &KeyRegistry{}
	for _, b := range bindings {
		r.Register(b)
	}
	return r
}

func (r *KeyRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	r.compiled = append(r.compiled, b.binding())
}

// BindingsForScope lists the bindings active in scope, one per action, in
// registration order.
func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	seen := make(map[string]bool)
	var out []KeyBinding
	for _, b := range r.bindings {
		if !b.inScope(scope) || seen[b.Action] {
			continue
		}
		seen[b.Action] = true
		out = append(out, b)
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	for i, b := range r.bindings {
		if b.Action == action && b.inScope(scope) && key.Matches(msg, r.compiled[i]) {
			return true
		}
	}
	return false
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}
