package core

import (
	"fmt"
	"slices"
	"strings"
)

// Registry is an immutable lookup from a tab identifier to its entry.
// Declaration order is preserved for the sidebar and numeric shortcuts.
type Registry[K ~string, V any] struct {
	fallback K
	order    []K
	entries  map[K]V
}

type Entry[K ~string, V any] struct {
	ID    K
	Value V
}

func NewRegistry[K ~string, V any](fallback K, entries []Entry[K, V]) (*Registry[K, V], error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("registry: no entries")
	}
	r := &Registry[K, V]{
		fallback: fallback,
		order:    make([]K, 0, len(entries)),
		entries:  make(map[K]V, len(entries)),
	}
	for _, e := range entries {
		if strings.TrimSpace(string(e.ID)) == "" {
			return nil, fmt.Errorf("registry: blank identifier")
		}
		if _, dup := r.entries[e.ID]; dup {
			return nil, fmt.Errorf("registry: duplicate identifier %q", e.ID)
		}
		r.entries[e.ID] = e.Value
		r.order = append(r.order, e.ID)
	}
	if _, ok := r.entries[fallback]; !ok {
		return nil, fmt.Errorf("registry: default %q is not registered", fallback)
	}
	return r, nil
}

// NewViewRegistry keys each view entry by its own ID.
func NewViewRegistry[K ~string](fallback K, views ...ViewEntry[K]) (*Registry[K, ViewEntry[K]], error) {
	entries := make([]Entry[K, ViewEntry[K]], 0, len(views))
	for _, v := range views {
		if v.Render == nil {
			return nil, fmt.Errorf("registry: view %q has no renderer", v.ID)
		}
		entries = append(entries, Entry[K, ViewEntry[K]]{ID: v.ID, Value: v})
	}
	return NewRegistry(fallback, entries)
}

func (r *Registry[K, V]) Resolve(id K) (V, error) {
	v, ok := r.entries[id]
	if !ok {
		var zero V
		return zero, &InvalidTabError{ID: string(id), Known: r.known()}
	}
	return v, nil
}

// ResolveOrDefault substitutes the default identifier for unknown input.
func (r *Registry[K, V]) ResolveOrDefault(id K) (K, V) {
	if v, ok := r.entries[id]; ok {
		return id, v
	}
	return r.fallback, r.entries[r.fallback]
}

func (r *Registry[K, V]) Contains(id K) bool {
	_, ok := r.entries[id]
	return ok
}

func (r *Registry[K, V]) IDs() []K {
	return slices.Clone(r.order)
}

func (r *Registry[K, V]) Default() K {
	return r.fallback
}

func (r *Registry[K, V]) Len() int {
	return len(r.order)
}

// IndexOf returns the declaration position of id, or -1.
func (r *Registry[K, V]) IndexOf(id K) int {
	return slices.Index(r.order, id)
}

func (r *Registry[K, V]) known() []string {
	out := make([]string, len(r.order))
	for i, id := range r.order {
		out[i] = string(id)
	}
	return out
}
