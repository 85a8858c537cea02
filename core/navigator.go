package core

import "strconv"

// Controller owns the active tab of one shell. The owning shell installs the
// single change hook; nothing else observes transitions.
type Controller[K ~string] struct {
	registry *Registry[K, ViewEntry[K]]
	active   K
	onChange func(prev, next K)
}

func NewController[K ~string](registry *Registry[K, ViewEntry[K]]) *Controller[K] {
	return &Controller[K]{registry: registry, active: registry.Default()}
}

func (c *Controller[K]) ActiveTab() K {
	return c.active
}

// SetActiveTab applies id synchronously. Identifiers outside the registry are
// rejected and leave the active tab untouched.
func (c *Controller[K]) SetActiveTab(id K) error {
	if !c.registry.Contains(id) {
		return &InvalidTabError{ID: string(id), Known: c.registry.known()}
	}
	if id == c.active {
		return nil
	}
	prev := c.active
	c.active = id
	if c.onChange != nil {
		c.onChange(prev, id)
	}
	return nil
}

// Step moves delta positions through the declaration order, wrapping.
func (c *Controller[K]) Step(delta int) error {
	ids := c.registry.order
	if len(ids) == 0 {
		return nil
	}
	idx := c.registry.IndexOf(c.active)
	if idx < 0 {
		idx = 0
	}
	next := ((idx+delta)%len(ids) + len(ids)) % len(ids)
	return c.SetActiveTab(ids[next])
}

// SelectIndex activates the tab at a zero-based declaration position.
func (c *Controller[K]) SelectIndex(index int) error {
	if index < 0 || index >= len(c.registry.order) {
		return &InvalidTabError{ID: "#" + strconv.Itoa(index+1), Known: c.registry.known()}
	}
	return c.SetActiveTab(c.registry.order[index])
}

func (c *Controller[K]) setOnChange(fn func(prev, next K)) {
	c.onChange = fn
}
