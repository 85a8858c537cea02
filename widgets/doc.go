// Package widgets contains dumb render primitives.
//
// Allowed here:
// - stateless drawing/composition helpers (pane chrome, stacks, sidebar, tables, popup overlay compositor)
//
// Not allowed here:
// - key handling, navigation state transitions, scope logic, or tab policy
package widgets
