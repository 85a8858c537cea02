// Package core contains shell-wide contracts and navigation state.
//
// Allowed here:
// - the view registry, the navigation controller and the shell model that owns them
// - message contracts, key registry, modal stack, toasts and the tab transition
// - the go-to-tab palette and its fuzzy picker
//
// Not allowed here:
// - concrete screen rendering (screens/admin, screens/user)
// - low-level widget rendering primitives (widgets)
// - mock data or domain rules (internal/...)
package core
