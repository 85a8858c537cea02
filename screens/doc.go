// Package screens contains building blocks shared by the shell screens.
//
// Allowed here:
// - text forms embedded in screens and modal dialogs satisfying core.Modal
// - interaction wiring common to both dashboards
//
// Not allowed here:
// - screens of a specific shell (see screens/admin and screens/user)
// - low-level widget/layout primitives
package screens
