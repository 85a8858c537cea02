// Package profile holds the admin profile and its edit and password-change
// rules.
package profile

import (
	"errors"
	"fmt"
	"strings"
)

// MinPasswordLength is the shortest accepted new password.
const MinPasswordLength = 6

var (
	ErrPasswordMismatch = errors.New("new password and confirmation differ")
	ErrPasswordTooShort = fmt.Errorf("password must have at least %d characters", MinPasswordLength)
	ErrUnknownField     = errors.New("unknown profile field")
	ErrNotEditing       = errors.New("profile is not being edited")
)

type Field string

const (
	FieldName  Field = "name"
	FieldEmail Field = "email"
	FieldPhone Field = "phone"
	FieldRole  Field = "role"
)

// Fields lists editable fields in form order.
var Fields = []Field{FieldName, FieldEmail, FieldPhone, FieldRole}

type Admin struct {
	Name  string
	Email string
	Phone string
	Role  string
}

func (a Admin) Get(f Field) (string, error) {
	switch f {
	case FieldName:
		return a.Name, nil
	case FieldEmail:
		return a.Email, nil
	case FieldPhone:
		return a.Phone, nil
	case FieldRole:
		return a.Role, nil
	}
	return "", fmt.Errorf("%w: %s", ErrUnknownField, f)
}

func (a *Admin) set(f Field, v string) error {
	switch f {
	case FieldName:
		a.Name = v
	case FieldEmail:
		a.Email = v
	case FieldPhone:
		a.Phone = v
	case FieldRole:
		a.Role = v
	default:
		return fmt.Errorf("%w: %s", ErrUnknownField, f)
	}
	return nil
}

// Editor keeps the saved profile and an optional draft being edited.
type Editor struct {
	saved   Admin
	draft   Admin
	editing bool
}

func NewEditor(initial Admin) *Editor {
	return &Editor{saved: initial}
}

func (e *Editor) Current() Admin { return e.saved }

func (e *Editor) Draft() Admin { return e.draft }

func (e *Editor) Editing() bool { return e.editing }

// Begin starts editing from the saved values.
func (e *Editor) Begin() {
	e.draft = e.saved
	e.editing = true
}

func (e *Editor) SetField(f Field, v string) error {
	if !e.editing {
		return ErrNotEditing
	}
	return e.draft.set(f, v)
}

// Save commits the draft. Values are trimmed; no field is required.
func (e *Editor) Save() (Admin, error) {
	if !e.editing {
		return e.saved, ErrNotEditing
	}
	d := e.draft
	d.Name = strings.TrimSpace(d.Name)
	d.Email = strings.TrimSpace(d.Email)
	d.Phone = strings.TrimSpace(d.Phone)
	d.Role = strings.TrimSpace(d.Role)
	e.saved = d
	e.editing = false
	return e.saved, nil
}

// Cancel drops the draft.
func (e *Editor) Cancel() {
	e.draft = Admin{}
	e.editing = false
}

// ChangePassword validates a new password and its confirmation.
func ChangePassword(next, confirm string) error {
	if next != confirm {
		return ErrPasswordMismatch
	}
	if len([]rune(next)) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	return nil
}
