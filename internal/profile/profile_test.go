package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var admin = Admin{
	Name:  "Administrador BhioHub",
	Email: "admin@bhiohub.com.br",
	Phone: "(11) 98765-4321",
	Role:  "Super Administrador",
}

func TestEditorSave(t *testing.T) {
	e := NewEditor(admin)
	require.False(t, e.Editing())
	require.ErrorIs(t, e.SetField(FieldName, "x"), ErrNotEditing)

	e.Begin()
	require.NoError(t, e.SetField(FieldName, "  Maria Admin "))
	require.NoError(t, e.SetField(FieldPhone, "(21) 90000-0000"))
	assert.Equal(t, admin.Name, e.Current().Name)

	saved, err := e.Save()
	require.NoError(t, err)
	assert.Equal(t, "Maria Admin", saved.Name)
	assert.Equal(t, "(21) 90000-0000", e.Current().Phone)
	assert.Equal(t, admin.Email, e.Current().Email)
	assert.False(t, e.Editing())
}

func TestEditorCancelKeepsSaved(t *testing.T) {
	e := NewEditor(admin)
	e.Begin()
	require.NoError(t, e.SetField(FieldEmail, "other@x.com"))
	e.Cancel()
	assert.Equal(t, admin, e.Current())
	assert.False(t, e.Editing())
	_, err := e.Save()
	assert.ErrorIs(t, err, ErrNotEditing)
}

func TestUnknownField(t *testing.T) {
	e := NewEditor(admin)
	e.Begin()
	assert.ErrorIs(t, e.SetField("cpf", "1"), ErrUnknownField)
	_, err := admin.Get("cpf")
	assert.ErrorIs(t, err, ErrUnknownField)
	v, err := admin.Get(FieldRole)
	require.NoError(t, err)
	assert.Equal(t, "Super Administrador", v)
}

func TestChangePassword(t *testing.T) {
	assert.ErrorIs(t, ChangePassword("abc", "abd"), ErrPasswordMismatch)
	// mismatch is reported before length
	assert.ErrorIs(t, ChangePassword("a", "b"), ErrPasswordMismatch)
	assert.ErrorIs(t, ChangePassword("abc", "abc"), ErrPasswordTooShort)
	assert.ErrorIs(t, ChangePassword("cinco", "cinco"), ErrPasswordTooShort)
	assert.NoError(t, ChangePassword("segura", "segura"))
}
