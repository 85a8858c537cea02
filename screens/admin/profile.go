package admin

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bhiohub/bhiohub/core"
	"github.com/bhiohub/bhiohub/internal/profile"
	"github.com/bhiohub/bhiohub/screens"
	"github.com/bhiohub/bhiohub/widgets"
)

const (
	profileScope         = "screen:profile"
	profileEditScope     = "screen:profile/edit"
	profilePasswordScope = "screen:profile/password"

	fieldCurrent = "current"
	fieldNew     = "new"
	fieldConfirm = "confirm"
)

var profileLabels = map[profile.Field]string{
	profile.FieldName:  "Nome Completo",
	profile.FieldEmail: "Email",
	profile.FieldPhone: "Telefone",
	profile.FieldRole:  "Cargo",
}

type Profile struct {
	editor   *profile.Editor
	form     *screens.Form
	password bool
}

func NewProfile(sess *Session) *Profile {
	return &Profile{editor: sess.Profile}
}

func (p *Profile) Title() string { return "Perfil" }

func (p *Profile) Scope() string {
	switch {
	case p.form == nil:
		return profileScope
	case p.password:
		return profilePasswordScope
	}
	return profileEditScope
}

func (p *Profile) CapturesInput() bool { return p.form != nil }

// Unmount drops an unsaved edit.
func (p *Profile) Unmount() {
	if p.editor.Editing() {
		p.editor.Cancel()
	}
}

func (p *Profile) Mount() tea.Cmd { return nil }

func (p *Profile) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}
	if p.form != nil {
		return p.updateForm(keyMsg)
	}
	switch keyMsg.String() {
	case "e":
		p.beginEdit()
	case "p":
		p.password = true
		p.form = screens.NewForm("Alterar Senha", []screens.FormField{
			{Key: fieldCurrent, Label: "Senha Atual", Secret: true},
			{Key: fieldNew, Label: "Nova Senha", Secret: true},
			{Key: fieldConfirm, Label: "Confirmar Nova Senha", Secret: true},
		})
	}
	return nil
}

func (p *Profile) beginEdit() {
	p.editor.Begin()
	cur := p.editor.Current()
	fields := make([]screens.FormField, 0, len(profile.Fields))
	for _, f := range profile.Fields {
		v, _ := cur.Get(f)
		fields = append(fields, screens.FormField{Key: string(f), Label: profileLabels[f], Value: v})
	}
	p.password = false
	p.form = screens.NewForm("Editar Perfil", fields)
}

func (p *Profile) updateForm(msg tea.KeyMsg) tea.Cmd {
	res, cmd := p.form.Update(msg)
	switch res {
	case screens.FormCancelled:
		if !p.password {
			p.editor.Cancel()
		}
		p.form = nil
		return nil
	case screens.FormSubmitted:
		if p.password {
			return p.changePassword()
		}
		return p.save()
	}
	return cmd
}

func (p *Profile) save() tea.Cmd {
	for key, v := range p.form.Values() {
		if err := p.editor.SetField(profile.Field(key), v); err != nil {
			return core.ErrorToastCmd("Perfil", err)
		}
	}
	if _, err := p.editor.Save(); err != nil {
		return core.ErrorToastCmd("Perfil", err)
	}
	p.form = nil
	return core.ToastCmd(core.ToastSuccess, "Perfil Atualizado", "Suas informações foram salvas com sucesso.")
}

func (p *Profile) changePassword() tea.Cmd {
	err := profile.ChangePassword(p.form.Value(fieldNew), p.form.Value(fieldConfirm))
	switch {
	case errors.Is(err, profile.ErrPasswordMismatch):
		return core.ToastCmd(core.ToastDestructive, "Erro na Senha", "A nova senha e a confirmação não coincidem.")
	case errors.Is(err, profile.ErrPasswordTooShort):
		return core.ToastCmd(core.ToastDestructive, "Senha Inválida", "A nova senha deve ter pelo menos 6 caracteres.")
	case err != nil:
		return core.ErrorToastCmd("Senha", err)
	}
	p.form.Reset()
	p.form = nil
	p.password = false
	return core.ToastCmd(core.ToastSuccess, "Senha Alterada", "Sua senha foi alterada com sucesso.")
}

func (p *Profile) View(width, height int) string {
	lines := []string{
		widgets.HeaderStyle.Render("Perfil do Administrador"),
		widgets.MutedStyle.Render("Gerencie suas informações pessoais e configurações de segurança."),
		"",
	}
	if p.form != nil {
		lines = append(lines, p.form.View(width))
		return strings.Join(lines, "\n")
	}
	cur := p.editor.Current()
	for _, f := range profile.Fields {
		v, _ := cur.Get(f)
		lines = append(lines, widgets.MutedStyle.Render(profileLabels[f]+": ")+v)
	}
	lines = append(lines,
		"",
		widgets.AccentStyle.Render("[e] Editar Perfil")+"   "+widgets.AccentStyle.Render("[p] Alterar Senha"),
		"",
		widgets.HeaderStyle.Render("Notificações"),
		"Notificações por Email: ativadas",
		"Notificações no App: ativadas",
	)
	return strings.Join(lines, "\n")
}

func profileBindings() []core.KeyBinding {
	out := scoped(profileScope,
		[3]string{"e", "edit-profile", "editar"},
		[3]string{"p", "change-password", "senha"},
	)
	out = append(out, screens.FormBindings(profileEditScope)...)
	return append(out, screens.FormBindings(profilePasswordScope)...)
}
