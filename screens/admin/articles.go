package admin

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/bhiohub/bhiohub/core"
	"github.com/bhiohub/bhiohub/internal/articles"
	"github.com/bhiohub/bhiohub/screens"
	"github.com/bhiohub/bhiohub/widgets"
)

const (
	articlesScope     = "screen:articles"
	articlesFormScope = "screen:articles/form"

	fieldDocument = "document"
	fieldTitle    = "title"
)

type advanceMsg struct {
	id  string
	gen int
}

type deleteArticleMsg struct {
	id string
}

type Articles struct {
	sess   *Session
	form   *screens.Form
	cursor int
	gen    int
}

func NewArticles(sess *Session) *Articles {
	return &Articles{sess: sess}
}

func (a *Articles) Title() string { return "Artigos" }

func (a *Articles) Scope() string {
	if a.form != nil {
		return articlesFormScope
	}
	return articlesScope
}

func (a *Articles) CapturesInput() bool { return a.form != nil }

// Mount resumes processing of every article still being converted, seeded
// ones included, not only fresh uploads. Ticks from an earlier mount are
// ignored.
func (a *Articles) Mount() tea.Cmd {
	a.sess.articleGen++
	a.gen = a.sess.articleGen
	ids := a.sess.Articles.Processing()
	cmds := make([]tea.Cmd, 0, len(ids))
	for _, id := range ids {
		cmds = append(cmds, a.tick(id))
	}
	return tea.Batch(cmds...)
}

func (a *Articles) Unmount() {
	a.sess.articleGen++
}

func (a *Articles) tick(id string) tea.Cmd {
	gen := a.gen
	return tea.Tick(a.sess.Tick, func(time.Time) tea.Msg { return advanceMsg{id: id, gen: gen} })
}

func (a *Articles) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case advanceMsg:
		return a.advance(msg)
	case deleteArticleMsg:
		removed, err := a.sess.Articles.Delete(msg.id)
		if err != nil {
			return core.ErrorToastCmd("Erro ao Remover", err)
		}
		a.cursor = min(a.cursor, max(0, a.sess.Articles.Len()-1))
		return core.ToastCmd(core.ToastSuccess, "Artigo Removido",
			fmt.Sprintf("O artigo %q foi removido com sucesso.", removed.Title))
	case tea.KeyMsg:
		if a.form != nil {
			return a.updateForm(msg)
		}
		return a.handleKey(msg)
	}
	return nil
}

func (a *Articles) advance(msg advanceMsg) tea.Cmd {
	if msg.gen != a.sess.articleGen {
		return nil
	}
	art, done, err := a.sess.Articles.Advance(msg.id)
	if err != nil {
		return nil
	}
	if done {
		return core.ToastCmd(core.ToastSuccess, "Vídeo Gerado!",
			fmt.Sprintf("O vídeo para %q está pronto.", art.Title))
	}
	return a.tick(msg.id)
}

func (a *Articles) handleKey(msg tea.KeyMsg) tea.Cmd {
	list := a.sess.Articles.List()
	switch msg.String() {
	case "up", "k":
		a.cursor = max(0, a.cursor-1)
	case "down", "j":
		a.cursor = min(max(0, len(list)-1), a.cursor+1)
	case "n":
		a.form = screens.NewForm("Novo Upload", []screens.FormField{
			{Key: fieldDocument, Label: "Documento (.docx ou .pdf)", Placeholder: "/caminho/arquivo.pdf"},
			{Key: fieldTitle, Label: "Título do Artigo/Vídeo"},
		})
	case "d":
		if a.cursor < 0 || a.cursor >= len(list) {
			return nil
		}
		art := list[a.cursor]
		prompt := fmt.Sprintf("Tem certeza que deseja excluir o artigo e o vídeo associado a %q? Esta ação não pode ser desfeita.", art.Title)
		return core.PushModalCmd(screens.NewConfirm("Confirmar Exclusão", prompt, "Excluir",
			func() tea.Msg { return deleteArticleMsg{id: art.ID} }))
	}
	return nil
}

func (a *Articles) updateForm(msg tea.KeyMsg) tea.Cmd {
	before := a.form.Focused()
	res, cmd := a.form.Update(msg)
	switch res {
	case screens.FormCancelled:
		a.form = nil
		return nil
	case screens.FormSubmitted:
		return a.submit()
	}
	if before == fieldDocument && a.form.Focused() != fieldDocument {
		if toast := a.checkDocument(); toast != nil {
			return tea.Batch(cmd, toast)
		}
	}
	return cmd
}

// checkDocument rejects unsupported files as soon as the path is left and
// fills an empty title from the file name.
func (a *Articles) checkDocument() tea.Cmd {
	path := strings.TrimSpace(a.form.Value(fieldDocument))
	if path == "" {
		return nil
	}
	if _, err := articles.ValidateDocument(path); err != nil {
		a.form.SetValue(fieldDocument, "")
		return invalidDocumentToast()
	}
	if strings.TrimSpace(a.form.Value(fieldTitle)) == "" {
		a.form.SetValue(fieldTitle, articles.DefaultTitle(path))
	}
	return nil
}

func (a *Articles) submit() tea.Cmd {
	art, err := a.sess.Articles.Upload(a.form.Value(fieldDocument), a.form.Value(fieldTitle))
	switch {
	case errors.Is(err, articles.ErrMissingFields):
		return core.ToastCmd(core.ToastDestructive, "Campos Obrigatórios",
			"Por favor, selecione um arquivo e forneça um título.")
	case errors.Is(err, articles.ErrUnsupportedDocument):
		a.form.SetValue(fieldDocument, "")
		return invalidDocumentToast()
	case err != nil:
		return core.ErrorToastCmd("Upload", err)
	}
	a.form = nil
	a.cursor = 0
	return tea.Batch(
		core.ToastCmd(core.ToastInfo, "Upload Iniciado",
			fmt.Sprintf("O arquivo %q está sendo processado.", art.DocName)),
		a.tick(art.ID),
	)
}

func invalidDocumentToast() tea.Cmd {
	return core.ToastCmd(core.ToastDestructive, "Arquivo Inválido",
		"Por favor, selecione um arquivo .docx ou .pdf.")
}

func (a *Articles) View(width, height int) string {
	lines := []string{
		widgets.HeaderStyle.Render("Gestão de Artigos e Vídeos"),
		widgets.MutedStyle.Render("Faça upload de documentos (.docx, .pdf) para gerar vídeos informativos com IA."),
		"",
	}
	if a.form != nil {
		lines = append(lines, a.form.View(width), "")
	} else {
		lines = append(lines, widgets.AccentStyle.Render("[n] Novo upload")+widgets.MutedStyle.Render("  DOCX, PDF"), "")
	}
	lines = append(lines, widgets.HeaderStyle.Render("Artigos Enviados"))

	list := a.sess.Articles.List()
	if len(list) == 0 {
		lines = append(lines,
			widgets.AccentStyle.Render("Nenhum artigo enviado ainda"),
			widgets.MutedStyle.Render("Use o formulário acima para começar a gerar vídeos."),
		)
		return strings.Join(lines, "\n")
	}
	for i, art := range list {
		marker := "  "
		if i == a.cursor && a.form == nil {
			marker = "▶ "
		}
		lines = append(lines, marker+widgets.AccentStyle.Render(art.Title))
		lines = append(lines, "    "+widgets.MutedStyle.Render(
			fmt.Sprintf("%s · enviado em %s", art.DocName, art.UploadedAt.Format("02/01/2006"))))
		lines = append(lines, "    Status: "+statusLine(art, max(10, width-16)))
	}
	return strings.Join(lines, "\n")
}

func statusLine(art articles.Article, barWidth int) string {
	switch art.Status {
	case articles.StatusProcessing:
		return "Processando " + widgets.ProgressBar(art.Progress, min(30, barWidth))
	case articles.StatusVideoReady:
		return fmt.Sprintf("Vídeo Gerado · %d visualizações · %s", art.Views, art.VideoURL)
	default:
		return "Pendente"
	}
}

func articlesBindings() []core.KeyBinding {
	out := scoped(articlesScope,
		[3]string{"n", "upload", "novo upload"},
		[3]string{"d", "delete-article", "excluir"},
	)
	return append(out, screens.FormBindings(articlesFormScope)...)
}
