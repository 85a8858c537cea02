package admin

import (
	"strings"
	"testing"

	"github.com/bhiohub/bhiohub/core"
	"github.com/bhiohub/bhiohub/internal/articles"
)

func TestArticlesUploadFlow(t *testing.T) {
	sess := newTestSession()
	a := NewArticles(sess)
	a.Update(key("n"))
	if !a.CapturesInput() || a.Scope() != articlesFormScope {
		t.Fatalf("upload form should capture input")
	}

	typeInto(a, "slides.pptx")
	toast, ok := toastOf(a.Update(key("enter")))
	if !ok || toast.Title != "Arquivo Inválido" || toast.Variant != core.ToastDestructive {
		t.Fatalf("expected invalid file toast, got %#v", toast)
	}
	if a.form.Value(fieldDocument) != "" {
		t.Fatalf("rejected document should be cleared")
	}

	a.Update(key("shift+tab"))
	typeInto(a, "/tmp/novo_artigo.pdf")
	a.Update(key("enter"))
	if got := a.form.Value(fieldTitle); got != "novo_artigo" {
		t.Fatalf("title should default to file name, got %q", got)
	}
	toast, ok = toastOf(a.Update(key("enter")))
	if !ok || toast.Title != "Upload Iniciado" || !strings.Contains(toast.Description, "novo_artigo.pdf") {
		t.Fatalf("expected upload toast, got %#v", toast)
	}
	if a.CapturesInput() {
		t.Fatalf("form should close after upload")
	}
	first := sess.Articles.List()[0]
	if first.Title != "novo_artigo" || first.Status != articles.StatusProcessing || sess.Articles.Len() != 4 {
		t.Fatalf("unexpected first article %#v", first)
	}
}

func TestArticlesMissingFields(t *testing.T) {
	a := NewArticles(newTestSession())
	a.Update(key("n"))
	a.Update(key("tab"))
	typeInto(a, "Só título")
	toast, ok := toastOf(a.Update(key("enter")))
	if !ok || toast.Title != "Campos Obrigatórios" {
		t.Fatalf("expected missing fields toast, got %#v", toast)
	}
	if !a.CapturesInput() {
		t.Fatalf("form should stay open after a rejected submit")
	}
	a.Update(key("esc"))
	if a.CapturesInput() {
		t.Fatalf("esc should close the form")
	}
}

func TestArticlesProcessingCompletes(t *testing.T) {
	sess := newTestSession()
	a := NewArticles(sess)
	if a.Mount() == nil {
		t.Fatalf("mount should resume the processing seed article")
	}
	gen := sess.articleGen

	// seed article "2" starts at 65%
	var done core.ToastMsg
	for i := 0; i < 4; i++ {
		cmd := a.Update(advanceMsg{id: "2", gen: gen})
		if toast, ok := toastOf(cmd); ok {
			done = toast
		}
	}
	art, _ := sess.Articles.Get("2")
	if art.Status != articles.StatusVideoReady || art.VideoURL == "" || art.Views != 0 {
		t.Fatalf("expected generated video, got %#v", art)
	}
	if done.Title != "Vídeo Gerado!" || done.Variant != core.ToastSuccess {
		t.Fatalf("expected success toast, got %#v", done)
	}
}

func TestArticlesStaleTicksIgnored(t *testing.T) {
	sess := newTestSession()
	a := NewArticles(sess)
	a.Mount()
	stale := sess.articleGen
	a.Unmount()
	if cmd := a.Update(advanceMsg{id: "2", gen: stale}); cmd != nil {
		t.Fatalf("stale tick should be ignored")
	}
	art, _ := sess.Articles.Get("2")
	if art.Progress != 65 {
		t.Fatalf("progress changed on stale tick: %d", art.Progress)
	}
}

func TestArticlesDeleteWithConfirmation(t *testing.T) {
	sess := newTestSession()
	a := NewArticles(sess)
	var modal core.Modal
	for _, msg := range collect(a.Update(key("d"))) {
		if push, ok := msg.(core.PushModalMsg); ok {
			modal = push.Modal
		}
	}
	if modal == nil || modal.Title() != "Confirmar Exclusão" {
		t.Fatalf("expected confirmation modal")
	}
	if sess.Articles.Len() != 3 {
		t.Fatalf("nothing should be deleted before confirming")
	}
	_, confirm, pop := modal.Update(key("y"))
	if !pop || confirm == nil {
		t.Fatalf("confirm should close and return the delete command")
	}
	var toast core.ToastMsg
	for _, msg := range collect(confirm) {
		if got, ok := toastOf(a.Update(msg)); ok {
			toast = got
		}
	}
	if toast.Title != "Artigo Removido" || sess.Articles.Len() != 2 {
		t.Fatalf("expected removal toast and 2 articles, got %#v len=%d", toast, sess.Articles.Len())
	}
}

func TestArticlesEmptyState(t *testing.T) {
	sess := newTestSession()
	for _, art := range sess.Articles.List() {
		if _, err := sess.Articles.Delete(art.ID); err != nil {
			t.Fatalf("delete: %v", err)
		}
	}
	if !strings.Contains(NewArticles(sess).View(100, 30), "Nenhum artigo enviado ainda") {
		t.Fatalf("empty state missing")
	}
}
