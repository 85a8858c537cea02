package screens

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeText(f *Form, text string) {
	f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
}

func testKey(name string) tea.KeyMsg {
	switch name {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

func TestFormEnterAdvancesThenSubmits(t *testing.T) {
	f := NewForm("Upload", []FormField{{Key: "path", Label: "Documento"}, {Key: "title", Label: "Título"}})
	if f.Focused() != "path" {
		t.Fatalf("expected first field focused, got %q", f.Focused())
	}
	typeText(f, "a.pdf")
	if res, _ := f.Update(testKey("enter")); res != FormEditing {
		t.Fatalf("enter on first field should not submit, got %v", res)
	}
	if f.Focused() != "title" {
		t.Fatalf("expected title focused, got %q", f.Focused())
	}
	typeText(f, "Artigo")
	if res, _ := f.Update(testKey("enter")); res != FormSubmitted {
		t.Fatalf("expected submit, got %v", res)
	}
	vals := f.Values()
	if vals["path"] != "a.pdf" || vals["title"] != "Artigo" {
		t.Fatalf("unexpected values: %#v", vals)
	}
}

func TestFormTabWrapsAndEscCancels(t *testing.T) {
	f := NewForm("x", []FormField{{Key: "a", Label: "A"}, {Key: "b", Label: "B"}})
	f.Update(testKey("shift+tab"))
	if f.Focused() != "b" {
		t.Fatalf("shift+tab should wrap to last field, got %q", f.Focused())
	}
	f.Update(testKey("tab"))
	if f.Focused() != "a" {
		t.Fatalf("tab should wrap to first field, got %q", f.Focused())
	}
	if res, _ := f.Update(testKey("esc")); res != FormCancelled {
		t.Fatalf("expected cancel, got %v", res)
	}
}

func TestFormSetValueAndReset(t *testing.T) {
	f := NewForm("x", []FormField{{Key: "a", Label: "A", Value: "1"}, {Key: "b", Label: "B", Secret: true}})
	f.SetValue("b", "segredo")
	if f.Value("b") != "segredo" {
		t.Fatalf("SetValue did not apply")
	}
	if strings.Contains(f.View(60), "segredo") {
		t.Fatalf("secret field rendered in clear text")
	}
	f.Update(testKey("tab"))
	f.Reset()
	if f.Value("a") != "" || f.Value("b") != "" || f.Focused() != "a" {
		t.Fatalf("reset did not clear form: %#v focus=%q", f.Values(), f.Focused())
	}
}

func TestConfirm(t *testing.T) {
	ran := false
	c := NewConfirm("Confirmar Exclusão", "Excluir?", "Excluir", func() tea.Msg { ran = true; return nil })

	next, cmd, pop := c.Update(testKey("x"))
	if pop || next == nil || cmd != nil {
		t.Fatalf("unrelated key should keep modal open")
	}
	_, cmd, pop = c.Update(testKey("y"))
	if !pop || cmd == nil {
		t.Fatalf("y should close and return the confirm command")
	}
	cmd()
	if !ran {
		t.Fatalf("confirm command not run")
	}

	_, cmd, pop = c.Update(testKey("esc"))
	if !pop || cmd != nil {
		t.Fatalf("esc should close without command")
	}
	if !strings.Contains(c.View(40, 8), "Confirmar Exclusão") {
		t.Fatalf("title missing from view")
	}
}
