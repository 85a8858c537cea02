package core

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestRenderFooterDropsPairsThatDoNotFit(t *testing.T) {
	bindings := []KeyBinding{
		{Keys: []string{"q"}, Action: "quit", Description: "sair"},
		{Keys: []string{"tab"}, Action: "next", Description: "próxima"},
		{Keys: []string{"shift+tab"}, Action: "prev", Description: "anterior"},
	}
	out := ansi.Strip(renderFooter(bindings, 20))
	if !strings.Contains(out, "q sair  tab próxima") {
		t.Fatalf("expected the first two pairs, got %q", out)
	}
	if strings.Contains(out, "anterior") {
		t.Fatalf("third pair should be dropped whole: %q", out)
	}
	if w := ansi.StringWidth(out); w != 20 {
		t.Fatalf("footer width = %d, want 20", w)
	}
	if out := ansi.Strip(renderFooter(nil, 20)); !strings.Contains(out, "Sem atalhos") {
		t.Fatalf("empty footer: %q", out)
	}
}

func TestFitHeightPadsAndClips(t *testing.T) {
	if got := fitHeight("a\nb\nc", 2); got != "a\nb" {
		t.Fatalf("clip: %q", got)
	}
	if got := fitHeight("a", 3); got != "a\n\n" {
		t.Fatalf("pad: %q", got)
	}
}
