package widgets

import (
	"strings"
	"testing"

	"github.com/charmbracelet/x/ansi"
)

func TestSidebarHighlightsActiveAndFillsHeight(t *testing.T) {
	s := Sidebar{
		Brand:  "BhioHub Admin",
		Items:  []SidebarItem{{Icon: "▦", Label: "Dashboard"}, {Icon: "☺", Label: "Talentos"}},
		Active: 1,
		Footer: "© BhioHub",
	}
	out := s.Render(22, 10)
	lines := strings.Split(out, "\n")
	if len(lines) != 10 {
		t.Fatalf("line count = %d, want 10", len(lines))
	}
	if !strings.Contains(ansi.Strip(lines[3]), "2 ☺ Talentos") {
		t.Fatalf("expected second item on row 3, got %q", ansi.Strip(lines[3]))
	}
	if !strings.Contains(ansi.Strip(lines[9]), "BhioHub") {
		t.Fatalf("expected footer on last row, got %q", ansi.Strip(lines[9]))
	}
}

func TestTableAlignsColumnsAndShowsEmptyState(t *testing.T) {
	tbl := Table{Headers: []string{"Nome", "Nível"}, Rows: [][]string{{"Dr. Ana Silva", "ouro"}, {"Bruno", "prata"}}, Cursor: -1}
	lines := strings.Split(ansi.Strip(tbl.Render(40, 5)), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(lines))
	}
	if strings.Index(lines[1], "│") != strings.Index(lines[2], "│") {
		t.Fatalf("columns not aligned:\n%s\n%s", lines[1], lines[2])
	}
	empty := Table{Headers: []string{"Nome"}, Empty: "Nenhum talento encontrado", Cursor: -1}
	if !strings.Contains(ansi.Strip(empty.Render(40, 5)), "Nenhum talento encontrado") {
		t.Fatalf("expected empty state text")
	}
}

func TestListKeepsCursorVisible(t *testing.T) {
	items := []string{"a", "b", "c", "d", "e", "f"}
	out := ansi.Strip(List{Items: items, Cursor: 5}.Render(10, 3))
	if !strings.Contains(out, "▶ f") {
		t.Fatalf("expected cursor row visible, got %q", out)
	}
}

func TestProgressBarClampsPercent(t *testing.T) {
	if got := ansi.Strip(ProgressBar(140, 20)); !strings.HasSuffix(got, "100%") {
		t.Fatalf("expected clamp to 100%%, got %q", got)
	}
	if got := ansi.Strip(ProgressBar(-5, 20)); !strings.HasSuffix(got, "  0%") {
		t.Fatalf("expected clamp to 0%%, got %q", got)
	}
}

func TestTextPadsToBox(t *testing.T) {
	out := Text("hi").Render(5, 2)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 || lines[0] != "hi   " {
		t.Fatalf("unexpected text render %q", out)
	}
}

func TestChartScalesToPeak(t *testing.T) {
	c := Chart{Title: "Progresso", Data: []ChartPoint{{"Jan", 50}, {"Fev", 100}}, Unit: "%"}
	lines := strings.Split(c.Render(31, 5), "\n")
	if len(lines) != 3 {
		t.Fatalf("line count = %d, want 3", len(lines))
	}
	half := strings.Count(lines[1], "█")
	full := strings.Count(lines[2], "█")
	if full != 2*half || full == 0 {
		t.Fatalf("bars not proportional: %d vs %d", half, full)
	}
	if !strings.HasSuffix(lines[2], "100%") {
		t.Fatalf("value label missing: %q", lines[2])
	}
	if out := (Chart{Title: "X"}).Render(20, 3); !strings.Contains(out, "sem dados") {
		t.Fatalf("empty chart should say so: %q", out)
	}
}
