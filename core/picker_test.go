package core

import "testing"

func pickerItems() []PickerItem {
	return []PickerItem{
		{ID: "dashboard", Label: "Dashboard"},
		{ID: "talents", Label: "Talentos"},
		{ID: "geolocation", Label: "Geolocalização"},
		{ID: "articles", Label: "Artigos"},
	}
}

func TestPickerFuzzyFilterRanksPrefixFirst(t *testing.T) {
	p := NewPicker(pickerItems())
	for _, k := range []string{"t", "a"} {
		p.HandleKey(k)
	}
	items := p.Items()
	if len(items) == 0 || items[0].ID != "talents" {
		t.Fatalf("expected talents first for %q, got %#v", p.Query(), items)
	}
	p.HandleKey("backspace")
	p.HandleKey("backspace")
	if len(p.Items()) != 4 {
		t.Fatalf("clearing the query should restore all items")
	}
}

func TestPickerMatchesAccentedLabels(t *testing.T) {
	p := NewPicker(pickerItems())
	p.SetQuery("ção")
	items := p.Items()
	if len(items) != 1 || items[0].ID != "geolocation" {
		t.Fatalf("expected geolocation, got %#v", items)
	}
	p.HandleKey("backspace")
	if p.Query() != "çã" {
		t.Fatalf("backspace should drop one rune, got %q", p.Query())
	}
}

func TestPickerCursorAndSelection(t *testing.T) {
	p := NewPicker(pickerItems())
	if action, _ := p.HandleKey("up"); action != PickerNone {
		t.Fatalf("up at top should be a no-op")
	}
	p.HandleKey("down")
	action, item := p.HandleKey("enter")
	if action != PickerSelected || item.ID != "talents" {
		t.Fatalf("expected talents selected, got %v %#v", action, item)
	}
	p.SetQuery("zzz")
	if action, _ := p.HandleKey("enter"); action != PickerNone {
		t.Fatalf("enter with no matches should do nothing")
	}
	if action, _ := p.HandleKey("esc"); action != PickerCancelled {
		t.Fatalf("esc should cancel")
	}
}

func TestFuzzyScore(t *testing.T) {
	if ok, _ := fuzzyScore("Artigos", "rtg"); !ok {
		t.Fatalf("subsequence should match")
	}
	if ok, _ := fuzzyScore("Artigos", "gz"); ok {
		t.Fatalf("missing rune should not match")
	}
	_, exact := fuzzyScore("Perfil", "perfil")
	_, partial := fuzzyScore("Perfil", "perf")
	if exact <= partial {
		t.Fatalf("exact match should outrank a prefix: %d vs %d", exact, partial)
	}
}
