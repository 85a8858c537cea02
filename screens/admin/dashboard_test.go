package admin

import (
	"strings"
	"testing"

	"github.com/bhiohub/bhiohub/core"
)

func TestDashboardShowAllTalents(t *testing.T) {
	nav := &fakeNav{active: TabDashboard}
	d := NewDashboard(nav)
	if cmd := d.Update(key("t")); cmd != nil {
		t.Fatalf("expected no toast on valid navigation")
	}
	if nav.active != TabTalents {
		t.Fatalf("expected talents, got %q", nav.active)
	}
	if !strings.Contains(d.View(100, 30), ShowAllTalentsLabel) {
		t.Fatalf("hero action label missing from view")
	}
}

func TestDashboardQuickAccessNavigates(t *testing.T) {
	nav := &fakeNav{active: TabDashboard}
	d := NewDashboard(nav)
	d.Update(key("down"))
	d.Update(key("down"))
	d.Update(key("enter"))
	if got := nav.calls[len(nav.calls)-1]; got != TabDashboard {
		t.Fatalf("Análises should target dashboard, got %q", got)
	}
	d.Update(key("up"))
	d.Update(key("enter"))
	if nav.active != TabTalents {
		t.Fatalf("Novas Inscrições should open talents, got %q", nav.active)
	}
	d.Update(key("a"))
	if nav.active != TabArticles {
		t.Fatalf("article highlight should open articles, got %q", nav.active)
	}
}

func TestDashboardWithoutNavigatorToasts(t *testing.T) {
	d := NewDashboard(nil)
	toast, ok := toastOf(d.Update(key("t")))
	if !ok || toast.Variant != core.ToastDestructive {
		t.Fatalf("expected destructive toast, got %#v", toast)
	}
}
