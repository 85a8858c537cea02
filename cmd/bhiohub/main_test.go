package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestTabsCommandListsBothShells(t *testing.T) {
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"tabs"})
	if err := root.Execute(); err != nil {
		t.Fatalf("tabs: %v", err)
	}
	got := out.String()
	for _, want := range []string{"admin (default dashboard)", "user (default home)", "geolocation", "connections"} {
		if !strings.Contains(got, want) {
			t.Fatalf("tabs output missing %q:\n%s", want, got)
		}
	}
}

func TestShellCommandsRejectArgs(t *testing.T) {
	root := newRootCmd()
	root.SetOut(&bytes.Buffer{})
	root.SetErr(&bytes.Buffer{})
	root.SetArgs([]string{"admin", "extra"})
	if err := root.Execute(); err == nil {
		t.Fatalf("expected error for unexpected argument")
	}
}
