package platform

import (
	"strings"
	"testing"
)

func TestPrimaryModifierLabel_PerGOOS(t *testing.T) {
	cases := []struct {
		goos string
		want string
	}{
		{goos: "darwin", want: "⌘"},
		{goos: "linux", want: "Ctrl"},
		{goos: "windows", want: "Ctrl"},
	}

	for _, tc := range cases {
		if got := primaryModifierLabel(tc.goos); got != tc.want {
			t.Fatalf("primaryModifierLabel(%q): got %q, want %q", tc.goos, got, tc.want)
		}
	}
}

func TestShortcutLabel_JoinsWithPlus(t *testing.T) {
	got := ShortcutLabel("Shift", ">")
	if !strings.HasSuffix(got, "+Shift+>") {
		t.Fatalf("ShortcutLabel: got %q, want suffix %q", got, "+Shift+>")
	}
	if strings.HasPrefix(got, "+") {
		t.Fatalf("ShortcutLabel: got %q, want a leading modifier label", got)
	}
}
