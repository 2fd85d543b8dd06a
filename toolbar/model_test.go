package toolbar

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestNew_SeedsFieldFromSelection(t *testing.T) {
	cases := []struct {
		selection string
		want      string
	}{
		{selection: "15px", want: "15"},
		{selection: "13.5px", want: "13.5"},
		{selection: "", want: ""},
		{selection: "garbage", want: ""},
	}

	for _, tc := range cases {
		m := New(Config{SelectionFontSize: tc.selection})
		if got := m.Value(); got != tc.want {
			t.Fatalf("New with selection %q: value got %q, want %q", tc.selection, got, tc.want)
		}
		if m.Dirty() {
			t.Fatalf("New with selection %q: dirty got true, want false", tc.selection)
		}
	}
}

func TestNew_DefaultsKeyMap(t *testing.T) {
	ed := newFakeEditor("15px")
	m := New(Config{Editor: ed, SelectionFontSize: "15px"})

	// The zero-value KeyMap must still step on the default binding.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	if len(ed.applied) != 1 || ed.applied[0] != "17px" {
		t.Fatalf("applied with default keymap: got %v, want [17px]", ed.applied)
	}
}

func TestFocusBlur(t *testing.T) {
	m := New(Config{SelectionFontSize: "15px"})
	if !m.Focused() {
		t.Fatalf("new control is not focused")
	}

	m = m.Blur()
	if m.Focused() {
		t.Fatalf("focused after blur: got true, want false")
	}

	// Unfocused controls ignore keystrokes.
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("9")})
	if got := m.Value(); got != "15" {
		t.Fatalf("value after unfocused keystroke: got %q, want %q", got, "15")
	}

	m = m.Focus()
	if !m.Focused() {
		t.Fatalf("focused after Focus: got false, want true")
	}
}

func TestSetSelectionFontSize_SharedAcrossCopies(t *testing.T) {
	m := New(Config{SelectionFontSize: "15px"})
	copy1 := m

	_ = m.SetSelectionFontSize("24px")
	if got := copy1.Value(); got != "24" {
		t.Fatalf("value through earlier copy: got %q, want %q", got, "24")
	}
}
