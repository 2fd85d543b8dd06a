package toolbar

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/typesize/fontsize"
)

// rejectedRunes never enter the field: they would introduce the sign and
// exponent forms a numeric parse accepts but the field must not hold.
const rejectedRunes = "eE+-"

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	switch msg := msg.(type) {
	case SelectionStyleMsg:
		return m.SetSelectionFontSize(msg.FontSize), nil
	case tea.KeyMsg:
		return m.updateKey(msg)
	}
	return m, nil
}

func (m Model) updateKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if !m.focused || m.st.disabled {
		return m, nil
	}

	// Tab is focus traversal; it passes through with no state change.
	if msg.Type == tea.KeyTab {
		return m, nil
	}

	km := m.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Increase):
		m.step(fontsize.Increment)
	case key.Matches(msg, km.Decrease):
		m.step(fontsize.Decrement)

	case key.Matches(msg, km.Commit), key.Matches(msg, km.Cancel):
		if m.st.dirty {
			m.commitInput()
		}

	case msg.Type == tea.KeyBackspace:
		if s := m.st.text; s != "" {
			m.st.text = s[:len(s)-1]
			m.st.dirty = true
		}

	case msg.Type == tea.KeyRunes && !msg.Alt:
		m.typeRunes(msg.Runes)
	}

	return m, nil
}

// typeRunes applies per-keystroke validation: a rejected rune, or one whose
// resulting field text is not a number, suppresses the keystroke and blanks
// the field.
func (m Model) typeRunes(runes []rune) {
	for _, r := range runes {
		if strings.ContainsRune(rejectedRunes, r) {
			m.st.text = ""
			return
		}
		candidate := m.st.text + string(r)
		if _, err := strconv.ParseFloat(candidate, 64); err != nil {
			m.st.text = ""
			return
		}
		m.st.text = candidate
		m.st.dirty = true
	}
}
