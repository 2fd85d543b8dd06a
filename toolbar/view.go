package toolbar

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/typesize/fontsize"
)

// View renders the control as "[-] <size>px [+]". The field is right
// aligned to three cells so stepping does not shift the buttons around.
func (m Model) View() string {
	st := m.cfg.Style

	btn := st.Button
	if m.st.disabled {
		btn = st.ButtonDisabled
	}
	in := st.Input
	if m.st.dirty {
		in = st.InputDirty
	}

	field := in.Render(fmt.Sprintf("%3s", m.st.text))
	return lipgloss.JoinHorizontal(lipgloss.Center,
		btn.Render("[-]"), " ",
		field, st.Unit.Render(fontsize.Unit), " ",
		btn.Render("[+]"),
	)
}
