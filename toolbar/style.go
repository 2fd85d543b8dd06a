package toolbar

import "github.com/charmbracelet/lipgloss"

// Style controls the control's rendering.
type Style struct {
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style

	Input      lipgloss.Style
	InputDirty lipgloss.Style
	Unit       lipgloss.Style
}

func DefaultStyle() Style {
	button := lipgloss.NewStyle().Foreground(lipgloss.Color("250")).Bold(true)
	return Style{
		Button:         button,
		ButtonDisabled: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Input:          lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		InputDirty:     lipgloss.NewStyle().Foreground(lipgloss.Color("214")),
		Unit:           lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
