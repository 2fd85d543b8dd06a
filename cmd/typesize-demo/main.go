package main

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/iw2rmb/typesize/fontsize"
	"github.com/iw2rmb/typesize/toolbar"
)

// hostEditor is a minimal in-process host: one always-present selection
// whose only style is its font size. It resolves StyleValues against the
// stored size, which exercises both the literal and the derived path.
type hostEditor struct {
	size     string
	handlers []toolbar.KeyHandler
}

func (h *hostEditor) Update(fn func()) { fn() }
func (h *hostEditor) Editable() bool   { return true }

func (h *hostEditor) Selection() (toolbar.Selection, bool) { return struct{}{}, true }

func (h *hostEditor) PatchSelectionStyle(_ toolbar.Selection, props map[string]toolbar.StyleValue) {
	if v, ok := props[toolbar.PropertyFontSize]; ok {
		h.size = v.Resolve(h.size)
	}
}

func (h *hostEditor) RegisterKeyHandler(_ toolbar.Priority, fn toolbar.KeyHandler) (unregister func()) {
	h.handlers = append(h.handlers, fn)
	return func() { h.handlers = nil }
}

func (h *hostEditor) dispatch(ev toolbar.KeyEvent) {
	for _, fn := range h.handlers {
		if fn(ev) {
			return
		}
	}
}

type model struct {
	host *hostEditor
	ctl  toolbar.Model
}

func newModel() model {
	host := &hostEditor{size: fontsize.Format(fontsize.Default)}
	ctl := toolbar.New(toolbar.Config{
		Editor:            host,
		SelectionFontSize: host.size,
		Style:             toolbar.DefaultStyle(),
	})
	return model{host: host, ctl: ctl}
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			m.ctl.Close()
			return m, tea.Quit

		// The terminal has no Cmd/Ctrl+Shift+punctuation; alt stands in for
		// the primary modifier and is resolved here, on the host side.
		case "alt+>":
			m.host.dispatch(toolbar.KeyEvent{Rune: '>', Shift: true, Mod: true})
			return m.syncSelection(), nil
		case "alt+<":
			m.host.dispatch(toolbar.KeyEvent{Rune: '<', Shift: true, Mod: true})
			return m.syncSelection(), nil
		}
	}

	before := m.host.size
	var cmd tea.Cmd
	m.ctl, cmd = m.ctl.Update(msg)
	if m.host.size != before {
		return m.syncSelection(), cmd
	}
	return m, cmd
}

// syncSelection plays the host's notification back to the control, the way
// a real editor reports the selection's effective size after an apply.
func (m model) syncSelection() model {
	m.ctl, _ = m.ctl.Update(toolbar.SelectionStyleMsg{FontSize: m.host.size})
	return m
}

func (m model) View() string {
	size, ok := fontsize.Parse(m.host.size)
	if !ok {
		size = fontsize.Default
	}

	bar := lipgloss.NewStyle().
		Foreground(lipgloss.Color("63")).
		Render(strings.Repeat("█", int(size)))

	help := fmt.Sprintf(
		"type a size, enter applies · ↑/↓ step · alt+> / alt+< (%s / %s in a GUI host) · ctrl+c quits",
		toolbar.IncreaseShortcutLabel(), toolbar.DecreaseShortcutLabel(),
	)

	return strings.Join([]string{
		m.ctl.View(),
		"",
		"selection: " + m.host.size,
		bar,
		"",
		lipgloss.NewStyle().Foreground(lipgloss.Color("240")).Render(help),
	}, "\n")
}

func main() {
	if _, err := tea.NewProgram(newModel()).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "typesize-demo:", err)
		os.Exit(1)
	}
}
