package toolbar

import (
	"github.com/iw2rmb/typesize/fontsize"
	"github.com/iw2rmb/typesize/internal/platform"
)

// handleGlobalKey is subscribed to the host keyboard stream at
// PriorityNormal. It fires only for primary-modifier+Shift with Alt
// released, and never intercepts: the event must stay visible to other
// handlers.
func (m Model) handleGlobalKey(ev KeyEvent) bool {
	if m.st.disabled {
		return false
	}
	if !ev.Shift || ev.Alt || !ev.Mod {
		return false
	}

	// Hosts differ on whether shifted punctuation arrives shifted.
	switch ev.Rune {
	case '<', ',':
		m.step(fontsize.Decrement)
	case '>', '.':
		m.step(fontsize.Increment)
	}
	return false
}

// IncreaseShortcutLabel is the help text for the global grow shortcut,
// e.g. "⌘+Shift+>" on macOS.
func IncreaseShortcutLabel() string {
	return platform.ShortcutLabel("Shift", ">")
}

// DecreaseShortcutLabel is the help text for the global shrink shortcut.
func DecreaseShortcutLabel() string {
	return platform.ShortcutLabel("Shift", "<")
}
