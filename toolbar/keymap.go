package toolbar

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the control's key bindings while the field is focused.
//
// Increase/Decrease are the keyboard form of the stepper buttons. Commit
// and Cancel both confirm a dirty field; the host's global mod+shift+</>
// shortcuts are separate and arrive through Editor.RegisterKeyHandler.
type KeyMap struct {
	Increase, Decrease key.Binding
	Commit, Cancel     key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Increase: key.NewBinding(key.WithKeys("up"), key.WithHelp("↑", "larger")),
		Decrease: key.NewBinding(key.WithKeys("down"), key.WithHelp("↓", "smaller")),
		Commit:   key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "apply size")),
		Cancel:   key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "apply size")),
	}
}

func keyMapOrDefault(km KeyMap) KeyMap {
	if len(km.Increase.Keys()) == 0 && len(km.Decrease.Keys()) == 0 &&
		len(km.Commit.Keys()) == 0 && len(km.Cancel.Keys()) == 0 {
		return DefaultKeyMap()
	}
	return km
}
