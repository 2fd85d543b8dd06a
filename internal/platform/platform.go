// Package platform resolves cosmetic, platform-dependent label text for
// keyboard shortcuts. Nothing here affects behavior.
package platform

import (
	"runtime"
	"strings"
)

// PrimaryModifierLabel names the platform primary modifier for help text.
func PrimaryModifierLabel() string {
	return primaryModifierLabel(runtime.GOOS)
}

func primaryModifierLabel(goos string) string {
	if goos == "darwin" {
		return "⌘"
	}
	return "Ctrl"
}

// ShortcutLabel joins the primary modifier with further key names, e.g.
// ShortcutLabel("Shift", ">") == "Ctrl+Shift+>".
func ShortcutLabel(keys ...string) string {
	parts := append([]string{PrimaryModifierLabel()}, keys...)
	return strings.Join(parts, "+")
}
