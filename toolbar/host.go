package toolbar

// Selection is an opaque handle to the host's active selection. The control
// never inspects it; it only passes it back to PatchSelectionStyle.
type Selection interface{}

// Priority orders handlers on the host's global keyboard stream. Higher
// priorities run first.
type Priority uint8

const (
	PriorityLow Priority = iota
	PriorityNormal
	PriorityHigh
	PriorityCritical
)

// KeyEvent is one keystroke from the host's global keyboard stream with
// modifier state already resolved by the host. Mod is the platform primary
// modifier (Cmd on macOS, Ctrl elsewhere).
type KeyEvent struct {
	Rune  rune
	Shift bool
	Alt   bool
	Mod   bool
}

// KeyHandler reacts to a global KeyEvent and reports whether the event was
// intercepted. Handlers that return false leave the event available to
// lower-priority handlers.
type KeyHandler func(ev KeyEvent) bool

// Editor is the host-side handle the control operates through.
//
// Update runs fn inside one editor transaction; the control issues all
// selection mutations from within it. Editable gates the whole apply path:
// when it reports false the control degrades to a no-op. The host alone
// knows the selection's previous style values, which is what makes the
// derived form of StyleValue work.
type Editor interface {
	Update(fn func())
	Editable() bool
	Selection() (Selection, bool)
	PatchSelectionStyle(sel Selection, props map[string]StyleValue)

	// RegisterKeyHandler subscribes h to the global keyboard stream at the
	// given priority and returns the matching unsubscribe.
	RegisterKeyHandler(p Priority, h KeyHandler) (unregister func())
}
