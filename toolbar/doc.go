// Package toolbar provides a Bubble Tea font-size control for rich-text
// editor hosts.
//
// The control owns only its transient input state: the raw text the user
// has typed and a dirty flag. Everything durable — the document, the
// selection, the effective font size — belongs to the host editor, reached
// through the Editor interface. Size changes are requested with a
// StyleValue, either an explicit "<n>px" literal or a deriving function the
// host resolves against the selection's previous value at apply time.
package toolbar
