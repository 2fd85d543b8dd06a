package toolbar

// SelectionStyleMsg reports the effective font size of the host's current
// selection, in the "<n>px" form; empty means the selection has no uniform
// size. Hosts send it after every selection change and after each style
// apply settles. It always wins over uncommitted edits.
type SelectionStyleMsg struct {
	FontSize string
}
