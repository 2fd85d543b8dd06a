package toolbar

// Config configures the font-size control.
type Config struct {
	// Editor is the host handle. A nil Editor leaves the control usable for
	// display and typing but turns every apply into a no-op and skips
	// shortcut registration.
	Editor Editor

	// SelectionFontSize seeds the field from the host's current selection,
	// in the "<n>px" boundary form. Empty means no uniform size.
	SelectionFontSize string

	// Disabled starts the control inert; see Model.SetDisabled.
	Disabled bool

	KeyMap KeyMap // zero value falls back to DefaultKeyMap
	Style  Style  // zero value renders unstyled
}
