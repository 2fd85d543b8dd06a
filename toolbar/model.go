package toolbar

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/typesize/fontsize"
)

// state is shared by every value copy of a Model so that the host's global
// shortcut handler and later Update copies observe one field.
type state struct {
	// text is the raw, unitless in-progress entry. It may be empty; once
	// committed it always parses as an unsigned number (keystroke
	// validation rejects everything else).
	text string

	// dirty is set by accepted keystrokes and cleared by commit or
	// external sync.
	dirty bool

	disabled bool
}

// Model is the font-size control. It is a Bubble Tea component: route
// tea.KeyMsg values to Update while the field is focused, and send a
// SelectionStyleMsg whenever the host's selection size changes.
type Model struct {
	cfg     Config
	st      *state
	focused bool

	unregister func()
}

// New builds the control and, when cfg.Editor is set, subscribes to the
// host's global keyboard stream. Pair with Close.
func New(cfg Config) Model {
	cfg.KeyMap = keyMapOrDefault(cfg.KeyMap)
	m := Model{
		cfg:     cfg,
		st:      &state{disabled: cfg.Disabled},
		focused: true,
	}
	m.st.text = fieldTextFor(cfg.SelectionFontSize)
	if cfg.Editor != nil {
		m.unregister = cfg.Editor.RegisterKeyHandler(PriorityNormal, m.handleGlobalKey)
	}
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// Close releases the host keyboard subscription. Safe on a control built
// without an Editor.
func (m *Model) Close() {
	if m.unregister != nil {
		m.unregister()
		m.unregister = nil
	}
}

func (m Model) Focus() Model {
	m.focused = true
	return m
}

// Blur drops focus and commits a dirty, non-empty field.
func (m Model) Blur() Model {
	m.focused = false
	if m.st.dirty && m.st.text != "" {
		m.commitInput()
	}
	return m
}

func (m Model) Focused() bool  { return m.focused }
func (m Model) Value() string  { return m.st.text }
func (m Model) Dirty() bool    { return m.st.dirty }
func (m Model) Disabled() bool { return m.st.disabled }

func (m Model) SetDisabled(v bool) Model {
	m.st.disabled = v
	return m
}

// Increment is the programmatic form of the grow button; hosts that render
// their own buttons call it directly.
func (m Model) Increment() Model {
	if !m.st.disabled {
		m.step(fontsize.Increment)
	}
	return m
}

// Decrement is the programmatic form of the shrink button.
func (m Model) Decrement() Model {
	if !m.st.disabled {
		m.step(fontsize.Decrement)
	}
	return m
}

// SetSelectionFontSize mirrors the host's reported selection size into the
// field, in the "<n>px" boundary form. It overrides any uncommitted edits
// unconditionally: the selection changed under the control, so the old
// entry no longer refers to anything.
func (m Model) SetSelectionFontSize(s string) Model {
	m.st.text = fieldTextFor(s)
	m.st.dirty = false
	return m
}

func fieldTextFor(s string) string {
	v, ok := fontsize.Parse(s)
	if !ok {
		return ""
	}
	return fontsize.FormatNumber(v)
}

// step carries button-press semantics: a non-empty field steps from its own
// value and applies the literal result; an empty field applies the derived
// form so the host steps from whatever the live selection reports.
func (m Model) step(dir fontsize.Direction) {
	if m.st.text != "" {
		cur, err := strconv.ParseFloat(m.st.text, 64)
		if err != nil {
			return
		}
		m.apply(Literal(fontsize.Format(fontsize.Next(cur, dir))))
		return
	}
	m.apply(nextSizeValue(dir))
}

// commitInput confirms the entry: parse, clamp to [Min, Max], write the
// clamped number back into the field, apply it, clear dirty. An empty field
// parses as zero and therefore commits Min.
func (m Model) commitInput() {
	v, _ := strconv.ParseFloat(m.st.text, 64)
	v = fontsize.Clamp(v)
	m.st.text = fontsize.FormatNumber(v)
	m.st.dirty = false
	m.apply(Literal(fontsize.Format(v)))
}

// apply routes one style patch through the host. The whole path is skipped
// when there is no editor or the editor is not editable.
func (m Model) apply(v StyleValue) {
	ed := m.cfg.Editor
	if ed == nil || !ed.Editable() {
		return
	}
	ed.Update(func() {
		sel, ok := ed.Selection()
		if !ok {
			return
		}
		ed.PatchSelectionStyle(sel, map[string]StyleValue{PropertyFontSize: v})
	})
}
