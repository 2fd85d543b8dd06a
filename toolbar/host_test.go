package toolbar

// fakeEditor is an in-memory host: it resolves StyleValues against a stored
// previous size, records resolved applies, and fans dispatched KeyEvents
// out to registered handlers.
type fakeEditor struct {
	editable    bool
	hasSel      bool
	prevSize    string
	applied     []string
	lastValue   StyleValue
	handlers    []KeyHandler
	unregisters int
}

func newFakeEditor(prevSize string) *fakeEditor {
	return &fakeEditor{editable: true, hasSel: true, prevSize: prevSize}
}

func (e *fakeEditor) Update(fn func()) { fn() }
func (e *fakeEditor) Editable() bool   { return e.editable }

func (e *fakeEditor) Selection() (Selection, bool) {
	if !e.hasSel {
		return nil, false
	}
	return struct{}{}, true
}

func (e *fakeEditor) PatchSelectionStyle(_ Selection, props map[string]StyleValue) {
	v, ok := props[PropertyFontSize]
	if !ok {
		return
	}
	e.lastValue = v
	resolved := v.Resolve(e.prevSize)
	e.prevSize = resolved
	e.applied = append(e.applied, resolved)
}

func (e *fakeEditor) RegisterKeyHandler(_ Priority, h KeyHandler) (unregister func()) {
	e.handlers = append(e.handlers, h)
	return func() { e.unregisters++ }
}

func (e *fakeEditor) dispatch(ev KeyEvent) bool {
	intercepted := false
	for _, h := range e.handlers {
		if h(ev) {
			intercepted = true
		}
	}
	return intercepted
}
