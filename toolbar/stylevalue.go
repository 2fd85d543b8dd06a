package toolbar

import "github.com/iw2rmb/typesize/fontsize"

// PropertyFontSize is the style key the control patches on the selection.
const PropertyFontSize = "font-size"

// StyleValue is the value side of a selection style patch: either a literal
// CSS value, or a function deriving the next value from whatever the host
// reports as the previous one at apply time. The host resolves it with
// Resolve; the control never needs to read the live selection itself.
type StyleValue struct {
	literal string
	derive  func(prev string) string
}

// Literal returns a StyleValue that applies v verbatim.
func Literal(v string) StyleValue {
	return StyleValue{literal: v}
}

// Derived returns a StyleValue the host resolves by calling fn with the
// previous value of the property ("" when unknown).
func Derived(fn func(prev string) string) StyleValue {
	return StyleValue{derive: fn}
}

// IsDerived reports whether Resolve depends on the previous value.
func (v StyleValue) IsDerived() bool { return v.derive != nil }

// Resolve produces the value to apply given the property's previous value.
func (v StyleValue) Resolve(prev string) string {
	if v.derive != nil {
		return v.derive(prev)
	}
	return v.literal
}

// nextSizeValue builds the derived form used when the control has no typed
// value to step from: the host supplies the selection's previous size and
// gets back the next one. A missing or malformed previous value steps from
// the default size.
func nextSizeValue(dir fontsize.Direction) StyleValue {
	return Derived(func(prev string) string {
		cur, ok := fontsize.Parse(prev)
		if !ok {
			cur = fontsize.Default
		}
		return fontsize.Format(fontsize.Next(cur, dir))
	})
}
