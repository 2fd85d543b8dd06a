package fontsize

import (
	"regexp"
	"strconv"
)

// Bounds and defaults for selection font sizes, in pixels.
const (
	Min     = 8
	Max     = 72
	Default = 15

	// Unit is the suffix used at the host boundary ("15px").
	Unit = "px"
)

// sizeRE matches the serialized boundary form: decimal digits with an
// optional fraction, followed by the unit. No sign, no exponent.
var sizeRE = regexp.MustCompile(`^(\d+(?:\.\d+)?)` + Unit + `$`)

// Clamp restricts v to the closed range [Min, Max].
func Clamp(v float64) float64 {
	if v < Min {
		return Min
	}
	if v > Max {
		return Max
	}
	return v
}

// Format renders v in the boundary form, e.g. Format(17) == "17px".
// Integral values render without a fractional part.
func Format(v float64) string {
	return FormatNumber(v) + Unit
}

// FormatNumber renders v without the unit, for display in the input field.
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Parse reads the boundary form produced by Format. The second result is
// false for the empty string ("no uniform size") and for anything that is
// not an unsigned decimal followed by the unit.
func Parse(s string) (float64, bool) {
	m := sizeRE.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	v, err := strconv.ParseFloat(m[1], 64)
	if err != nil {
		return 0, false
	}
	return v, true
}
