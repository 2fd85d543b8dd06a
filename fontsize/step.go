package fontsize

// Direction selects which way Next moves.
//
// The zero value requests no movement: Next returns its input unchanged.
type Direction uint8

const (
	DirectionNone Direction = iota
	Increment
	Decrement
)

// Next returns the size one step from current in the given direction.
//
// The tables are evaluated top to bottom, first match wins. Step width
// grows with magnitude, and the boundary clauses make the function
// idempotent at Min and Max. A current value outside [Min, Max] is
// snapped to the nearest bound on the first step toward range; note the
// explicit "> Max" guard exists only on the decrement side, while
// increment relies on its "< Min" floor clause.
//
// Next is total over all float64 inputs and has no side effects.
func Next(current float64, dir Direction) float64 {
	switch dir {
	case Increment:
		switch {
		case current < Min:
			return Min
		case current < 12:
			return current + 1
		case current < 20:
			return current + 2
		case current < 36:
			return current + 4
		case current <= 60:
			return current + 12
		default:
			return Max
		}
	case Decrement:
		switch {
		case current > Max:
			return Max
		case current >= 48:
			return current - 12
		case current >= 24:
			return current - 4
		case current >= 14:
			return current - 2
		case current >= 9:
			return current - 1
		default:
			return Min
		}
	}
	return current
}
