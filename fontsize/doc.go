// Package fontsize implements the pure font-size value domain for Typesize.
//
// Sizes are pixel values constrained to [Min, Max]. The stepping tables are
// non-uniform so that one step stays roughly proportional to the current
// size. Everything here is deterministic and side-effect free.
package fontsize
