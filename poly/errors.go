// Package poly: sentinel error set. The errors public operations raise
// themselves are these sentinels (possibly wrapped with context via %w);
// errors from the coefficient field, such as overflow, pass through
// wrapped. Tests match them with errors.Is. Panics are reserved for
// programmer errors: an empty WithVariableNames list and the debug
// invariant check.

package poly

import "errors"

var (
	// ErrZeroPolynomial indicates leading-term access on the zero
	// polynomial. Callers must check IsZero first.
	ErrZeroPolynomial = errors.New("poly: zero polynomial has no leading term")

	// ErrIndexOutOfRange indicates a term or set index outside [0, Len).
	ErrIndexOutOfRange = errors.New("poly: index out of range")
)
