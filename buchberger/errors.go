// Package buchberger: sentinel error set. Overflow from the checked layer
// and divisibility violations from the monomial layer pass through wrapped,
// never translated.

package buchberger

import "errors"

var (
	// ErrZeroMember indicates a zero polynomial reached a reduction or
	// S-polynomial operand position. Well-formed inputs never contain the
	// zero polynomial; this is a precondition violation at the call site.
	ErrZeroMember = errors.New("buchberger: zero polynomial in operand set")

	// ErrRoundLimit indicates the completion exceeded the round budget
	// installed with WithMaxRounds.
	ErrRoundLimit = errors.New("buchberger: round limit exceeded")
)
