// Package rational implements exact rational numbers over checked signed
// integers.
//
// What
//
//   - Rational[I] is a value-typed fraction num/den kept in normal form:
//     den > 0, gcd(|num|, den) = 1, and the zero value is exactly 0/1.
//   - The five field operations plus negation and inversion, all returning
//     (Rational, error); the only failures are checked.ErrOverflow
//     propagated from the integer layer and ErrZeroDenominator.
//   - Numeric comparison over a common denominator computed via gcd, so the
//     cross-multiplications stay as small as possible.
//   - A structural, overflow-free total order (Cmp) used wherever a
//     deterministic canonical ordering is needed rather than a numeric one.
//
// Why
//
//	Polynomial reduction lives and dies by exact equality with zero. The
//	normal form is re-established eagerly after every operation, so IsZero
//	and Equal are O(1) structural checks — no lazy gcd, no drift.
//
// Complexity
//
//   - Field operations: O(log min(num, den)) for the gcd reduction
//   - IsZero, Equal, Cmp: O(1)
package rational
