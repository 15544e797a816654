// Package buchberger implements the reduction kernel and Buchberger's
// completion procedure for Gröbner bases.
//
// What
//
//   - SPolynomial: the combination of two polynomials that cancels their
//     leading terms via the lcm of their leading monomials.
//   - ElementaryReduction: one division step of a polynomial by a reductor;
//     ChainReduce, ReduceOverSet and ChainReduceOverSet iterate it, the
//     last computing a normal form (no remaining term divisible by any
//     leading monomial of the set). NormalForm is the non-mutating wrapper.
//   - InterReduce and Normalize turn a basis into its reduced, monic form.
//   - Buchberger completes a generating set into a reduced Gröbner basis:
//     every S-polynomial of the result reduces to zero over it.
//   - Contains decides ideal membership against a completed basis, and
//     IsGroebnerBasis verifies the defining property directly.
//
// Reduction policy
//
//	ElementaryReduction scans the reducible polynomial from its leading
//	term downward and divides the highest eligible term first. Any scan
//	policy terminates; this one is fixed so intermediate bases are
//	identical run to run.
//
// Determinism
//
//	Pair enumeration follows the canonical iteration order of poly.Set and
//	reduction follows the fixed scan policy, so the completed basis is
//	reproducible term for term.
//
// Termination
//
//	Each round that discovers a nonzero normal form strictly grows the
//	ideal of leading monomials, which cannot grow forever in a Noetherian
//	ring, so the completion terminates for every admissible order. The
//	only recoverable failure is coefficient or exponent overflow, which is
//	surfaced unchanged from the checked layer; WithMaxRounds offers an
//	optional diagnostics guard.
//
// Complexity
//
//	Worst-case doubly exponential in the number of variables, as for any
//	Buchberger variant; the coprime-leading-monomial criterion prunes the
//	pairs whose S-polynomials are known to vanish.
package buchberger
