// Package poly implements sparse multivariate polynomials over a pluggable
// field, ordered by a pluggable admissible monomial order, plus the
// deterministic polynomial sets the reduction kernel operates on.
//
// What
//
//   - Polynomial[F, O] is a sorted mapping monomial → nonzero coefficient.
//     The order O is a type parameter, so polynomials under different
//     orders are distinct types; Reorder converts between them.
//   - Field[F] is the coefficient contract: the six field operations,
//     identities, equality and a canonical total order. rational.Rational
//     is the reference implementation.
//   - Term-merging arithmetic (Add, Sub, Mul, Scale, Neg), leading-term
//     access, high-to-low iteration, structural equality and a text
//     formatter for diagnostics.
//   - Set[F, O] is a finite polynomial set ordered by a deterministic
//     total order on term sequences, with structural deduplication.
//
// Invariants
//
//   - No term carries a zero coefficient; "is zero" is "has no terms".
//   - Term keys are pairwise distinct monomials, kept sorted under O.
//   - Set elements are pairwise distinct, kept sorted under Compare.
//
// Determinism
//
//	Polynomial iteration runs leading to trailing under O; set iteration
//	follows the canonical comparison of term sequences. Both are stable
//	across runs, which the completion kernel relies on for reproducible
//	bases.
//
// Complexity (n, m = term counts)
//
//   - Add, Sub: O((n+m) log n) lookups, O(n+m) memory
//   - Mul: O(n·m·log(n·m))
//   - LeadingTerm, IsZero: O(1)
package poly
