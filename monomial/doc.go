// Package monomial implements power products of ring variables as shrunk
// exponent vectors.
//
// What
//
//   - A Monomial stores exponents e₀…e_{k−1} where k is the smallest length
//     covering every nonzero exponent (the shrink invariant: the vector is
//     either empty or ends in a positive exponent). Any variable beyond the
//     stored length implicitly has exponent 0, so two monomials with the
//     same nonzero prefix are equal regardless of trailing zeros.
//   - Mul adds exponents component-wise (checked), Div subtracts and fails
//     with ErrNotDivisible when any exponent would go negative,
//     IsDivisibleBy is the matching predicate, Lcm takes component maxima,
//     TotalDegree sums the exponents through checked addition.
//   - Compare is the plain lexicographic comparison of exponent vectors
//     from variable 0 upward. It is NOT an admissible monomial order by
//     itself — it serves as the deterministic tiebreaker inside the order
//     package and as the canonical set ordering.
//
// Complexity
//
//	All operations are O(k) in the stored vector length.
package monomial
