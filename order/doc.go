// Package order defines the admissible monomial orders the polynomial
// layer is parameterised over.
//
// What
//
//   - Order is the comparator contract: a strict total order Less(a, b) on
//     monomials, compatible with multiplication and with the constant
//     monomial 1 as its minimum.
//   - Four stateless comparator types implement it:
//     Lex       — plain lexicographic, variable 0 most significant.
//     RevLex    — the reverse of Lex. Exposed for completeness; it is NOT
//     a well-order on monomials and must not drive a reduction.
//     GrLex     — total degree first, ties broken by Lex.
//     GrevLex   — total degree first, ties broken by the conventional
//     reverse-lexicographic rule: at the last variable where
//     the exponents differ, the monomial with the smaller
//     exponent is the larger one.
//
// Why
//
//	A Gröbner basis is only defined relative to a monomial order, and the
//	entire reduction kernel must honour one order exactly. The order is a
//	type parameter of poly.Polynomial, so polynomials under different
//	orders are distinct types and cannot be combined by accident.
//
// Determinism
//
//	Comparators are pure and stateless; graded comparisons accumulate
//	exponent sums in 128 bits, so they cannot wrap for any exponent
//	vector, even one whose total degree exceeds int64.
package order
