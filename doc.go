// Package groebner is an exact symbolic-algebra engine for computing
// Gröbner bases of polynomial ideals over the rationals.
//
// 🚀 What is groebner?
//
//	A pure-Go library that brings together:
//		• Checked integers: overflow-predicated signed arithmetic, gcd & lcm
//		• Rationals: exact ℚ-values, reduced to lowest terms, positive denominator
//		• Monomials: shrunk exponent vectors with full divisibility algebra
//		• Orders: Lex, GrLex and GrevLex admissible comparators, plus RevLex
//		  (exposed, but not a well-order)
//		• Polynomials: sparse ordered term maps over any pluggable field
//		• Buchberger: S-polynomials, normal-form reduction, basis completion
//		• Cyclic-n: the classical benchmark ideal generator
//
// ✨ Why choose groebner?
//
//   - Exact by construction – every coefficient is a reduced rational,
//     so equality with zero is always decidable
//   - Fail-loud arithmetic – overflow is detected before it happens and
//     surfaced as an error carrying the offending operation and operands
//   - Deterministic – polynomial and set iteration orders are stable
//     across runs, so bases are reproducible term for term
//   - Statically ordered – the monomial order is a type parameter, so
//     polynomials under different orders can never be mixed by accident
//
// Under the hood, everything is organized into focused subpackages:
//
//	checked/    — overflow-predicated arithmetic over signed machine integers
//	rational/   — exact rational numbers over checked integers
//	monomial/   — exponent vectors, multiplication, division, lcm
//	order/      — the four monomial order comparators (three admissible)
//	poly/       — sparse polynomials and deterministic polynomial sets
//	buchberger/ — reduction kernel and Buchberger's completion procedure
//	cyclic/     — cyclic-n benchmark ideal construction
//	cmd/        — the groebner CLI (cyclic benchmarks, YAML ideals)
//
// Quick taste, the cyclic-3 ideal under Lex:
//
//	S, _ := cyclic.BuildCycleSet[rational.Rational[int64], order.Lex](3)
//	_ = buchberger.Buchberger(S)
//	// S now holds {x_0 + x_1 + x_2, x_1^2 + x_1*x_2 + x_2^2, x_2^3 - 1}
//
//	go get github.com/Phibonoci/groebner
package groebner
