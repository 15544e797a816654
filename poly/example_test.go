// Package poly_test provides runnable examples for building and combining
// polynomials.
package poly_test

import (
	"fmt"

	"github.com/Phibonoci/groebner/monomial"
	"github.com/Phibonoci/groebner/order"
	"github.com/Phibonoci/groebner/poly"
	"github.com/Phibonoci/groebner/rational"
)

// ExampleFromTerms builds x² + 2y under Lex and prints it leading-first.
func ExampleFromTerms() {
	// 1) Describe the monomials x² and y.
	x2, _ := monomial.New(2)
	y, _ := monomial.New(0, 1)

	// 2) Assemble the term list; duplicates would merge automatically.
	p, _ := poly.FromTerms[rational.Rational[int64], order.Lex](
		poly.Term[rational.Rational[int64]]{Monomial: x2, Coefficient: rational.New[int64](1)},
		poly.Term[rational.Rational[int64]]{Monomial: y, Coefficient: rational.New[int64](2)},
	)

	fmt.Println(p)
	// Output: x_0^2 + 2 * x_1
}

// ExampleReorder converts a polynomial between two monomial orders; the
// term set is unchanged but the leading term moves.
func ExampleReorder() {
	x6, _ := monomial.New(6)
	mixed, _ := monomial.New(1, 2, 4)

	lex, _ := poly.FromTerms[rational.Rational[int64], order.Lex](
		poly.Term[rational.Rational[int64]]{Monomial: x6, Coefficient: rational.New[int64](1)},
		poly.Term[rational.Rational[int64]]{Monomial: mixed, Coefficient: rational.New[int64](1)},
	)
	grlex := poly.Reorder[rational.Rational[int64], order.Lex, order.GrLex](lex)

	fmt.Println(lex)
	fmt.Println(grlex)
	// Output:
	// x_0^6 + x_0 * x_1^2 * x_2^4
	// x_0 * x_1^2 * x_2^4 + x_0^6
}
