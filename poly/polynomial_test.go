// Package poly_test validates polynomial construction, term-merging
// arithmetic, leading-term access and order conversion over the rationals.
package poly_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Phibonoci/groebner/monomial"
	"github.com/Phibonoci/groebner/order"
	"github.com/Phibonoci/groebner/poly"
	"github.com/Phibonoci/groebner/rational"
)

// Rat is the reference coefficient field of the test suite.
type Rat = rational.Rational[int64]

func mono(t *testing.T, degrees ...monomial.Degree) monomial.Monomial {
	t.Helper()
	m, err := monomial.New(degrees...)
	require.NoError(t, err)

	return m
}

func term(t *testing.T, c int64, degrees ...monomial.Degree) poly.Term[Rat] {
	t.Helper()

	return poly.Term[Rat]{Monomial: mono(t, degrees...), Coefficient: rational.New(c)}
}

// lexPoly builds a polynomial under Lex from (coefficient, exponents) terms.
func lexPoly(t *testing.T, terms ...poly.Term[Rat]) poly.Polynomial[Rat, order.Lex] {
	t.Helper()
	p, err := poly.FromTerms[Rat, order.Lex](terms...)
	require.NoError(t, err)

	return p
}

func TestZeroAndConstants(t *testing.T) {
	zero := poly.Zero[Rat, order.Lex]()
	require.True(t, zero.IsZero())
	require.Equal(t, 0, zero.Len())

	_, err := zero.LeadingTerm()
	require.ErrorIs(t, err, poly.ErrZeroPolynomial)

	c := poly.FromConstant[Rat, order.Lex](rational.New[int64](5))
	require.Equal(t, 1, c.Len())
	lt, err := c.LeadingTerm()
	require.NoError(t, err)
	require.True(t, lt.Monomial.IsConstant())

	// A zero constant collapses to the zero polynomial.
	require.True(t, poly.FromConstant[Rat, order.Lex](rational.New[int64](0)).IsZero())
}

func TestFromMonomial(t *testing.T) {
	p := poly.FromMonomial[Rat, order.Lex](mono(t, 1, 2))
	require.Equal(t, 1, p.Len())

	lt, err := p.LeadingTerm()
	require.NoError(t, err)
	require.True(t, lt.Coefficient.Equal(rational.New[int64](1)))
}

func TestFromTerms_MergesAndDropsZeros(t *testing.T) {
	// 2x + 3x - 5x cancels entirely; x*y survives.
	p := lexPoly(t,
		term(t, 2, 1),
		term(t, 3, 1),
		term(t, -5, 1),
		term(t, 1, 1, 1),
	)
	require.Equal(t, 1, p.Len())
	p.CheckInvariants()

	lt, err := p.LeadingTerm()
	require.NoError(t, err)
	require.True(t, lt.Monomial.Equal(mono(t, 1, 1)))
}

func TestAddSub(t *testing.T) {
	p := lexPoly(t, term(t, 1, 2), term(t, 2, 0, 1))  // x² + 2y
	q := lexPoly(t, term(t, 3, 2), term(t, -2, 0, 1)) // 3x² - 2y

	sum, err := p.Add(q)
	require.NoError(t, err)
	require.True(t, sum.Equal(lexPoly(t, term(t, 4, 2))))
	sum.CheckInvariants()

	diff, err := p.Sub(q)
	require.NoError(t, err)
	require.True(t, diff.Equal(lexPoly(t, term(t, -2, 2), term(t, 4, 0, 1))))

	// p - p = 0.
	diff, err = p.Sub(p)
	require.NoError(t, err)
	require.True(t, diff.IsZero())
}

func TestMul(t *testing.T) {
	// (x + y)(x - y) = x² - y².
	p := lexPoly(t, term(t, 1, 1), term(t, 1, 0, 1))
	q := lexPoly(t, term(t, 1, 1), term(t, -1, 0, 1))

	prod, err := p.Mul(q)
	require.NoError(t, err)
	require.True(t, prod.Equal(lexPoly(t, term(t, 1, 2), term(t, -1, 0, 2))))
	prod.CheckInvariants()

	// Multiplying by zero annihilates.
	prod, err = p.Mul(poly.Zero[Rat, order.Lex]())
	require.NoError(t, err)
	require.True(t, prod.IsZero())
}

func TestMulTermAndScale(t *testing.T) {
	p := lexPoly(t, term(t, 2, 1), term(t, 3)) // 2x + 3

	scaled, err := p.MulTerm(term(t, 2, 0, 1)) // * 2y
	require.NoError(t, err)
	require.True(t, scaled.Equal(lexPoly(t, term(t, 4, 1, 1), term(t, 6, 0, 1))))

	half, err := rational.NewFrac[int64](1, 2)
	require.NoError(t, err)
	scaled, err = p.Scale(half)
	require.NoError(t, err)

	threeHalves, err := rational.NewFrac[int64](3, 2)
	require.NoError(t, err)
	require.True(t, scaled.Equal(lexPoly(t,
		poly.Term[Rat]{Monomial: mono(t, 1), Coefficient: rational.New[int64](1)},
		poly.Term[Rat]{Monomial: mono(t), Coefficient: threeHalves},
	)))

	// Scaling by zero yields the zero polynomial.
	scaled, err = p.Scale(rational.New[int64](0))
	require.NoError(t, err)
	require.True(t, scaled.IsZero())
}

func TestNeg(t *testing.T) {
	p := lexPoly(t, term(t, 2, 1), term(t, -3))

	neg, err := p.Neg()
	require.NoError(t, err)
	require.True(t, neg.Equal(lexPoly(t, term(t, -2, 1), term(t, 3))))
}

// The four-term polynomial x₀²x₁²x₂² + x₀⁶ + x₀x₁²x₂⁴ + x₀x₁²x₂³
// iterates high-to-low differently under Lex and GrLex.
func TestIteration_HighToLow(t *testing.T) {
	terms := []poly.Term[Rat]{
		term(t, 1, 2, 2, 2),
		term(t, 1, 6),
		term(t, 1, 1, 2, 4),
		term(t, 1, 1, 2, 3),
	}

	lex, err := poly.FromTerms[Rat, order.Lex](terms...)
	require.NoError(t, err)
	lexOrder := []monomial.Monomial{mono(t, 6), mono(t, 2, 2, 2), mono(t, 1, 2, 4), mono(t, 1, 2, 3)}
	for i, want := range lexOrder {
		got, err := lex.Term(i)
		require.NoError(t, err)
		require.True(t, got.Monomial.Equal(want), "lex term %d", i)
	}

	grlex, err := poly.FromTerms[Rat, order.GrLex](terms...)
	require.NoError(t, err)
	grlexOrder := []monomial.Monomial{mono(t, 1, 2, 4), mono(t, 6), mono(t, 2, 2, 2), mono(t, 1, 2, 3)}
	for i, want := range grlexOrder {
		got, err := grlex.Term(i)
		require.NoError(t, err)
		require.True(t, got.Monomial.Equal(want), "grlex term %d", i)
	}

	// Terms() and TermsAscending() are exact mirrors.
	desc := lex.Terms()
	asc := lex.TermsAscending()
	require.Len(t, asc, len(desc))
	for i := range desc {
		require.True(t, desc[i].Monomial.Equal(asc[len(asc)-1-i].Monomial))
	}

	_, err = lex.Term(4)
	require.ErrorIs(t, err, poly.ErrIndexOutOfRange)
}

func TestReorder_RoundTrip(t *testing.T) {
	p := lexPoly(t,
		term(t, 1, 2, 2, 2),
		term(t, 1, 6),
		term(t, 7, 1, 2, 4),
		term(t, -3, 1, 2, 3),
	)

	grlex := poly.Reorder[Rat, order.Lex, order.GrLex](p)
	back := poly.Reorder[Rat, order.GrLex, order.Lex](grlex)
	require.True(t, back.Equal(p))

	// The term multiset is preserved: leading terms differ, length does not.
	require.Equal(t, p.Len(), grlex.Len())
	plt, err := p.LeadingTerm()
	require.NoError(t, err)
	glt, err := grlex.LeadingTerm()
	require.NoError(t, err)
	require.True(t, plt.Monomial.Equal(mono(t, 6)))
	require.True(t, glt.Monomial.Equal(mono(t, 1, 2, 4)))
}

func TestEqual_Structural(t *testing.T) {
	p := lexPoly(t, term(t, 1, 1), term(t, 2))
	q := lexPoly(t, term(t, 2), term(t, 1, 1))
	require.True(t, p.Equal(q))

	r := lexPoly(t, term(t, 1, 1), term(t, 3))
	require.False(t, p.Equal(r))
}
