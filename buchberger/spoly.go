package buchberger

import (
	"fmt"

	"github.com/Phibonoci/groebner/monomial"
	"github.com/Phibonoci/groebner/order"
	"github.com/Phibonoci/groebner/poly"
)

// SPolynomial returns
//
//	S(f, g) = (L / LM(f)) · (1/LC(f)) · f − (L / LM(g)) · (1/LC(g)) · g
//
// where L = lcm(LM(f), LM(g)). The leading monomials cancel by
// construction, so the result is zero or leads strictly below L.
// Zero operands yield ErrZeroMember.
func SPolynomial[F poly.Field[F], O order.Order](f, g poly.Polynomial[F, O]) (poly.Polynomial[F, O], error) {
	if f.IsZero() || g.IsZero() {
		return poly.Polynomial[F, O]{}, fmt.Errorf("s-polynomial: %w", ErrZeroMember)
	}

	lf, err := f.LeadingTerm()
	if err != nil {
		return poly.Polynomial[F, O]{}, err
	}
	lg, err := g.LeadingTerm()
	if err != nil {
		return poly.Polynomial[F, O]{}, err
	}

	l := monomial.Lcm(lf.Monomial, lg.Monomial)

	left, err := cofactor(f, l, lf)
	if err != nil {
		return poly.Polynomial[F, O]{}, err
	}
	right, err := cofactor(g, l, lg)
	if err != nil {
		return poly.Polynomial[F, O]{}, err
	}

	s, err := left.Sub(right)
	if err != nil {
		return poly.Polynomial[F, O]{}, fmt.Errorf("s-polynomial: %w", err)
	}

	return s, nil
}

// cofactor returns (l / LM(p)) · (1/LC(p)) · p, the summand that brings the
// leading term of p up to the monic term at l.
func cofactor[F poly.Field[F], O order.Order](p poly.Polynomial[F, O], l monomial.Monomial, lead poly.Term[F]) (poly.Polynomial[F, O], error) {
	m, err := l.Div(lead.Monomial)
	if err != nil {
		return poly.Polynomial[F, O]{}, fmt.Errorf("s-polynomial: %w", err)
	}
	c, err := lead.Coefficient.Inv()
	if err != nil {
		return poly.Polynomial[F, O]{}, fmt.Errorf("s-polynomial: %w", err)
	}

	out, err := p.MulTerm(poly.Term[F]{Monomial: m, Coefficient: c})
	if err != nil {
		return poly.Polynomial[F, O]{}, fmt.Errorf("s-polynomial: %w", err)
	}

	return out, nil
}

// leadingTermsCoprime implements Buchberger's first criterion test:
// when LM(f)·LM(g) equals lcm(LM(f), LM(g)) the leading monomials share no
// variable and S(f, g) is guaranteed to reduce to zero over {f, g}.
func leadingTermsCoprime[F poly.Field[F], O order.Order](f, g poly.Polynomial[F, O]) (bool, error) {
	lf, err := f.LeadingTerm()
	if err != nil {
		return false, err
	}
	lg, err := g.LeadingTerm()
	if err != nil {
		return false, err
	}

	prod, err := lf.Monomial.Mul(lg.Monomial)
	if err != nil {
		return false, fmt.Errorf("coprime check: %w", err)
	}

	return prod.Equal(monomial.Lcm(lf.Monomial, lg.Monomial)), nil
}
