package poly

import "fmt"

// Add returns p + q by merging the terms of q into a copy of p.
func (p Polynomial[F, O]) Add(q Polynomial[F, O]) (Polynomial[F, O], error) {
	out := p.Clone()
	for _, t := range q.terms {
		if err := out.addTerm(t); err != nil {
			return Polynomial[F, O]{}, fmt.Errorf("poly: add: %w", err)
		}
	}

	return out, nil
}

// Sub returns p - q.
func (p Polynomial[F, O]) Sub(q Polynomial[F, O]) (Polynomial[F, O], error) {
	out := p.Clone()
	for _, t := range q.terms {
		if err := out.subTerm(t); err != nil {
			return Polynomial[F, O]{}, fmt.Errorf("poly: sub: %w", err)
		}
	}

	return out, nil
}

// Mul returns the distributive product of p and q, accumulating every
// pairwise term product into a fresh polynomial.
func (p Polynomial[F, O]) Mul(q Polynomial[F, O]) (Polynomial[F, O], error) {
	var out Polynomial[F, O]
	for _, pt := range p.terms {
		for _, qt := range q.terms {
			m, err := pt.Monomial.Mul(qt.Monomial)
			if err != nil {
				return Polynomial[F, O]{}, fmt.Errorf("poly: mul: %w", err)
			}
			c, err := pt.Coefficient.Mul(qt.Coefficient)
			if err != nil {
				return Polynomial[F, O]{}, fmt.Errorf("poly: mul: %w", err)
			}
			if err = out.addTerm(Term[F]{Monomial: m, Coefficient: c}); err != nil {
				return Polynomial[F, O]{}, fmt.Errorf("poly: mul: %w", err)
			}
		}
	}

	return out, nil
}

// MulTerm returns p scaled by the single term t. Because admissible orders
// are compatible with multiplication, the sorted layout survives the map
// and no re-sort is needed; a zero coefficient yields the zero polynomial.
func (p Polynomial[F, O]) MulTerm(t Term[F]) (Polynomial[F, O], error) {
	if t.Coefficient.IsZero() {
		return Polynomial[F, O]{}, nil
	}

	out := Polynomial[F, O]{terms: make([]Term[F], 0, len(p.terms))}
	for _, pt := range p.terms {
		m, err := pt.Monomial.Mul(t.Monomial)
		if err != nil {
			return Polynomial[F, O]{}, fmt.Errorf("poly: mul term: %w", err)
		}
		c, err := pt.Coefficient.Mul(t.Coefficient)
		if err != nil {
			return Polynomial[F, O]{}, fmt.Errorf("poly: mul term: %w", err)
		}
		out.terms = append(out.terms, Term[F]{Monomial: m, Coefficient: c})
	}

	return out, nil
}

// Scale returns p with every coefficient multiplied by c; a zero c yields
// the zero polynomial.
func (p Polynomial[F, O]) Scale(c F) (Polynomial[F, O], error) {
	return p.MulTerm(Term[F]{Coefficient: c})
}

// Neg returns -p.
func (p Polynomial[F, O]) Neg() (Polynomial[F, O], error) {
	out := Polynomial[F, O]{terms: make([]Term[F], 0, len(p.terms))}
	for _, t := range p.terms {
		c, err := t.Coefficient.Neg()
		if err != nil {
			return Polynomial[F, O]{}, fmt.Errorf("poly: neg: %w", err)
		}
		out.terms = append(out.terms, Term[F]{Monomial: t.Monomial, Coefficient: c})
	}

	return out, nil
}
