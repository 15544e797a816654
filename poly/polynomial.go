package poly

import (
	"fmt"
	"sort"

	"github.com/Phibonoci/groebner/monomial"
	"github.com/Phibonoci/groebner/order"
)

// Term is a single monomial with its coefficient.
type Term[F any] struct {
	Monomial    monomial.Monomial
	Coefficient F
}

// Polynomial is a sparse polynomial over the field F, held as a term slice
// sorted ascending under the monomial order O. Only nonzero coefficients
// are stored, so the zero polynomial is the empty slice and the zero value
// of the type is ready to use.
//
// O must be a stateless value type from the order package; it is
// instantiated by its zero value.
type Polynomial[F Field[F], O order.Order] struct {
	terms []Term[F]
}

// Zero returns the zero polynomial.
func Zero[F Field[F], O order.Order]() Polynomial[F, O] {
	return Polynomial[F, O]{}
}

// FromMonomial returns the polynomial 1·m.
func FromMonomial[F Field[F], O order.Order](m monomial.Monomial) Polynomial[F, O] {
	var one F

	return Polynomial[F, O]{terms: []Term[F]{{Monomial: m, Coefficient: one.One()}}}
}

// FromConstant returns the constant polynomial c; a zero c yields the zero
// polynomial.
func FromConstant[F Field[F], O order.Order](c F) Polynomial[F, O] {
	if c.IsZero() {
		return Polynomial[F, O]{}
	}

	return Polynomial[F, O]{terms: []Term[F]{{Monomial: monomial.One(), Coefficient: c}}}
}

// FromTerm returns the single-term polynomial t; a zero coefficient yields
// the zero polynomial.
func FromTerm[F Field[F], O order.Order](t Term[F]) Polynomial[F, O] {
	if t.Coefficient.IsZero() {
		return Polynomial[F, O]{}
	}

	return Polynomial[F, O]{terms: []Term[F]{t}}
}

// FromTerms builds a polynomial from an arbitrary term list: duplicates are
// merged, entries whose coefficients cancel or are zero are discarded.
func FromTerms[F Field[F], O order.Order](terms ...Term[F]) (Polynomial[F, O], error) {
	var p Polynomial[F, O]
	for _, t := range terms {
		if err := p.addTerm(t); err != nil {
			return Polynomial[F, O]{}, fmt.Errorf("poly: from terms: %w", err)
		}
	}

	return p, nil
}

// Reorder rebuilds p under the monomial order O2. The term set is
// unchanged; converting there and back yields the original.
func Reorder[F Field[F], O1, O2 order.Order](p Polynomial[F, O1]) Polynomial[F, O2] {
	out := Polynomial[F, O2]{terms: append([]Term[F](nil), p.terms...)}

	var ord O2
	sort.SliceStable(out.terms, func(i, j int) bool {
		return ord.Less(out.terms[i].Monomial, out.terms[j].Monomial)
	})

	return out
}

// lowerBound returns the first index whose monomial is not below m under O.
func (p Polynomial[F, O]) lowerBound(m monomial.Monomial) int {
	var ord O

	return sort.Search(len(p.terms), func(i int) bool {
		return !ord.Less(p.terms[i].Monomial, m)
	})
}

// addTerm merges t into p: an existing entry for the monomial accumulates
// the coefficient and is erased when the sum cancels; otherwise the term is
// inserted at its sorted position. Zero-coefficient terms are ignored.
func (p *Polynomial[F, O]) addTerm(t Term[F]) error {
	if t.Coefficient.IsZero() {
		return nil
	}

	i := p.lowerBound(t.Monomial)
	if i < len(p.terms) && p.terms[i].Monomial.Equal(t.Monomial) {
		sum, err := p.terms[i].Coefficient.Add(t.Coefficient)
		if err != nil {
			return err
		}
		if sum.IsZero() {
			p.terms = append(p.terms[:i], p.terms[i+1:]...)

			return nil
		}
		p.terms[i].Coefficient = sum

		return nil
	}

	p.terms = append(p.terms, Term[F]{})
	copy(p.terms[i+1:], p.terms[i:])
	p.terms[i] = t

	return nil
}

// subTerm is addTerm with the coefficient subtracted.
func (p *Polynomial[F, O]) subTerm(t Term[F]) error {
	if t.Coefficient.IsZero() {
		return nil
	}

	i := p.lowerBound(t.Monomial)
	if i < len(p.terms) && p.terms[i].Monomial.Equal(t.Monomial) {
		diff, err := p.terms[i].Coefficient.Sub(t.Coefficient)
		if err != nil {
			return err
		}
		if diff.IsZero() {
			p.terms = append(p.terms[:i], p.terms[i+1:]...)

			return nil
		}
		p.terms[i].Coefficient = diff

		return nil
	}

	neg, err := t.Coefficient.Neg()
	if err != nil {
		return err
	}
	p.terms = append(p.terms, Term[F]{})
	copy(p.terms[i+1:], p.terms[i:])
	p.terms[i] = Term[F]{Monomial: t.Monomial, Coefficient: neg}

	return nil
}

// Len returns the number of terms.
func (p Polynomial[F, O]) Len() int { return len(p.terms) }

// IsZero reports whether p has no terms.
func (p Polynomial[F, O]) IsZero() bool { return len(p.terms) == 0 }

// LeadingTerm returns the term with the maximum monomial under O, or
// ErrZeroPolynomial on the zero polynomial.
func (p Polynomial[F, O]) LeadingTerm() (Term[F], error) {
	if p.IsZero() {
		return Term[F]{}, ErrZeroPolynomial
	}

	return p.terms[len(p.terms)-1], nil
}

// Term returns the i-th term counting from the leading one (high to low
// under O), or ErrIndexOutOfRange.
func (p Polynomial[F, O]) Term(i int) (Term[F], error) {
	if i < 0 || i >= len(p.terms) {
		return Term[F]{}, fmt.Errorf("poly: term %d of %d: %w", i, len(p.terms), ErrIndexOutOfRange)
	}

	return p.terms[len(p.terms)-1-i], nil
}

// Terms returns a copy of the terms from leading to trailing under O.
func (p Polynomial[F, O]) Terms() []Term[F] {
	out := make([]Term[F], len(p.terms))
	for i, t := range p.terms {
		out[len(p.terms)-1-i] = t
	}

	return out
}

// TermsAscending returns a copy of the terms from trailing to leading.
func (p Polynomial[F, O]) TermsAscending() []Term[F] {
	return append([]Term[F](nil), p.terms...)
}

// Clone returns a deep copy of p.
func (p Polynomial[F, O]) Clone() Polynomial[F, O] {
	return Polynomial[F, O]{terms: append([]Term[F](nil), p.terms...)}
}

// Equal reports structural equality: the same monomials carrying the same
// coefficients. Because the no-zero-term invariant holds, this is exactly
// mathematical equality.
func (p Polynomial[F, O]) Equal(q Polynomial[F, O]) bool {
	if len(p.terms) != len(q.terms) {
		return false
	}
	for i, t := range p.terms {
		if !t.Monomial.Equal(q.terms[i].Monomial) || !t.Coefficient.Equal(q.terms[i].Coefficient) {
			return false
		}
	}

	return true
}

// Compare is the canonical deterministic total order on term sequences
// used by Set: terms are compared pairwise from the leading end, monomials
// by their canonical comparison and coefficients by Cmp; a strict prefix
// precedes its extension.
func (p Polynomial[F, O]) Compare(q Polynomial[F, O]) int {
	n := min(len(p.terms), len(q.terms))
	for i := 0; i < n; i++ {
		pt := p.terms[len(p.terms)-1-i]
		qt := q.terms[len(q.terms)-1-i]
		if c := pt.Monomial.Compare(qt.Monomial); c != 0 {
			return c
		}
		if c := pt.Coefficient.Cmp(qt.Coefficient); c != 0 {
			return c
		}
	}

	switch {
	case len(p.terms) < len(q.terms):
		return -1
	case len(p.terms) > len(q.terms):
		return 1
	default:
		return 0
	}
}

// checkInvariants panics on a zero-coefficient term; called from tests via
// the exported debug hook.
func (p Polynomial[F, O]) checkInvariants() {
	for _, t := range p.terms {
		if t.Coefficient.IsZero() {
			panic("poly: invariant violated: zero-coefficient term")
		}
	}
}
