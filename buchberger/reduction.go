package buchberger

import (
	"fmt"

	"github.com/Phibonoci/groebner/order"
	"github.com/Phibonoci/groebner/poly"
)

// ElementaryReduction performs one division step of r by the reductor h:
// scanning r from its leading term downward, the first term divisible by
// LM(h) is eliminated by subtracting the matching multiple of h. It
// reports whether a step happened; false means no term of r is divisible
// by LM(h). A zero h yields ErrZeroMember.
func ElementaryReduction[F poly.Field[F], O order.Order](r *poly.Polynomial[F, O], h poly.Polynomial[F, O]) (bool, error) {
	if h.IsZero() {
		return false, fmt.Errorf("elementary reduction: %w", ErrZeroMember)
	}

	lead, err := h.LeadingTerm()
	if err != nil {
		return false, err
	}

	for _, t := range r.Terms() {
		if !t.Monomial.IsDivisibleBy(lead.Monomial) {
			continue
		}

		qm, err := t.Monomial.Div(lead.Monomial)
		if err != nil {
			return false, fmt.Errorf("elementary reduction: %w", err)
		}
		qc, err := t.Coefficient.Div(lead.Coefficient)
		if err != nil {
			return false, fmt.Errorf("elementary reduction: %w", err)
		}

		prod, err := h.MulTerm(poly.Term[F]{Monomial: qm, Coefficient: qc})
		if err != nil {
			return false, fmt.Errorf("elementary reduction: %w", err)
		}
		next, err := r.Sub(prod)
		if err != nil {
			return false, fmt.Errorf("elementary reduction: %w", err)
		}
		*r = next

		return true, nil
	}

	return false, nil
}

// ChainReduce repeats ElementaryReduction of r by h until no step applies,
// returning the number of steps.
func ChainReduce[F poly.Field[F], O order.Order](r *poly.Polynomial[F, O], h poly.Polynomial[F, O]) (int, error) {
	count := 0
	for {
		reduced, err := ElementaryReduction(r, h)
		if err != nil {
			return count, err
		}
		if !reduced {
			return count, nil
		}
		count++
	}
}

// ReduceOverSet sweeps the reductor set once in its canonical order,
// exhausting each reductor against r before moving on, and returns the
// total number of elementary steps.
func ReduceOverSet[F poly.Field[F], O order.Order](r *poly.Polynomial[F, O], s *poly.Set[F, O]) (int, error) {
	count := 0
	for i := 0; i < s.Len(); i++ {
		h, err := s.At(i)
		if err != nil {
			return count, err
		}
		c, err := ChainReduce(r, h)
		count += c
		if err != nil {
			return count, err
		}
	}

	return count, nil
}

// ChainReduceOverSet sweeps the set until a full pass performs no step,
// leaving r in normal form: no term of r is divisible by the leading
// monomial of any member of s.
func ChainReduceOverSet[F poly.Field[F], O order.Order](r *poly.Polynomial[F, O], s *poly.Set[F, O]) (int, error) {
	total := 0
	for {
		c, err := ReduceOverSet(r, s)
		total += c
		if err != nil {
			return total, err
		}
		if c == 0 {
			return total, nil
		}
	}
}

// NormalForm returns the normal form of p with respect to s, leaving p
// untouched.
func NormalForm[F poly.Field[F], O order.Order](p poly.Polynomial[F, O], s *poly.Set[F, O]) (poly.Polynomial[F, O], error) {
	r := p.Clone()
	if _, err := ChainReduceOverSet(&r, s); err != nil {
		return poly.Polynomial[F, O]{}, err
	}

	return r, nil
}

// InterReduce reduces every member of s against all the others until a
// fixed point, dropping members that reduce to zero, and returns the total
// number of elementary steps. Combined with Normalize this yields the
// reduced basis.
func InterReduce[F poly.Field[F], O order.Order](s *poly.Set[F, O]) (int, error) {
	total := 0
	for {
		c, err := interReduceOnce(s)
		total += c
		if err != nil {
			return total, err
		}
		if c == 0 {
			return total, nil
		}
	}
}

// interReduceOnce extracts each member in canonical order, reduces it by
// the unprocessed remainder and by the already-accumulated members, and
// keeps it only if something survives.
func interReduceOnce[F poly.Field[F], O order.Order](s *poly.Set[F, O]) (int, error) {
	count := 0
	reduced := poly.NewSet[F, O]()

	for !s.IsEmpty() {
		r, err := s.ExtractMin()
		if err != nil {
			return count, err
		}

		c, err := ReduceOverSet(&r, s)
		count += c
		if err != nil {
			return count, err
		}
		c, err = ReduceOverSet(&r, reduced)
		count += c
		if err != nil {
			return count, err
		}

		if !r.IsZero() {
			reduced.Insert(r)
		}
	}

	*s = *reduced

	return count, nil
}

// Normalize rescales every member of s to a leading coefficient of 1.
func Normalize[F poly.Field[F], O order.Order](s *poly.Set[F, O]) error {
	monic := poly.NewSet[F, O]()
	for i := 0; i < s.Len(); i++ {
		f, err := s.At(i)
		if err != nil {
			return err
		}

		lead, err := f.LeadingTerm()
		if err != nil {
			return fmt.Errorf("normalize: %w", ErrZeroMember)
		}
		inv, err := lead.Coefficient.Inv()
		if err != nil {
			return fmt.Errorf("normalize: %w", err)
		}
		scaled, err := f.Scale(inv)
		if err != nil {
			return fmt.Errorf("normalize: %w", err)
		}
		monic.Insert(scaled)
	}

	*s = *monic

	return nil
}
