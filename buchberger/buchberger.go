package buchberger

import (
	"fmt"

	"github.com/Phibonoci/groebner/order"
	"github.com/Phibonoci/groebner/poly"
)

// Buchberger completes the generating set s in place into the reduced
// monic Gröbner basis of the ideal it generates.
//
// Each round enumerates the unordered pairs of the current basis, skips
// those whose leading monomials are coprime (the S-polynomial is known to
// vanish), reduces the surviving S-polynomials to normal form, then
// inter-reduces and normalises before adopting the nonzero survivors. The
// loop drains when a full round discovers nothing new.
//
// Preconditions: s must not contain the zero polynomial. Overflow from the
// checked layer aborts the run with the offending operation attached.
func Buchberger[F poly.Field[F], O order.Order](s *poly.Set[F, O], opts ...Option) error {
	cfg := gatherOptions(opts)

	discovered, err := findPairs(s)
	if err != nil {
		return err
	}
	if err = optimize(s); err != nil {
		return err
	}

	rounds := 0
	for !discovered.IsEmpty() {
		rounds++
		if cfg.maxRounds != DefaultMaxRounds && rounds > cfg.maxRounds {
			return fmt.Errorf("after %d rounds: %w", cfg.maxRounds, ErrRoundLimit)
		}

		s.Merge(discovered)
		if discovered, err = findPairs(s); err != nil {
			return err
		}
		if err = optimize(s); err != nil {
			return err
		}
	}

	return nil
}

// findPairs collects the normal forms of the S-polynomials of every
// unordered pair of distinct members whose leading monomials are not
// coprime, keeping the nonzero ones.
func findPairs[F poly.Field[F], O order.Order](s *poly.Set[F, O]) (*poly.Set[F, O], error) {
	members := s.Polynomials()
	found := poly.NewSet[F, O]()

	for i, f := range members {
		for _, g := range members[:i] {
			r, err := checkPair(f, g, s)
			if err != nil {
				return nil, err
			}
			if !r.IsZero() {
				found.Insert(r)
			}
		}
	}

	return found, nil
}

// checkPair applies the coprime criterion and returns the normal form of
// S(f, g) over s; the zero polynomial signals a pair with nothing to add.
func checkPair[F poly.Field[F], O order.Order](f, g poly.Polynomial[F, O], s *poly.Set[F, O]) (poly.Polynomial[F, O], error) {
	coprime, err := leadingTermsCoprime(f, g)
	if err != nil {
		return poly.Polynomial[F, O]{}, err
	}
	if coprime {
		return poly.Polynomial[F, O]{}, nil
	}

	sp, err := SPolynomial(f, g)
	if err != nil {
		return poly.Polynomial[F, O]{}, err
	}
	if _, err = ChainReduceOverSet(&sp, s); err != nil {
		return poly.Polynomial[F, O]{}, err
	}

	return sp, nil
}

// optimize inter-reduces and normalises s: afterwards the basis is
// pairwise irreducible and monic.
func optimize[F poly.Field[F], O order.Order](s *poly.Set[F, O]) error {
	if _, err := InterReduce(s); err != nil {
		return err
	}

	return Normalize(s)
}

// Contains decides ideal membership: f lies in the ideal generated by the
// Gröbner basis s iff its normal form over s is zero.
func Contains[F poly.Field[F], O order.Order](s *poly.Set[F, O], f poly.Polynomial[F, O]) (bool, error) {
	nf, err := NormalForm(f, s)
	if err != nil {
		return false, err
	}

	return nf.IsZero(), nil
}

// IsGroebnerBasis verifies the defining property directly: the normal form
// of every pairwise S-polynomial over s is zero.
func IsGroebnerBasis[F poly.Field[F], O order.Order](s *poly.Set[F, O]) (bool, error) {
	members := s.Polynomials()
	for i, f := range members {
		for _, g := range members[:i] {
			sp, err := SPolynomial(f, g)
			if err != nil {
				return false, err
			}
			nf, err := NormalForm(sp, s)
			if err != nil {
				return false, err
			}
			if !nf.IsZero() {
				return false, nil
			}
		}
	}

	return true, nil
}
