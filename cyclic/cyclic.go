package cyclic

import (
	"errors"
	"fmt"

	"github.com/Phibonoci/groebner/monomial"
	"github.com/Phibonoci/groebner/order"
	"github.com/Phibonoci/groebner/poly"
)

// ErrBadDimension indicates a non-positive variable count.
var ErrBadDimension = errors.New("cyclic: dimension must be positive")

// BuildCycleSet returns the cyclic-m ideal generators as a polynomial set
// over (F, O): the rotational sums p₁…p_{m−1} plus x₀·…·x_{m−1} − 1.
func BuildCycleSet[F poly.Field[F], O order.Order](m int) (*poly.Set[F, O], error) {
	if m < 1 {
		return nil, fmt.Errorf("cyclic: build cycle set(%d): %w", m, ErrBadDimension)
	}

	set := poly.NewSet[F, O]()
	for n := 1; n < m; n++ {
		p, err := rotationalSum[F, O](n, m)
		if err != nil {
			return nil, fmt.Errorf("cyclic: p_%d: %w", n, err)
		}
		set.Insert(p)
	}

	closing, err := closingRelation[F, O](m)
	if err != nil {
		return nil, fmt.Errorf("cyclic: p_%d: %w", m, err)
	}
	set.Insert(closing)

	return set, nil
}

// rotationalSum builds pₙ: for each starting index i, the product of the n
// cyclically consecutive variables x_i…x_{(i+n−1) mod m}.
func rotationalSum[F poly.Field[F], O order.Order](n, m int) (poly.Polynomial[F, O], error) {
	var one F
	terms := make([]poly.Term[F], 0, m)

	for i := 0; i < m; i++ {
		degrees := make([]monomial.Degree, m)
		for k := 0; k < n; k++ {
			degrees[(i+k)%m] = 1
		}
		mon, err := monomial.New(degrees...)
		if err != nil {
			return poly.Polynomial[F, O]{}, err
		}
		terms = append(terms, poly.Term[F]{Monomial: mon, Coefficient: one.One()})
	}

	return poly.FromTerms[F, O](terms...)
}

// closingRelation builds p_m = x₀·…·x_{m−1} − 1.
func closingRelation[F poly.Field[F], O order.Order](m int) (poly.Polynomial[F, O], error) {
	degrees := make([]monomial.Degree, m)
	for i := range degrees {
		degrees[i] = 1
	}
	full, err := monomial.New(degrees...)
	if err != nil {
		return poly.Polynomial[F, O]{}, err
	}

	var one F
	minusOne, err := one.One().Neg()
	if err != nil {
		return poly.Polynomial[F, O]{}, err
	}

	return poly.FromTerms[F, O](
		poly.Term[F]{Monomial: full, Coefficient: one.One()},
		poly.Term[F]{Monomial: monomial.One(), Coefficient: minusOne},
	)
}
