// Package rational: the Rational value type, constructors and field
// operations. The normal form (den > 0, gcd(|num|, den) = 1) is restored
// eagerly after every operation so equality stays structural and O(1).

package rational

import (
	"errors"
	"fmt"

	"github.com/Phibonoci/groebner/checked"
)

// ErrZeroDenominator indicates a rational was constructed with a zero
// denominator, inverted at zero, or divided by zero.
var ErrZeroDenominator = errors.New("rational: zero denominator")

// Rational is an exact fraction num/den over the checked integer type I.
//
// Invariants after every constructor and operation: den > 0 and
// gcd(|num|, den) = 1. The zero value of the type behaves as 0/1 and is
// ready to use.
type Rational[I checked.Signed] struct {
	num, den I
}

// New returns the rational n/1.
func New[I checked.Signed](n I) Rational[I] {
	return Rational[I]{num: n, den: 1}
}

// NewFrac returns the reduced rational num/den.
// A zero den yields ErrZeroDenominator; reduction may surface
// checked.ErrOverflow for operands at the very bottom of the range of I.
func NewFrac[I checked.Signed](num, den I) (Rational[I], error) {
	if den == 0 {
		return Rational[I]{}, fmt.Errorf("rational: new(%d, %d): %w", num, den, ErrZeroDenominator)
	}

	return reduce(num, den)
}

// reduce restores the normal form: flips signs so den > 0, then divides
// both components by their gcd. den must be nonzero on entry.
func reduce[I checked.Signed](num, den I) (Rational[I], error) {
	var err error
	if den < 0 {
		if num, err = checked.Neg(num); err != nil {
			return Rational[I]{}, fmt.Errorf("rational: reduce: %w", err)
		}
		if den, err = checked.Neg(den); err != nil {
			return Rational[I]{}, fmt.Errorf("rational: reduce: %w", err)
		}
	}

	g, err := checked.Gcd(num, den)
	if err != nil {
		return Rational[I]{}, fmt.Errorf("rational: reduce: %w", err)
	}

	return Rational[I]{num: num / g, den: den / g}, nil
}

// parts reads the components, mapping the uninitialized zero value to 0/1.
func (r Rational[I]) parts() (I, I) {
	if r.den == 0 {
		return r.num, 1
	}

	return r.num, r.den
}

// Num returns the reduced numerator; its sign is the sign of the value.
func (r Rational[I]) Num() I {
	n, _ := r.parts()

	return n
}

// Den returns the reduced denominator, always positive.
func (r Rational[I]) Den() I {
	_, d := r.parts()

	return d
}

// Zero returns the additive identity 0/1.
func (Rational[I]) Zero() Rational[I] { return New[I](0) }

// One returns the multiplicative identity 1/1.
func (Rational[I]) One() Rational[I] { return New[I](1) }

// IsZero reports whether r equals 0.
func (r Rational[I]) IsZero() bool { return r.Num() == 0 }

// Equal reports structural equality of the reduced representations.
func (r Rational[I]) Equal(o Rational[I]) bool {
	rn, rd := r.parts()
	on, od := o.parts()

	return rn == on && rd == od
}

// Add returns r + o over the lcm of the denominators.
func (r Rational[I]) Add(o Rational[I]) (Rational[I], error) {
	rn, rd := r.parts()
	on, od := o.parts()

	l, err := checked.Lcm(rd, od)
	if err != nil {
		return Rational[I]{}, fmt.Errorf("rational: add: %w", err)
	}

	left, err := checked.Mul(rn, l/rd)
	if err != nil {
		return Rational[I]{}, fmt.Errorf("rational: add: %w", err)
	}
	right, err := checked.Mul(on, l/od)
	if err != nil {
		return Rational[I]{}, fmt.Errorf("rational: add: %w", err)
	}

	sum, err := checked.Add(left, right)
	if err != nil {
		return Rational[I]{}, fmt.Errorf("rational: add: %w", err)
	}

	return reduce(sum, l)
}

// Sub returns r - o.
func (r Rational[I]) Sub(o Rational[I]) (Rational[I], error) {
	neg, err := o.Neg()
	if err != nil {
		return Rational[I]{}, fmt.Errorf("rational: sub: %w", err)
	}

	return r.Add(neg)
}

// Mul returns r * o.
func (r Rational[I]) Mul(o Rational[I]) (Rational[I], error) {
	rn, rd := r.parts()
	on, od := o.parts()

	num, err := checked.Mul(rn, on)
	if err != nil {
		return Rational[I]{}, fmt.Errorf("rational: mul: %w", err)
	}
	den, err := checked.Mul(rd, od)
	if err != nil {
		return Rational[I]{}, fmt.Errorf("rational: mul: %w", err)
	}

	return reduce(num, den)
}

// Div returns r / o; a zero o yields ErrZeroDenominator.
func (r Rational[I]) Div(o Rational[I]) (Rational[I], error) {
	inv, err := o.Inv()
	if err != nil {
		return Rational[I]{}, fmt.Errorf("rational: div: %w", err)
	}

	return r.Mul(inv)
}

// Neg returns -r.
func (r Rational[I]) Neg() (Rational[I], error) {
	rn, rd := r.parts()

	num, err := checked.Neg(rn)
	if err != nil {
		return Rational[I]{}, fmt.Errorf("rational: neg: %w", err)
	}

	return Rational[I]{num: num, den: rd}, nil
}

// Inv returns 1/r; a zero r yields ErrZeroDenominator.
func (r Rational[I]) Inv() (Rational[I], error) {
	rn, rd := r.parts()
	if rn == 0 {
		return Rational[I]{}, fmt.Errorf("rational: invert: %w", ErrZeroDenominator)
	}

	return reduce(rd, rn)
}

// Compare numerically orders r against o: -1, 0 or +1. The operands are
// brought over a common denominator computed via gcd to keep the
// cross-multiplications as small as possible; the remaining products are
// still checked and may surface checked.ErrOverflow.
func (r Rational[I]) Compare(o Rational[I]) (int, error) {
	rn, rd := r.parts()
	on, od := o.parts()

	g, err := checked.Gcd(rd, od)
	if err != nil {
		return 0, fmt.Errorf("rational: compare: %w", err)
	}

	left, err := checked.Mul(rn, od/g)
	if err != nil {
		return 0, fmt.Errorf("rational: compare: %w", err)
	}
	right, err := checked.Mul(on, rd/g)
	if err != nil {
		return 0, fmt.Errorf("rational: compare: %w", err)
	}

	switch {
	case left < right:
		return -1, nil
	case left > right:
		return 1, nil
	default:
		return 0, nil
	}
}

// Less reports r < o numerically.
func (r Rational[I]) Less(o Rational[I]) (bool, error) {
	c, err := r.Compare(o)

	return c < 0, err
}

// Cmp is the canonical, overflow-free total order on reduced
// representations: numerators first, then denominators. It agrees with the
// numeric order on sign (Cmp against zero is the sign of r) but not in
// general; use Compare for numeric ordering.
func (r Rational[I]) Cmp(o Rational[I]) int {
	rn, rd := r.parts()
	on, od := o.parts()

	switch {
	case rn < on:
		return -1
	case rn > on:
		return 1
	case rd < od:
		return -1
	case rd > od:
		return 1
	default:
		return 0
	}
}

// Float64 converts r for reporting purposes only; arithmetic never uses it.
func (r Rational[I]) Float64() float64 {
	n, d := r.parts()

	return float64(n) / float64(d)
}

// String renders "num" when den is 1 and "num/den" otherwise.
func (r Rational[I]) String() string {
	n, d := r.parts()
	if d == 1 {
		return fmt.Sprintf("%d", n)
	}

	return fmt.Sprintf("%d/%d", n, d)
}
