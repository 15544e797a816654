package monomial

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Phibonoci/groebner/checked"
)

// Sentinel errors for monomial algebra.
var (
	// ErrNotDivisible indicates a quotient with a negative exponent was
	// requested; callers should test IsDivisibleBy first.
	ErrNotDivisible = errors.New("monomial: not divisible")

	// ErrNegativeDegree indicates a constructor received a negative exponent.
	ErrNegativeDegree = errors.New("monomial: negative degree")
)

// Degree is the exponent type of a single variable.
type Degree = int64

// Monomial is a power product x₀^e₀ · x₁^e₁ · … held as a shrunk exponent
// vector. The zero value is the constant monomial 1.
type Monomial struct {
	degrees []Degree
}

// New builds the monomial with the given exponents, indexed from variable 0.
// Trailing zeros are trimmed; negative exponents are rejected.
func New(degrees ...Degree) (Monomial, error) {
	for i, d := range degrees {
		if d < 0 {
			return Monomial{}, fmt.Errorf("monomial: degree %d of x_%d: %w", d, i, ErrNegativeDegree)
		}
	}

	m := Monomial{degrees: append([]Degree(nil), degrees...)}
	m.shrink()

	return m, nil
}

// One returns the constant monomial with no variables.
func One() Monomial { return Monomial{} }

// shrink trims trailing zero exponents, restoring the invariant that the
// vector is empty or ends in a positive exponent.
func (m *Monomial) shrink() {
	n := len(m.degrees)
	for n > 0 && m.degrees[n-1] == 0 {
		n--
	}
	m.degrees = m.degrees[:n]
}

// Len returns the stored vector length: one past the highest variable index
// with a nonzero exponent, or 0 for the constant monomial.
func (m Monomial) Len() int { return len(m.degrees) }

// IsConstant reports whether m has no variables.
func (m Monomial) IsConstant() bool { return len(m.degrees) == 0 }

// Degree returns the exponent of variable i; variables beyond the stored
// length have exponent 0.
func (m Monomial) Degree(i int) Degree {
	if i < len(m.degrees) {
		return m.degrees[i]
	}

	return 0
}

// Degrees returns a copy of the shrunk exponent vector.
func (m Monomial) Degrees() []Degree {
	return append([]Degree(nil), m.degrees...)
}

// Mul returns the product of m and o: component-wise exponent addition
// extended to the longer vector. Exponent sums are checked.
func (m Monomial) Mul(o Monomial) (Monomial, error) {
	n := max(len(m.degrees), len(o.degrees))
	out := Monomial{degrees: make([]Degree, n)}

	var err error
	for i := 0; i < n; i++ {
		if out.degrees[i], err = checked.Add(m.Degree(i), o.Degree(i)); err != nil {
			return Monomial{}, fmt.Errorf("monomial: mul, x_%d: %w", i, err)
		}
	}
	out.shrink()

	return out, nil
}

// IsDivisibleBy reports whether every exponent of o is covered by m.
func (m Monomial) IsDivisibleBy(o Monomial) bool {
	if len(o.degrees) > len(m.degrees) {
		return false
	}
	for i, d := range o.degrees {
		if d > m.degrees[i] {
			return false
		}
	}

	return true
}

// Div returns m with the exponents of o subtracted, or ErrNotDivisible when
// o has a variable m lacks or any exponent of o exceeds its counterpart.
func (m Monomial) Div(o Monomial) (Monomial, error) {
	if !m.IsDivisibleBy(o) {
		return Monomial{}, fmt.Errorf("monomial: %s / %s: %w", m, o, ErrNotDivisible)
	}

	out := Monomial{degrees: append([]Degree(nil), m.degrees...)}
	for i, d := range o.degrees {
		out.degrees[i] -= d
	}
	out.shrink()

	return out, nil
}

// Lcm returns the least common multiple: component-wise exponent maxima.
func Lcm(a, b Monomial) Monomial {
	n := max(len(a.degrees), len(b.degrees))
	out := Monomial{degrees: make([]Degree, n)}
	for i := 0; i < n; i++ {
		out.degrees[i] = max(a.Degree(i), b.Degree(i))
	}
	out.shrink()

	return out
}

// TotalDegree returns the sum of all exponents through checked addition.
func (m Monomial) TotalDegree() (Degree, error) {
	var sum Degree
	var err error
	for i, d := range m.degrees {
		if sum, err = checked.Add(sum, d); err != nil {
			return 0, fmt.Errorf("monomial: total degree at x_%d: %w", i, err)
		}
	}

	return sum, nil
}

// Equal reports whether m and o have identical shrunk exponent vectors.
func (m Monomial) Equal(o Monomial) bool {
	if len(m.degrees) != len(o.degrees) {
		return false
	}
	for i, d := range m.degrees {
		if d != o.degrees[i] {
			return false
		}
	}

	return true
}

// Compare lexicographically orders the exponent vectors from variable 0
// upward: -1, 0 or +1. This is the canonical deterministic comparison, not
// an admissible monomial order.
func (m Monomial) Compare(o Monomial) int {
	n := max(len(m.degrees), len(o.degrees))
	for i := 0; i < n; i++ {
		md, od := m.Degree(i), o.Degree(i)
		switch {
		case md < od:
			return -1
		case md > od:
			return 1
		}
	}

	return 0
}

// String renders the diagnostics form, e.g. "x_0^2 * x_1"; the constant
// monomial renders as "1".
func (m Monomial) String() string {
	if m.IsConstant() {
		return "1"
	}

	var b strings.Builder
	first := true
	for i, d := range m.degrees {
		if d == 0 {
			continue
		}
		if !first {
			b.WriteString(" * ")
		}
		first = false
		if d == 1 {
			fmt.Fprintf(&b, "x_%d", i)
		} else {
			fmt.Fprintf(&b, "x_%d^%d", i, d)
		}
	}

	return b.String()
}
