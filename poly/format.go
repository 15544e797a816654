package poly

import (
	"fmt"
	"strings"

	"github.com/Phibonoci/groebner/monomial"
)

// FormatOption customizes the diagnostics formatter. The grammar is not a
// stable interface.
type FormatOption func(*formatOptions)

type formatOptions struct {
	names []string
}

// WithVariableNames substitutes names for the default x_i spelling; indices
// past the list fall back to x_i. Panics on an empty list (programmer
// error, mirroring the option-validation convention).
func WithVariableNames(names ...string) FormatOption {
	if len(names) == 0 {
		panic("poly: WithVariableNames requires at least one name")
	}

	return func(o *formatOptions) { o.names = names }
}

func (o formatOptions) variable(i int) string {
	if i < len(o.names) {
		return o.names[i]
	}

	return fmt.Sprintf("x_%d", i)
}

// formatMonomial renders m under the active naming.
func (o formatOptions) formatMonomial(m monomial.Monomial) string {
	if m.IsConstant() {
		return "1"
	}

	var b strings.Builder
	first := true
	for i := 0; i < m.Len(); i++ {
		d := m.Degree(i)
		if d == 0 {
			continue
		}
		if !first {
			b.WriteString(" * ")
		}
		first = false
		if d == 1 {
			b.WriteString(o.variable(i))
		} else {
			fmt.Fprintf(&b, "%s^%d", o.variable(i), d)
		}
	}

	return b.String()
}

// Format renders p from its leading term downward: the leading sign is
// attached, later terms join with " + " or " - " by coefficient sign, unit
// coefficients are elided in front of variables. The zero polynomial
// renders as "0".
func (p Polynomial[F, O]) Format(opts ...FormatOption) string {
	var o formatOptions
	for _, opt := range opts {
		opt(&o)
	}

	if p.IsZero() {
		return "0"
	}

	var b strings.Builder
	for i, t := range p.Terms() {
		c := t.Coefficient
		negative := c.Cmp(c.Zero()) < 0
		if negative {
			// Render the magnitude; fall back to the raw coefficient in
			// the pathological case where negation itself overflows.
			if abs, err := c.Neg(); err == nil {
				c = abs
			} else {
				negative = false
			}
		}

		switch {
		case i == 0 && negative:
			b.WriteString("-")
		case i > 0 && negative:
			b.WriteString(" - ")
		case i > 0:
			b.WriteString(" + ")
		}

		unit := c.Equal(c.One())
		switch {
		case t.Monomial.IsConstant():
			b.WriteString(c.String())
		case unit:
			b.WriteString(o.formatMonomial(t.Monomial))
		default:
			fmt.Fprintf(&b, "%s * %s", c.String(), o.formatMonomial(t.Monomial))
		}
	}

	return b.String()
}

// String renders p with the default x_i variable names.
func (p Polynomial[F, O]) String() string {
	return p.Format()
}

// String renders the set one member per line, in canonical order, wrapped
// in braces.
func (s *Set[F, O]) String() string {
	var b strings.Builder
	b.WriteString("{\n")
	for _, p := range s.polys {
		fmt.Fprintf(&b, "  %s\n", p)
	}
	b.WriteString("}")

	return b.String()
}
