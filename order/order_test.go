// Package order_test validates the four comparators: admissibility spot
// checks and the discriminating examples that tell them apart.
package order_test

import (
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/Phibonoci/groebner/monomial"
	"github.com/Phibonoci/groebner/order"
)

func mono(t *testing.T, degrees ...monomial.Degree) monomial.Monomial {
	t.Helper()
	m, err := monomial.New(degrees...)
	require.NoError(t, err)

	return m
}

// sortedDesc returns the monomials sorted from largest to smallest under o.
func sortedDesc(o order.Order, ms []monomial.Monomial) []monomial.Monomial {
	out := append([]monomial.Monomial(nil), ms...)
	sort.SliceStable(out, func(i, j int) bool { return o.Less(out[j], out[i]) })

	return out
}

func TestLex_Basics(t *testing.T) {
	var lex order.Lex

	// x_0 dominates any power of later variables.
	require.True(t, lex.Less(mono(t, 0, 100), mono(t, 1)))
	// 1 is the minimum.
	require.True(t, lex.Less(monomial.One(), mono(t, 0, 1)))
	// Irreflexive.
	require.False(t, lex.Less(mono(t, 1, 2), mono(t, 1, 2)))
}

func TestRevLex_IsReverseOfLex(t *testing.T) {
	var lex order.Lex
	var rev order.RevLex

	a, b := mono(t, 1), mono(t, 0, 100)
	require.Equal(t, lex.Less(a, b), rev.Less(b, a))
	// 1 is the MAXIMUM under RevLex: not a well-order.
	require.True(t, rev.Less(mono(t, 1), monomial.One()))
}

func TestGrLex_DegreeFirst(t *testing.T) {
	var grlex order.GrLex

	// Degree decides before position.
	require.True(t, grlex.Less(mono(t, 1), mono(t, 0, 1, 1)))
	// Equal degrees fall back to Lex.
	require.True(t, grlex.Less(mono(t, 1, 1), mono(t, 2)))
}

// The terms of x₀²x₁²x₂² + x₀⁶ + x₀x₁²x₂⁴ + x₀x₁²x₂³
// in high-to-low order.
func TestOrdering_SpecScenario(t *testing.T) {
	terms := []monomial.Monomial{
		mono(t, 2, 2, 2),
		mono(t, 6),
		mono(t, 1, 2, 4),
		mono(t, 1, 2, 3),
	}

	lexWant := []monomial.Monomial{
		mono(t, 6),
		mono(t, 2, 2, 2),
		mono(t, 1, 2, 4),
		mono(t, 1, 2, 3),
	}
	require.Equal(t, lexWant, sortedDesc(order.Lex{}, terms))

	grlexWant := []monomial.Monomial{
		mono(t, 1, 2, 4),
		mono(t, 6),
		mono(t, 2, 2, 2),
		mono(t, 1, 2, 3),
	}
	require.Equal(t, grlexWant, sortedDesc(order.GrLex{}, terms))
}

func TestGrevLex_ConventionalTieBreak(t *testing.T) {
	var grevlex order.GrevLex

	// Same total degree 3: x_0*x_1^2 beats x_0^2*x_2 because its exponent
	// in the last differing variable (x_2) is smaller. Lex and GrLex order
	// these two the other way around.
	xy2 := mono(t, 1, 2)
	x2z := mono(t, 2, 0, 1)
	require.True(t, grevlex.Less(x2z, xy2))
	require.True(t, order.GrLex{}.Less(xy2, x2z))
	require.True(t, order.Lex{}.Less(xy2, x2z))

	// Degree still decides first.
	require.True(t, grevlex.Less(mono(t, 2), mono(t, 1, 1, 1)))

	// The canonical degree-3 chain in three variables, largest first:
	// x³ > x²y > xy² > y³ > x²z > xyz > y²z > xz² > yz² > z³.
	want := []monomial.Monomial{
		mono(t, 3),
		mono(t, 2, 1),
		mono(t, 1, 2),
		mono(t, 0, 3),
		mono(t, 2, 0, 1),
		mono(t, 1, 1, 1),
		mono(t, 0, 2, 1),
		mono(t, 1, 0, 2),
		mono(t, 0, 1, 2),
		mono(t, 0, 0, 3),
	}
	shuffled := []monomial.Monomial{
		mono(t, 0, 1, 2), mono(t, 3), mono(t, 1, 1, 1), mono(t, 0, 3),
		mono(t, 2, 0, 1), mono(t, 1, 0, 2), mono(t, 2, 1), mono(t, 0, 0, 3),
		mono(t, 1, 2), mono(t, 0, 2, 1),
	}
	require.Equal(t, want, sortedDesc(order.GrevLex{}, shuffled))
}

// Admissibility: a ≺ b implies a·c ≺ b·c, and 1 is the minimum.
func TestAdmissibility(t *testing.T) {
	orders := map[string]order.Order{
		"lex":     order.Lex{},
		"grlex":   order.GrLex{},
		"grevlex": order.GrevLex{},
	}

	samples := []monomial.Monomial{
		monomial.One(),
		mono(t, 1),
		mono(t, 0, 1),
		mono(t, 2, 1),
		mono(t, 1, 0, 3),
		mono(t, 0, 2, 2),
	}

	for name, o := range orders {
		t.Run(name, func(t *testing.T) {
			for _, a := range samples {
				if !a.Equal(monomial.One()) {
					require.True(t, o.Less(monomial.One(), a), "1 must be minimal")
				}
				for _, b := range samples {
					if !o.Less(a, b) {
						continue
					}
					for _, c := range samples {
						ac, err := a.Mul(c)
						require.NoError(t, err)
						bc, err := b.Mul(c)
						require.NoError(t, err)
						require.True(t, o.Less(ac, bc),
							"%v < %v must survive multiplication by %v", a, b, c)
					}
				}
			}
		})
	}
}
