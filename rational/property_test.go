package rational_test

import (
	"testing"

	"pgregory.net/rapid"

	"github.com/Phibonoci/groebner/rational"
)

// drawRational draws a rational with components small enough that a few
// chained operations cannot overflow int64, so the properties below observe
// algebra, not the overflow guard.
func drawRational(t *rapid.T, label string) rational.Rational[int64] {
	num := rapid.Int64Range(-1000, 1000).Draw(t, label+"_num")
	den := rapid.Int64Range(1, 1000).Draw(t, label+"_den")

	r, err := rational.NewFrac(num, den)
	if err != nil {
		t.Fatalf("NewFrac(%d, %d): %v", num, den, err)
	}

	return r
}

// requireReduced asserts the normal-form invariant: den > 0 and
// gcd(|num|, den) = 1.
func requireReduced(t *rapid.T, r rational.Rational[int64]) {
	if r.Den() <= 0 {
		t.Fatalf("denominator not positive: %v", r)
	}

	a, b := r.Num(), r.Den()
	if a < 0 {
		a = -a
	}
	for b != 0 {
		a, b = b, a%b
	}
	if a != 1 && !r.IsZero() {
		t.Fatalf("not in lowest terms: %v", r)
	}
	if r.IsZero() && r.Den() != 1 {
		t.Fatalf("zero not canonical: %v", r)
	}
}

func TestOperationsPreserveNormalForm(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawRational(t, "a")
		b := drawRational(t, "b")

		sum, err := a.Add(b)
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		requireReduced(t, sum)

		prod, err := a.Mul(b)
		if err != nil {
			t.Fatalf("mul: %v", err)
		}
		requireReduced(t, prod)

		if !b.IsZero() {
			quot, err := a.Div(b)
			if err != nil {
				t.Fatalf("div: %v", err)
			}
			requireReduced(t, quot)
		}
	})
}

func TestFieldAxiomsOnSamples(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawRational(t, "a")
		b := drawRational(t, "b")

		// Commutativity of addition.
		ab, err := a.Add(b)
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		ba, err := b.Add(a)
		if err != nil {
			t.Fatalf("add: %v", err)
		}
		if !ab.Equal(ba) {
			t.Fatalf("a+b != b+a: %v vs %v", ab, ba)
		}

		// a - a = 0 and, for nonzero a, a * a⁻¹ = 1.
		diff, err := a.Sub(a)
		if err != nil {
			t.Fatalf("sub: %v", err)
		}
		if !diff.IsZero() {
			t.Fatalf("a-a != 0: %v", diff)
		}

		if !a.IsZero() {
			inv, err := a.Inv()
			if err != nil {
				t.Fatalf("inv: %v", err)
			}
			unit, err := a.Mul(inv)
			if err != nil {
				t.Fatalf("mul: %v", err)
			}
			if !unit.Equal(a.One()) {
				t.Fatalf("a*a^-1 != 1: %v", unit)
			}
		}
	})
}

func TestNumericOrderAgreesWithFloats(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		a := drawRational(t, "a")
		b := drawRational(t, "b")

		c, err := a.Compare(b)
		if err != nil {
			t.Fatalf("compare: %v", err)
		}
		// Components are ≤ 1000, so the float comparison is exact enough
		// to discriminate any two distinct draws.
		fa, fb := a.Float64(), b.Float64()
		switch {
		case c < 0 && !(fa < fb):
			t.Fatalf("%v < %v expected", a, b)
		case c > 0 && !(fa > fb):
			t.Fatalf("%v > %v expected", a, b)
		case c == 0 && fa != fb:
			t.Fatalf("%v == %v expected", a, b)
		}
	})
}
