package order

import (
	"math/bits"

	"github.com/Phibonoci/groebner/monomial"
)

// Order is a strict total order on monomials, admissible with respect to
// multiplication. Implementations must be stateless value types: the
// polynomial layer instantiates them by their zero value.
type Order interface {
	// Less reports whether a precedes b, i.e. a is the smaller monomial.
	Less(a, b monomial.Monomial) bool
}

// Lex is the lexicographic order: the first variable where the exponents
// differ decides, smaller exponent first.
type Lex struct{}

// Less implements Order.
func (Lex) Less(a, b monomial.Monomial) bool {
	return a.Compare(b) < 0
}

// RevLex is the reverse of Lex. It is exposed because the canonical order
// set includes it, but it is not a well-order on monomials (1 is its
// maximum), so it cannot drive a terminating reduction on its own.
type RevLex struct{}

// Less implements Order.
func (RevLex) Less(a, b monomial.Monomial) bool {
	return b.Compare(a) < 0
}

// GrLex is the graded lexicographic order: smaller total degree first,
// ties broken by Lex.
type GrLex struct{}

// Less implements Order.
func (GrLex) Less(a, b monomial.Monomial) bool {
	da, db := degreeSum(a), degreeSum(b)
	if da != db {
		return degreeLess(da, db)
	}

	return a.Compare(b) < 0
}

// GrevLex is the graded reverse lexicographic order: smaller total degree
// first; on equal degrees the last variable where the exponents differ
// decides, and the monomial with the SMALLER exponent there is the LARGER
// monomial.
type GrevLex struct{}

// Less implements Order.
func (GrevLex) Less(a, b monomial.Monomial) bool {
	da, db := degreeSum(a), degreeSum(b)
	if da != db {
		return degreeLess(da, db)
	}

	for i := max(a.Len(), b.Len()) - 1; i >= 0; i-- {
		ad, bd := a.Degree(i), b.Degree(i)
		if ad != bd {
			return ad > bd
		}
	}

	return false
}

// degreeSum is the exponent sum used by the graded comparators, held in
// 128 bits as (carries, low word). Exponents are non-negative int64 values,
// so the sum cannot wrap even where it exceeds int64, and comparators
// cannot fail.
func degreeSum(m monomial.Monomial) [2]uint64 {
	var hi, lo, carry uint64
	for i := 0; i < m.Len(); i++ {
		lo, carry = bits.Add64(lo, uint64(m.Degree(i)), 0)
		hi += carry
	}

	return [2]uint64{hi, lo}
}

// degreeLess reports whether the degree sum da is below db.
func degreeLess(da, db [2]uint64) bool {
	if da[0] != db[0] {
		return da[0] < db[0]
	}

	return da[1] < db[1]
}
