package poly

import (
	"fmt"
	"sort"

	"github.com/Phibonoci/groebner/order"
)

// Set is a finite set of polynomials over the same (F, O), kept sorted
// under the canonical Compare so iteration is deterministic across runs.
// Insertion deduplicates structurally-equal polynomials; the zero
// polynomial is a legal member only where a caller explicitly allows it —
// the reduction kernel never inserts one. The zero value is an empty set
// ready to use.
type Set[F Field[F], O order.Order] struct {
	polys []Polynomial[F, O]
}

// NewSet builds a set from the given polynomials, deduplicating as it goes.
func NewSet[F Field[F], O order.Order](polys ...Polynomial[F, O]) *Set[F, O] {
	s := &Set[F, O]{}
	for _, p := range polys {
		s.Insert(p)
	}

	return s
}

// search returns the insertion index of p and whether an equal member
// already sits there.
func (s *Set[F, O]) search(p Polynomial[F, O]) (int, bool) {
	i := sort.Search(len(s.polys), func(i int) bool {
		return s.polys[i].Compare(p) >= 0
	})

	return i, i < len(s.polys) && s.polys[i].Compare(p) == 0
}

// Insert adds p unless a structurally-equal member is already present.
// It reports whether the set grew.
func (s *Set[F, O]) Insert(p Polynomial[F, O]) bool {
	i, found := s.search(p)
	if found {
		return false
	}

	s.polys = append(s.polys, Polynomial[F, O]{})
	copy(s.polys[i+1:], s.polys[i:])
	s.polys[i] = p

	return true
}

// Contains reports whether a structurally-equal member is present.
func (s *Set[F, O]) Contains(p Polynomial[F, O]) bool {
	_, found := s.search(p)

	return found
}

// Remove deletes the member structurally equal to p, reporting whether it
// was present.
func (s *Set[F, O]) Remove(p Polynomial[F, O]) bool {
	i, found := s.search(p)
	if !found {
		return false
	}
	s.polys = append(s.polys[:i], s.polys[i+1:]...)

	return true
}

// Len returns the number of members.
func (s *Set[F, O]) Len() int { return len(s.polys) }

// IsEmpty reports whether the set has no members.
func (s *Set[F, O]) IsEmpty() bool { return len(s.polys) == 0 }

// At returns the i-th member in canonical order, or ErrIndexOutOfRange.
func (s *Set[F, O]) At(i int) (Polynomial[F, O], error) {
	if i < 0 || i >= len(s.polys) {
		return Polynomial[F, O]{}, fmt.Errorf("poly: set member %d of %d: %w", i, len(s.polys), ErrIndexOutOfRange)
	}

	return s.polys[i], nil
}

// ExtractMin removes and returns the first member in canonical order, or
// ErrIndexOutOfRange on an empty set.
func (s *Set[F, O]) ExtractMin() (Polynomial[F, O], error) {
	if len(s.polys) == 0 {
		return Polynomial[F, O]{}, fmt.Errorf("poly: extract from empty set: %w", ErrIndexOutOfRange)
	}

	p := s.polys[0]
	s.polys = s.polys[1:]

	return p, nil
}

// Merge inserts every member of other, deduplicating against s.
func (s *Set[F, O]) Merge(other *Set[F, O]) {
	for _, p := range other.polys {
		s.Insert(p)
	}
}

// Polynomials returns a copy of the members in canonical order.
func (s *Set[F, O]) Polynomials() []Polynomial[F, O] {
	return append([]Polynomial[F, O](nil), s.polys...)
}

// Clone returns a deep copy of the set.
func (s *Set[F, O]) Clone() *Set[F, O] {
	return &Set[F, O]{polys: append([]Polynomial[F, O](nil), s.polys...)}
}

// Equal reports whether both sets hold structurally-equal members in the
// same canonical order.
func (s *Set[F, O]) Equal(other *Set[F, O]) bool {
	if len(s.polys) != len(other.polys) {
		return false
	}
	for i, p := range s.polys {
		if !p.Equal(other.polys[i]) {
			return false
		}
	}

	return true
}
