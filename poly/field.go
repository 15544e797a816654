package poly

// Field is the coefficient contract: a value type supplying the field
// operations, both identities, equality and a canonical order. The
// self-referential constraint (F's methods consume and produce F) keeps
// every polynomial monomorphised over a single concrete coefficient type.
//
// Arithmetic is fallible so exact implementations can surface overflow
// instead of wrapping silently; implementations over a domain that cannot
// fail simply always return a nil error.
type Field[F any] interface {
	// Add, Sub, Mul and Div are the ring/field operations.
	Add(F) (F, error)
	Sub(F) (F, error)
	Mul(F) (F, error)
	Div(F) (F, error)

	// Neg returns the additive inverse, Inv the multiplicative one.
	Neg() (F, error)
	Inv() (F, error)

	// Zero and One return the identities; both must be callable on the
	// zero value of F.
	Zero() F
	One() F

	// IsZero and Equal decide equality structurally and in O(1) against
	// the additive identity.
	IsZero() bool
	Equal(F) bool

	// Cmp is a deterministic total order used for canonical sequences
	// (set ordering, formatting signs). It must place negatives below
	// Zero() and need not agree with any numeric order beyond that.
	Cmp(F) int

	// String renders the coefficient for diagnostics.
	String() string
}
