package poly

// CheckInvariants exposes the debug invariant check to the test package:
// it panics when any stored term carries a zero coefficient.
func (p Polynomial[F, O]) CheckInvariants() {
	p.checkInvariants()
}
