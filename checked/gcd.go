package checked

import "fmt"

// Gcd returns the greatest common divisor of |a| and |b| by Euclid's
// algorithm. Gcd(0, 0) is 0. Taking an absolute value of the minimum of I
// is itself an overflow and is reported as such.
func Gcd[I Signed](a, b I) (I, error) {
	var err error
	if a < 0 {
		if a, err = Neg(a); err != nil {
			return 0, fmt.Errorf("gcd: %w", err)
		}
	}
	if b < 0 {
		if b, err = Neg(b); err != nil {
			return 0, fmt.Errorf("gcd: %w", err)
		}
	}

	for b != 0 {
		a, b = b, a%b
	}

	return a, nil
}

// Lcm returns the least common multiple of |a| and |b|, computed as
// a/gcd(a,b)*b so the reduction lands before the multiplication.
// Lcm with a zero operand is 0.
func Lcm[I Signed](a, b I) (I, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}

	g, err := Gcd(a, b)
	if err != nil {
		return 0, fmt.Errorf("lcm: %w", err)
	}

	var q I
	if q, err = Div(a, g); err != nil {
		return 0, fmt.Errorf("lcm: %w", err)
	}
	if q < 0 {
		if q, err = Neg(q); err != nil {
			return 0, fmt.Errorf("lcm: %w", err)
		}
	}
	if b < 0 {
		if b, err = Neg(b); err != nil {
			return 0, fmt.Errorf("lcm: %w", err)
		}
	}

	res, err := Mul(q, b)
	if err != nil {
		return 0, fmt.Errorf("lcm: %w", err)
	}

	return res, nil
}
