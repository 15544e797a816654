// Package checked provides overflow-predicated arithmetic over signed
// machine integers.
//
// What
//
//   - Predicates NegWouldOverflow, AddWouldOverflow, SubWouldOverflow,
//     MulWouldOverflow and DivWouldOverflow answer, before the operation is
//     performed, whether it would leave the representable range of I.
//   - Operations Neg, Add, Sub, Mul and Div are total: when the matching
//     predicate is false they return the exact result; when it is true they
//     return ErrOverflow wrapped with the operation and its operands.
//   - Gcd and Lcm complete the toolkit needed by exact rational reduction;
//     Lcm is computed as a/gcd(a,b)*b, in that order, so the division lands
//     before the multiplication and no intermediate product can overflow
//     when the final result is representable.
//
// Why
//
//	Higher layers (rational coefficients, monomial exponents) must treat
//	every integer operation as exact. Silent wraparound would corrupt
//	coefficients and make equality-with-zero undecidable, so each operation
//	is a total but partial-correctness-checked function: the result is
//	either exact or an error, never wrong.
//
// Determinism
//
//	All predicates are constant-time, side-effect-free and depend only on
//	their operands and the limits of I.
//
// Complexity
//
//   - Predicates and operations: O(1)
//   - Gcd, Lcm: O(log min(|a|, |b|)) divisions
package checked
