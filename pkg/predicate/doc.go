// Package predicate defines the sign predicates that refinement kinds are
// built on: strictly negative, negative-or-zero, strictly positive,
// positive-or-zero and non-zero.
//
// Each predicate is a pure, total, allocation-free comparison against zero.
// The same five families are reused for every primitive type, so a Rule is
// a small enum rather than an interface:
//
//	predicate.Holds(predicate.Negative, int32(-4))    // true
//	predicate.Holds(predicate.PositiveOrZero, math.Copysign(0, -1)) // true
//	predicate.IsNonZero(math.NaN())                   // false
//
// # Floating point
//
// All predicates use ordered IEEE-754 comparisons. NaN is unordered, so it
// never satisfies any family (non-zero is defined as v < 0 || v > 0). Both
// signed zeros compare equal to zero: they are rejected by the strict
// families and non-zero, and accepted by the zero-inclusive families.
//
// # Implication
//
// Rule.Implies reports whether every value satisfying one family also
// satisfies another. Refinement kinds only offer widening conversions along
// implied edges, which is what makes those conversions total.
package predicate
