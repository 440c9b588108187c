package refined

import (
	"fmt"
	"math"

	"github.com/dmitrymomot/refined/pkg/predicate"
	"github.com/dmitrymomot/refined/pkg/result"
)

// Number is the set of primitives refinement kinds are defined over:
// Int (int32), Long (int64), Float (float32) and Double (float64).
type Number interface {
	int32 | int64 | float32 | float64
}

// Refined is implemented by every kind in this package.
type Refined[P Number] interface {
	Unwrap() P
	String() string
}

// Kind is the companion of a refinement type T over primitive P. It is the
// only way to turn an untrusted P into a T, and every constructor it offers
// is a thin policy around the same predicate check.
//
// Kinds are created once per type by generated code (NegIntKind,
// PosDoubleKind, ...) and are safe for concurrent use.
type Kind[T any, P Number] struct {
	name string
	rule predicate.Rule
	wrap func(P) T
	min  P
	max  P
}

func newKind[T any, P Number](name string, rule predicate.Rule, wrap func(P) T) Kind[T, P] {
	lo, hi := extremes[P](rule)
	return Kind[T, P]{name: name, rule: rule, wrap: wrap, min: lo, max: hi}
}

// Name returns the type name, e.g. "NegInt".
func (k Kind[T, P]) Name() string { return k.name }

// Rule returns the predicate family of the kind.
func (k Kind[T, P]) Rule() predicate.Rule { return k.rule }

// IsValid reports whether v satisfies the kind's predicate.
func (k Kind[T, P]) IsValid(v P) bool { return predicate.Holds(k.rule, v) }

// From returns v as T and true, or the zero T and false when v is invalid.
func (k Kind[T, P]) From(v P) (T, bool) {
	if !k.IsValid(v) {
		var zero T
		return zero, false
	}
	return k.wrap(v), true
}

// Option is From packed into a result.Option.
func (k Kind[T, P]) Option(v P) result.Option[T] {
	t, ok := k.From(v)
	return result.OptionOf(t, ok)
}

// EnsuringValid returns v as T. The caller must already know v is valid:
// an invalid v is a programming error and panics with *InvalidValueError.
func (k Kind[T, P]) EnsuringValid(v P) T {
	if !k.IsValid(v) {
		panic(k.invalid(v))
	}
	return k.wrap(v)
}

// TryingValid returns v as T, or an *InvalidValueError describing v.
func (k Kind[T, P]) TryingValid(v P) (T, error) {
	if !k.IsValid(v) {
		var zero T
		return zero, k.invalid(v)
	}
	return k.wrap(v), nil
}

// FromOrElse returns v as T, or the result of fallback when v is invalid.
// fallback is only called on the invalid path.
func (k Kind[T, P]) FromOrElse(v P, fallback func() T) T {
	if !k.IsValid(v) {
		return fallback()
	}
	return k.wrap(v)
}

// MinValue returns the smallest valid value. Float kinds that admit -Inf return it.
func (k Kind[T, P]) MinValue() T { return k.wrap(k.min) }

// MaxValue returns the largest valid value. Float kinds that admit +Inf return it.
func (k Kind[T, P]) MaxValue() T { return k.wrap(k.max) }

// PositiveInfinity returns +Inf as T if the kind is a float kind admitting it.
func (k Kind[T, P]) PositiveInfinity() (T, bool) {
	return k.infinity(1)
}

// NegativeInfinity returns -Inf as T if the kind is a float kind admitting it.
func (k Kind[T, P]) NegativeInfinity() (T, bool) {
	return k.infinity(-1)
}

func (k Kind[T, P]) infinity(sign int) (T, bool) {
	var zero T
	if !isFloat[P]() {
		return zero, false
	}
	return k.From(P(math.Inf(sign)))
}

func (k Kind[T, P]) invalid(v P) *InvalidValueError {
	return NewInvalidValueError(k.name, v)
}

// PassOrElse returns Pass when v is valid for k, otherwise Fail(f(v)).
func PassOrElse[T any, P Number, E any](k Kind[T, P], v P, f func(P) E) result.Validation[E] {
	if !k.IsValid(v) {
		return result.Fail(f(v))
	}
	return result.Pass[E]()
}

// GoodOrElse returns Good(T) when v is valid for k, otherwise Bad(f(v)).
func GoodOrElse[T any, P Number, E any](k Kind[T, P], v P, f func(P) E) result.Or[T, E] {
	if !k.IsValid(v) {
		return result.Bad[T](f(v))
	}
	return result.Good[T, E](k.wrap(v))
}

// RightOrElse returns Right(T) when v is valid for k, otherwise Left(f(v)).
func RightOrElse[T any, P Number, E any](k Kind[T, P], v P, f func(P) E) result.Either[E, T] {
	if !k.IsValid(v) {
		return result.Left[E, T](f(v))
	}
	return result.Right[E](k.wrap(v))
}

// extremes returns the smallest and largest values of P satisfying r.
func extremes[P Number](r predicate.Rule) (lo, hi P) {
	lowest, highest, least := bounds[P]()
	switch r {
	case predicate.Negative:
		return lowest, -least
	case predicate.NegativeOrZero:
		return lowest, 0
	case predicate.Positive:
		return least, highest
	case predicate.PositiveOrZero:
		return 0, highest
	default:
		return lowest, highest
	}
}

// bounds returns the lowest and highest values of P and its smallest
// strictly positive value. Float bounds are the infinities.
func bounds[P Number]() (lowest, highest, least P) {
	switch any(lowest).(type) {
	case int32:
		var lo, hi int32 = math.MinInt32, math.MaxInt32
		return P(lo), P(hi), 1
	case int64:
		var lo, hi int64 = math.MinInt64, math.MaxInt64
		return P(lo), P(hi), 1
	case float32:
		var tiny float32 = math.SmallestNonzeroFloat32
		return P(math.Inf(-1)), P(math.Inf(1)), P(tiny)
	default:
		var tiny float64 = math.SmallestNonzeroFloat64
		return P(math.Inf(-1)), P(math.Inf(1)), P(tiny)
	}
}

func isFloat[P Number]() bool {
	var zero P
	switch any(zero).(type) {
	case float32, float64:
		return true
	default:
		return false
	}
}

// negate returns -v. It panics with ErrOverflow when v is the minimum of a
// signed integer primitive.
func negate[P Number](v P) P {
	n := -v
	if v != 0 && (n < 0) == (v < 0) {
		panic(fmt.Errorf("%w: -(%v)", ErrOverflow, v))
	}
	return n
}

// abs returns |v|. Negative zero becomes positive zero.
func abs[P Number](v P) P {
	if v < 0 {
		return negate(v)
	}
	if v == 0 {
		return 0
	}
	return v
}
