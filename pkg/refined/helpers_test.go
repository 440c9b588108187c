package refined_test

import (
	"math"

	"pgregory.net/rapid"

	"github.com/dmitrymomot/refined/pkg/refined"
)

// value is the method set shared by every generated kind.
type value[T any, P refined.Number] interface {
	Unwrap() P
	String() string
	Compare(other T) int
}

var (
	negZero32 = float32(math.Copysign(0, -1))
	negZero64 = math.Copysign(0, -1)
	nan32     = float32(math.NaN())
	inf32     = float32(math.Inf(1))
)

// anyValue draws primitives of P, mixing uniform values with the edge
// cases refinements care about: zeros of both signs, infinities, NaN and
// the primitive's extremes.
func anyValue[P refined.Number]() *rapid.Generator[P] {
	var zero P
	var g any
	switch any(zero).(type) {
	case int32:
		g = rapid.OneOf(
			rapid.Int32(),
			rapid.SampledFrom([]int32{0, 1, -1, math.MinInt32, math.MaxInt32}),
		)
	case int64:
		g = rapid.OneOf(
			rapid.Int64(),
			rapid.SampledFrom([]int64{0, 1, -1, math.MinInt64, math.MaxInt64}),
		)
	case float32:
		g = rapid.OneOf(
			rapid.Float32(),
			rapid.Map(rapid.Uint32(), math.Float32frombits),
			rapid.SampledFrom([]float32{
				0, negZero32, 1, -1, 0.5, -0.5, inf32, -inf32, nan32,
				math.MaxFloat32, -math.MaxFloat32,
				math.SmallestNonzeroFloat32, -math.SmallestNonzeroFloat32,
			}),
		)
	default:
		g = rapid.OneOf(
			rapid.Float64(),
			rapid.Map(rapid.Uint64(), math.Float64frombits),
			rapid.SampledFrom([]float64{
				0, negZero64, 1, -1, 0.5, -0.5, math.Inf(1), math.Inf(-1), math.NaN(),
				math.MaxFloat64, -math.MaxFloat64,
				math.SmallestNonzeroFloat64, -math.SmallestNonzeroFloat64,
			}),
		)
	}
	return g.(*rapid.Generator[P])
}

// same reports whether a and b are the same primitive value, telling
// signed zeros apart.
func same[P refined.Number](a, b P) bool {
	return a == b && math.Signbit(float64(a)) == math.Signbit(float64(b))
}

func isNeg[P refined.Number](v P) bool     { return v < 0 }
func isNegZ[P refined.Number](v P) bool    { return v <= 0 }
func isPos[P refined.Number](v P) bool     { return v > 0 }
func isPosZ[P refined.Number](v P) bool    { return v >= 0 }
func isNonZero[P refined.Number](v P) bool { return v != 0 && !math.IsNaN(float64(v)) }

// panicValue runs f and returns what it panicked with, or nil.
func panicValue(f func()) (p any) {
	defer func() { p = recover() }()
	f()
	return nil
}
