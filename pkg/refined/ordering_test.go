package refined_test

import (
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"

	"github.com/dmitrymomot/refined/pkg/refined"
)

func TestSort(t *testing.T) {
	t.Parallel()

	s := []refined.PosInt{
		refined.PosIntKind.EnsuringValid(3),
		refined.PosIntKind.EnsuringValid(1),
		refined.PosIntKind.EnsuringValid(2),
	}
	assert.False(t, refined.IsSorted(s))
	refined.Sort(s)
	assert.True(t, refined.IsSorted(s))
	assert.Equal(t, []int32{1, 2, 3}, unwrapAll[int32](s))
}

func TestSort_MethodExpression(t *testing.T) {
	t.Parallel()

	s := []refined.NegDouble{
		refined.NegDoubleKind.EnsuringValid(-0.5),
		refined.NegDoubleKind.MinValue(),
		refined.NegDoubleKind.EnsuringValid(-2),
	}
	slices.SortFunc(s, refined.NegDouble.Compare)
	assert.Equal(t, []float64{math.Inf(-1), -2, -0.5}, unwrapAll[float64](s))
}

func TestSort_MatchesPrimitiveOrder(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		raw := rapid.SliceOf(anyValue[int64]().Filter(refined.NonZeroLongKind.IsValid)).Draw(t, "values")

		kinds := make([]refined.NonZeroLong, 0, len(raw))
		for _, v := range raw {
			kinds = append(kinds, refined.NonZeroLongKind.EnsuringValid(v))
		}
		refined.Sort(kinds)
		slices.Sort(raw)

		if !slices.Equal(raw, unwrapAll[int64](kinds)) {
			t.Fatalf("sorted %v, want %v", unwrapAll[int64](kinds), raw)
		}
	})
}

func TestMinMax(t *testing.T) {
	t.Parallel()

	a := refined.PosZFloatKind.EnsuringValid(2)
	b := refined.PosZFloatKind.EnsuringValid(0)
	c := refined.PosZFloatKind.EnsuringValid(9.5)

	assert.Equal(t, b, refined.Min(a, b, c))
	assert.Equal(t, c, refined.Max(a, b, c))
	assert.Equal(t, a, refined.Min(a))
	assert.Equal(t, b, a.Min(b))
	assert.Equal(t, a, a.Max(b))
}

func TestCompare(t *testing.T) {
	t.Parallel()

	rapid.Check(t, func(t *rapid.T) {
		x := anyValue[float32]().Filter(refined.NonZeroFloatKind.IsValid).Draw(t, "x")
		y := anyValue[float32]().Filter(refined.NonZeroFloatKind.IsValid).Draw(t, "y")
		a, b := refined.NonZeroFloatKind.EnsuringValid(x), refined.NonZeroFloatKind.EnsuringValid(y)

		want := 0
		switch {
		case x < y:
			want = -1
		case x > y:
			want = 1
		}
		if got := a.Compare(b); got != want {
			t.Fatalf("Compare(%v, %v) = %d, want %d", x, y, got, want)
		}
		if a.Equal(b) != (x == y) {
			t.Fatalf("Equal(%v, %v)", x, y)
		}
		if a.Lt(y) != (x < y) || a.Le(y) != (x <= y) || a.Gt(y) != (x > y) || a.Ge(y) != (x >= y) {
			t.Fatalf("comparison operators disagree for %v and %v", x, y)
		}
	})
}

func unwrapAll[P refined.Number, T refined.Refined[P]](s []T) []P {
	out := make([]P, 0, len(s))
	for _, v := range s {
		out = append(out, v.Unwrap())
	}
	return out
}
