package refined_test

import (
	"errors"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dmitrymomot/refined/pkg/predicate"
	"github.com/dmitrymomot/refined/pkg/refined"
)

type kindCase interface {
	name() string
	typ() reflect.Type
	run(t *testing.T)
}

type propCase[T value[T, P], P refined.Number] struct {
	kind refined.Kind[T, P]
	rule predicate.Rule
	want func(P) bool
}

func newCase[T value[T, P], P refined.Number](k refined.Kind[T, P], rule predicate.Rule, want func(P) bool) kindCase {
	return propCase[T, P]{kind: k, rule: rule, want: want}
}

func (c propCase[T, P]) name() string { return c.kind.Name() }

func (c propCase[T, P]) typ() reflect.Type { return reflect.TypeFor[T]() }

func (c propCase[T, P]) run(t *testing.T) {
	k := c.kind
	assert.Equal(t, c.rule, k.Rule())

	t.Run("zero value is valid", func(t *testing.T) {
		var zero T
		assert.True(t, k.IsValid(zero.Unwrap()), "%v", zero.Unwrap())
		assert.True(t, strings.HasPrefix(zero.String(), k.Name()+"("), zero.String())
	})

	t.Run("extremes are valid", func(t *testing.T) {
		lo, hi := k.MinValue(), k.MaxValue()
		assert.True(t, k.IsValid(lo.Unwrap()))
		assert.True(t, k.IsValid(hi.Unwrap()))
		assert.LessOrEqual(t, lo.Compare(hi), 0)
	})

	t.Run("properties", rapid.MakeCheck(func(t *rapid.T) {
		v := anyValue[P]().Draw(t, "v")
		valid := k.IsValid(v)
		require.Equal(t, c.want(v), valid, "IsValid(%v)", v)

		got, ok := k.From(v)
		require.Equal(t, valid, ok, "From")
		if ok {
			assert.True(t, same(v, got.Unwrap()), "From(%v) = %v", v, got.Unwrap())
			assert.LessOrEqual(t, k.MinValue().Compare(got), 0, "MinValue <= %v", v)
			assert.GreaterOrEqual(t, k.MaxValue().Compare(got), 0, "MaxValue >= %v", v)
		}

		opt, ok := k.Option(v).Get()
		assert.Equal(t, valid, ok, "Option")
		if ok {
			assert.True(t, same(v, opt.Unwrap()))
		}

		tv, err := k.TryingValid(v)
		if valid {
			require.NoError(t, err)
			assert.True(t, same(v, tv.Unwrap()))
		} else {
			require.ErrorIs(t, err, refined.ErrInvalidValue)
			var ive *refined.InvalidValueError
			require.True(t, errors.As(err, &ive))
			assert.Equal(t, k.Name(), ive.Kind)
			assert.True(t, same(v, ive.Value.(P)) || math.IsNaN(float64(v)))
		}

		onBad := func(p P) string { return "rejected" }
		pass := refined.PassOrElse(k, v, onBad)
		assert.Equal(t, valid, pass.IsPass(), "PassOrElse")
		if msg, failed := pass.Error(); failed {
			assert.Equal(t, "rejected", msg)
		}

		good := refined.GoodOrElse(k, v, onBad)
		assert.Equal(t, valid, good.IsGood(), "GoodOrElse")
		if g, ok := good.Get(); ok {
			assert.True(t, same(v, g.Unwrap()))
		}

		right := refined.RightOrElse(k, v, onBad)
		assert.Equal(t, valid, right.IsRight(), "RightOrElse")
		if l, ok := right.Left(); ok {
			assert.Equal(t, "rejected", l)
		}

		called := false
		fallback := k.MaxValue()
		fromOrElse := k.FromOrElse(v, func() T {
			called = true
			return fallback
		})
		assert.Equal(t, !valid, called, "FromOrElse fallback is lazy")
		if valid {
			assert.True(t, same(v, fromOrElse.Unwrap()))
		} else {
			assert.Equal(t, 0, fromOrElse.Compare(fallback))
		}

		p := panicValue(func() {
			ev := k.EnsuringValid(v)
			assert.True(t, same(v, ev.Unwrap()))
		})
		if valid {
			assert.Nil(t, p, "EnsuringValid(%v)", v)
		} else {
			assert.IsType(t, &refined.InvalidValueError{}, p, "EnsuringValid(%v)", v)
		}
	}))
}

func allKinds() []kindCase {
	return []kindCase{
		newCase(refined.NegIntKind, predicate.Negative, isNeg[int32]),
		newCase(refined.NegLongKind, predicate.Negative, isNeg[int64]),
		newCase(refined.NegFloatKind, predicate.Negative, isNeg[float32]),
		newCase(refined.NegDoubleKind, predicate.Negative, isNeg[float64]),
		newCase(refined.NegZIntKind, predicate.NegativeOrZero, isNegZ[int32]),
		newCase(refined.NegZLongKind, predicate.NegativeOrZero, isNegZ[int64]),
		newCase(refined.NegZFloatKind, predicate.NegativeOrZero, isNegZ[float32]),
		newCase(refined.NegZDoubleKind, predicate.NegativeOrZero, isNegZ[float64]),
		newCase(refined.PosIntKind, predicate.Positive, isPos[int32]),
		newCase(refined.PosLongKind, predicate.Positive, isPos[int64]),
		newCase(refined.PosFloatKind, predicate.Positive, isPos[float32]),
		newCase(refined.PosDoubleKind, predicate.Positive, isPos[float64]),
		newCase(refined.PosZIntKind, predicate.PositiveOrZero, isPosZ[int32]),
		newCase(refined.PosZLongKind, predicate.PositiveOrZero, isPosZ[int64]),
		newCase(refined.PosZFloatKind, predicate.PositiveOrZero, isPosZ[float32]),
		newCase(refined.PosZDoubleKind, predicate.PositiveOrZero, isPosZ[float64]),
		newCase(refined.NonZeroIntKind, predicate.NonZero, isNonZero[int32]),
		newCase(refined.NonZeroLongKind, predicate.NonZero, isNonZero[int64]),
		newCase(refined.NonZeroFloatKind, predicate.NonZero, isNonZero[float32]),
		newCase(refined.NonZeroDoubleKind, predicate.NonZero, isNonZero[float64]),
	}
}

func TestKinds(t *testing.T) {
	t.Parallel()

	for _, c := range allKinds() {
		t.Run(c.name(), func(t *testing.T) {
			t.Parallel()
			c.run(t)
		})
	}
}

func TestKind_Extremes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		min, max float64
	}{
		{"NegLong", math.MinInt64, -1},
		{"NegZInt", math.MinInt32, 0},
		{"PosInt", 1, math.MaxInt32},
		{"PosZLong", 0, math.MaxInt64},
		{"NonZeroInt", math.MinInt32, math.MaxInt32},
		{"NegDouble", math.Inf(-1), -math.SmallestNonzeroFloat64},
		{"PosFloat", math.SmallestNonzeroFloat32, math.Inf(1)},
		{"PosZDouble", 0, math.Inf(1)},
		{"NonZeroFloat", math.Inf(-1), math.Inf(1)},
	}
	got := map[string][2]float64{
		"NegLong":      {float64(refined.NegLongKind.MinValue().Unwrap()), float64(refined.NegLongKind.MaxValue().Unwrap())},
		"NegZInt":      {float64(refined.NegZIntKind.MinValue().Unwrap()), float64(refined.NegZIntKind.MaxValue().Unwrap())},
		"PosInt":       {float64(refined.PosIntKind.MinValue().Unwrap()), float64(refined.PosIntKind.MaxValue().Unwrap())},
		"PosZLong":     {float64(refined.PosZLongKind.MinValue().Unwrap()), float64(refined.PosZLongKind.MaxValue().Unwrap())},
		"NonZeroInt":   {float64(refined.NonZeroIntKind.MinValue().Unwrap()), float64(refined.NonZeroIntKind.MaxValue().Unwrap())},
		"NegDouble":    {refined.NegDoubleKind.MinValue().Unwrap(), refined.NegDoubleKind.MaxValue().Unwrap()},
		"PosFloat":     {float64(refined.PosFloatKind.MinValue().Unwrap()), float64(refined.PosFloatKind.MaxValue().Unwrap())},
		"PosZDouble":   {refined.PosZDoubleKind.MinValue().Unwrap(), refined.PosZDoubleKind.MaxValue().Unwrap()},
		"NonZeroFloat": {float64(refined.NonZeroFloatKind.MinValue().Unwrap()), float64(refined.NonZeroFloatKind.MaxValue().Unwrap())},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.min, got[tt.name][0], "%s.MinValue", tt.name)
		assert.Equal(t, tt.max, got[tt.name][1], "%s.MaxValue", tt.name)
	}
}

func TestKind_Infinities(t *testing.T) {
	t.Parallel()

	inf, ok := refined.PosDoubleKind.PositiveInfinity()
	require.True(t, ok)
	assert.True(t, inf.IsPosInfinity())

	_, ok = refined.PosDoubleKind.NegativeInfinity()
	assert.False(t, ok)

	ninf, ok := refined.NegFloatKind.NegativeInfinity()
	require.True(t, ok)
	assert.True(t, ninf.IsNegInfinity())
	assert.Equal(t, "NegFloat(-Inf)", ninf.String())

	_, ok = refined.NonZeroDoubleKind.PositiveInfinity()
	assert.True(t, ok)
	_, ok = refined.NonZeroDoubleKind.NegativeInfinity()
	assert.True(t, ok)

	_, ok = refined.PosIntKind.PositiveInfinity()
	assert.False(t, ok, "integer kinds have no infinities")
}

func TestKind_SignedZeros(t *testing.T) {
	t.Parallel()

	for _, z := range []float64{0, negZero64} {
		assert.False(t, refined.NegDoubleKind.IsValid(z))
		assert.False(t, refined.PosDoubleKind.IsValid(z))
		assert.False(t, refined.NonZeroDoubleKind.IsValid(z))
		assert.True(t, refined.NegZDoubleKind.IsValid(z))
		assert.True(t, refined.PosZDoubleKind.IsValid(z))
	}

	nz := refined.PosZFloatKind.EnsuringValid(negZero32)
	assert.True(t, math.Signbit(float64(nz.Unwrap())), "negative zero is kept as is")
}

func TestKind_NaN(t *testing.T) {
	t.Parallel()

	for _, c := range []bool{
		refined.NegFloatKind.IsValid(nan32),
		refined.NegZFloatKind.IsValid(nan32),
		refined.PosFloatKind.IsValid(nan32),
		refined.PosZFloatKind.IsValid(nan32),
		refined.NonZeroFloatKind.IsValid(nan32),
		refined.NegDoubleKind.IsValid(math.NaN()),
		refined.NegZDoubleKind.IsValid(math.NaN()),
		refined.PosDoubleKind.IsValid(math.NaN()),
		refined.PosZDoubleKind.IsValid(math.NaN()),
		refined.NonZeroDoubleKind.IsValid(math.NaN()),
	} {
		assert.False(t, c)
	}
}
