package result_test

import (
	"errors"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrymomot/refined/pkg/result"
)

func TestOption(t *testing.T) {
	t.Parallel()

	t.Run("some holds a value", func(t *testing.T) {
		o := result.Some(5)
		v, ok := o.Get()
		assert.True(t, ok)
		assert.Equal(t, 5, v)
		assert.True(t, o.IsSome())
		assert.False(t, o.IsNone())
		assert.Equal(t, 5, o.OrElse(9))
	})

	t.Run("none is empty", func(t *testing.T) {
		o := result.None[int]()
		_, ok := o.Get()
		assert.False(t, ok)
		assert.True(t, o.IsNone())
		assert.Equal(t, 9, o.OrElse(9))
	})

	t.Run("option of pair", func(t *testing.T) {
		assert.True(t, result.OptionOf(1, true).IsSome())
		assert.True(t, result.OptionOf(1, false).IsNone())
	})

	t.Run("map skips none", func(t *testing.T) {
		s := result.MapOption(result.Some(3), strconv.Itoa)
		assert.Equal(t, "3", s.OrElse(""))
		assert.True(t, result.MapOption(result.None[int](), strconv.Itoa).IsNone())
	})
}

func TestValidation(t *testing.T) {
	t.Parallel()

	pass := result.Pass[error]()
	assert.True(t, pass.IsPass())
	assert.False(t, pass.IsFail())
	_, failed := pass.Error()
	assert.False(t, failed)

	boom := errors.New("boom")
	fail := result.Fail(boom)
	assert.True(t, fail.IsFail())
	err, failed := fail.Error()
	assert.True(t, failed)
	assert.Equal(t, boom, err)

	assert.True(t, pass.And(pass).IsPass())
	assert.True(t, pass.And(fail).IsFail())
	first, _ := fail.And(result.Fail(errors.New("second"))).Error()
	assert.Equal(t, boom, first)
}

func TestOr(t *testing.T) {
	t.Parallel()

	good := result.Good[int, string](7)
	assert.True(t, good.IsGood())
	v, ok := good.Get()
	assert.True(t, ok)
	assert.Equal(t, 7, v)
	_, isBad := good.Bad()
	assert.False(t, isBad)

	bad := result.Bad[int]("nope")
	assert.True(t, bad.IsBad())
	b, isBad := bad.Bad()
	assert.True(t, isBad)
	assert.Equal(t, "nope", b)
	assert.Equal(t, -1, bad.GetOrElse(-1))

	describe := func(o result.Or[int, string]) string {
		return result.FoldOr(o, strconv.Itoa, func(s string) string { return "bad: " + s })
	}
	assert.Equal(t, "7", describe(good))
	assert.Equal(t, "bad: nope", describe(bad))
}

func TestEither(t *testing.T) {
	t.Parallel()

	right := result.Right[string](3)
	assert.True(t, right.IsRight())
	r, ok := right.Right()
	assert.True(t, ok)
	assert.Equal(t, 3, r)

	left := result.Left[string, int]("err")
	assert.True(t, left.IsLeft())
	l, ok := left.Left()
	assert.True(t, ok)
	assert.Equal(t, "err", l)

	swapped := left.Swap()
	s, ok := swapped.Right()
	assert.True(t, ok)
	assert.Equal(t, "err", s)

	n := result.FoldEither(right, func(string) int { return 0 }, func(v int) int { return v * 2 })
	assert.Equal(t, 6, n)
}
