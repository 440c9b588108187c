package predicate_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"

	"github.com/dmitrymomot/refined/pkg/predicate"
)

func TestHolds(t *testing.T) {
	t.Parallel()

	negZero := math.Copysign(0, -1)
	nan := math.NaN()

	tests := []struct {
		name     string
		rule     predicate.Rule
		value    float64
		expected bool
	}{
		{name: "negative accepts -1", rule: predicate.Negative, value: -1, expected: true},
		{name: "negative rejects zero", rule: predicate.Negative, value: 0, expected: false},
		{name: "negative rejects negative zero", rule: predicate.Negative, value: negZero, expected: false},
		{name: "negative rejects NaN", rule: predicate.Negative, value: nan, expected: false},
		{name: "negative accepts -Inf", rule: predicate.Negative, value: math.Inf(-1), expected: true},
		{name: "negative or zero accepts zero", rule: predicate.NegativeOrZero, value: 0, expected: true},
		{name: "negative or zero accepts negative zero", rule: predicate.NegativeOrZero, value: negZero, expected: true},
		{name: "negative or zero rejects NaN", rule: predicate.NegativeOrZero, value: nan, expected: false},
		{name: "positive accepts smallest subnormal", rule: predicate.Positive, value: math.SmallestNonzeroFloat64, expected: true},
		{name: "positive rejects zero", rule: predicate.Positive, value: 0, expected: false},
		{name: "positive or zero accepts negative zero", rule: predicate.PositiveOrZero, value: negZero, expected: true},
		{name: "positive or zero rejects -1", rule: predicate.PositiveOrZero, value: -1, expected: false},
		{name: "non-zero accepts -1", rule: predicate.NonZero, value: -1, expected: true},
		{name: "non-zero rejects zero", rule: predicate.NonZero, value: 0, expected: false},
		{name: "non-zero rejects NaN", rule: predicate.NonZero, value: nan, expected: false},
		{name: "unknown rule never holds", rule: predicate.Rule(42), value: 1, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, predicate.Holds(tt.rule, tt.value))
		})
	}
}

func TestHolds_MatchesComparison(t *testing.T) {
	t.Parallel()

	t.Run("int32", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			v := rapid.Int32().Draw(t, "v")
			assert.Equal(t, v < 0, predicate.Holds(predicate.Negative, v))
			assert.Equal(t, v <= 0, predicate.Holds(predicate.NegativeOrZero, v))
			assert.Equal(t, v > 0, predicate.Holds(predicate.Positive, v))
			assert.Equal(t, v >= 0, predicate.Holds(predicate.PositiveOrZero, v))
			assert.Equal(t, v != 0, predicate.Holds(predicate.NonZero, v))
		})
	})

	t.Run("float64", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			v := rapid.Float64().Draw(t, "v")
			assert.Equal(t, v < 0, predicate.Holds(predicate.Negative, v))
			assert.Equal(t, v <= 0, predicate.Holds(predicate.NegativeOrZero, v))
			assert.Equal(t, v > 0, predicate.Holds(predicate.Positive, v))
			assert.Equal(t, v >= 0, predicate.Holds(predicate.PositiveOrZero, v))
			assert.Equal(t, v < 0 || v > 0, predicate.Holds(predicate.NonZero, v))
		})
	})
}

func TestRule_Implies(t *testing.T) {
	t.Parallel()

	t.Run("every rule implies itself", func(t *testing.T) {
		for _, r := range predicate.Rules() {
			assert.True(t, r.Implies(r), r.String())
		}
	})

	t.Run("strict families imply their relaxations", func(t *testing.T) {
		assert.True(t, predicate.Negative.Implies(predicate.NegativeOrZero))
		assert.True(t, predicate.Negative.Implies(predicate.NonZero))
		assert.True(t, predicate.Positive.Implies(predicate.PositiveOrZero))
		assert.True(t, predicate.Positive.Implies(predicate.NonZero))
	})

	t.Run("weaker families never imply stronger ones", func(t *testing.T) {
		assert.False(t, predicate.NegativeOrZero.Implies(predicate.Negative))
		assert.False(t, predicate.NonZero.Implies(predicate.Negative))
		assert.False(t, predicate.NonZero.Implies(predicate.Positive))
		assert.False(t, predicate.PositiveOrZero.Implies(predicate.NonZero))
		assert.False(t, predicate.Negative.Implies(predicate.Positive))
	})

	t.Run("unknown rules imply nothing", func(t *testing.T) {
		assert.False(t, predicate.Rule(0).Implies(predicate.Negative))
		assert.False(t, predicate.Negative.Implies(predicate.Rule(9)))
	})

	t.Run("implication is sound on sampled values", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			v := rapid.Float64().Draw(t, "v")
			for _, from := range predicate.Rules() {
				for _, to := range predicate.Rules() {
					if from.Implies(to) && predicate.Holds(from, v) {
						assert.True(t, predicate.Holds(to, v), "%s => %s for %v", from, to, v)
					}
				}
			}
		})
	})
}

func TestRule_MirrorAndAbs(t *testing.T) {
	t.Parallel()

	t.Run("mirror is an involution", func(t *testing.T) {
		for _, r := range predicate.Rules() {
			assert.Equal(t, r, r.Mirror().Mirror())
		}
	})

	t.Run("negation lands in the mirror family", func(t *testing.T) {
		rapid.Check(t, func(t *rapid.T) {
			v := rapid.Float64().Draw(t, "v")
			for _, r := range predicate.Rules() {
				if predicate.Holds(r, v) {
					assert.True(t, predicate.Holds(r.Mirror(), -v))
					assert.True(t, predicate.Holds(r.Abs(), math.Abs(v)))
				}
			}
		})
	})

	t.Run("zero inclusive siblings", func(t *testing.T) {
		z, ok := predicate.Negative.ZeroInclusive()
		assert.True(t, ok)
		assert.Equal(t, predicate.NegativeOrZero, z)

		z, ok = predicate.Positive.ZeroInclusive()
		assert.True(t, ok)
		assert.Equal(t, predicate.PositiveOrZero, z)

		_, ok = predicate.NonZero.ZeroInclusive()
		assert.False(t, ok)
	})
}

func TestParseRule(t *testing.T) {
	t.Parallel()

	for _, r := range predicate.Rules() {
		byPrefix, err := predicate.ParseRule(r.Prefix())
		require.NoError(t, err)
		assert.Equal(t, r, byPrefix)

		byName, err := predicate.ParseRule(r.String())
		require.NoError(t, err)
		assert.Equal(t, r, byName)
	}

	_, err := predicate.ParseRule("Odd")
	require.ErrorIs(t, err, predicate.ErrUnknownRule)
	assert.Contains(t, err.Error(), `"Odd"`)
}

func TestRule_String(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "negative or zero", predicate.NegativeOrZero.String())
	assert.Equal(t, "NonZero", predicate.NonZero.Prefix())
	assert.Equal(t, "Rule(7)", predicate.Rule(7).String())
	assert.True(t, predicate.PositiveOrZero.AdmitsZero())
	assert.False(t, predicate.Positive.AdmitsZero())
}
