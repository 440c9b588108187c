package gen_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/refined/internal/gen"
	"github.com/dmitrymomot/refined/pkg/predicate"
)

func buildSpecs(t *testing.T) map[string]gen.Spec {
	t.Helper()
	m, err := gen.LoadManifest(manifestPath)
	require.NoError(t, err)
	specs, err := gen.Build(m, "kinds.yaml")
	require.NoError(t, err)

	byName := make(map[string]gen.Spec, len(specs))
	for _, s := range specs {
		byName[s.Name] = s
	}
	return byName
}

func widenings(s gen.Spec) []string {
	names := make([]string, 0, len(s.Widenings))
	for _, w := range s.Widenings {
		names = append(names, w.Name)
	}
	return names
}

func TestBuild_Kinds(t *testing.T) {
	t.Parallel()

	m, err := gen.LoadManifest(manifestPath)
	require.NoError(t, err)
	specs, err := gen.Build(m, "kinds.yaml")
	require.NoError(t, err)
	require.Len(t, specs, 20)

	var names []string
	for _, s := range specs[:5] {
		names = append(names, s.Name)
	}
	assert.Equal(t, []string{"NegInt", "NegLong", "NegFloat", "NegDouble", "NegZInt"}, names)
	assert.Equal(t, "NonZeroDouble", specs[19].Name)
}

func TestBuild_NegInt(t *testing.T) {
	t.Parallel()

	s := buildSpecs(t)["NegInt"]
	assert.Equal(t, "refined", s.Package)
	assert.Equal(t, "kinds.yaml", s.Source)
	assert.Equal(t, "negInt", s.Lower)
	assert.Equal(t, "n", s.Recv)
	assert.Equal(t, "int32", s.Prim)
	assert.Equal(t, "an int32", s.PrimPhrase)
	assert.Equal(t, "int32", s.Storage)
	assert.Equal(t, "int64", s.Wide)
	assert.False(t, s.Float)
	assert.Equal(t, predicate.Negative, s.Rule)
	assert.Equal(t, "Negative", s.RuleIdent)
	assert.Equal(t, "-1", s.Anchor)
	assert.Equal(t, "NegInt(-1)", s.ZeroLiteral)
	assert.Equal(t, "PosInt", s.Mirror)
	assert.Equal(t, "PosInt", s.Abs)
	assert.Contains(t, s.OverflowNote, "NegIntKind.MinValue()")
	assert.Empty(t, s.ZeroSibling)
	assert.Equal(t, "Int64Scanner", s.PgScanner)

	assert.Equal(t, []string{
		"NegLong", "NegFloat", "NegDouble",
		"NegZInt", "NegZLong", "NegZFloat", "NegZDouble",
		"NonZeroInt", "NonZeroLong", "NonZeroFloat", "NonZeroDouble",
	}, widenings(s))
	assert.Equal(t, gen.Widening{Name: "NegLong", Prim: "int64"}, s.Widenings[0])
}

func TestBuild_Widenings(t *testing.T) {
	t.Parallel()

	specs := buildSpecs(t)
	tests := []struct {
		kind string
		want []string
	}{
		{"NegDouble", []string{"NegZDouble", "NonZeroDouble"}},
		{"PosFloat", []string{"PosDouble", "PosZFloat", "PosZDouble", "NonZeroFloat", "NonZeroDouble"}},
		{"PosZLong", []string{"PosZFloat", "PosZDouble"}},
		{"NegZDouble", []string{}},
		{"NonZeroInt", []string{"NonZeroLong", "NonZeroFloat", "NonZeroDouble"}},
		{"NonZeroDouble", []string{}},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, widenings(specs[tt.kind]), tt.kind)
	}

	// Every edge points at a kind whose rule is implied and whose
	// primitive is the same or wider.
	for _, s := range specs {
		for _, w := range s.Widenings {
			target, ok := specs[w.Name]
			require.True(t, ok, w.Name)
			assert.True(t, s.Rule.Implies(target.Rule), "%s -> %s", s.Name, w.Name)
			assert.Equal(t, target.Prim, w.Prim)
			assert.NotEqual(t, s.Name, w.Name)
		}
	}
}

func TestBuild_Floats(t *testing.T) {
	t.Parallel()

	specs := buildSpecs(t)

	neg := specs["NegFloat"]
	assert.True(t, neg.Float)
	assert.Equal(t, 32, neg.Bits)
	assert.Equal(t, "uint32", neg.Storage)
	assert.Equal(t, "float64", neg.Wide)
	assert.Equal(t, "0xbf800000", neg.Anchor)
	assert.Equal(t, "NegFloat(-1.0f)", neg.ZeroLiteral)
	assert.Equal(t, "NegZFloat", neg.ZeroSibling)
	assert.Empty(t, neg.OverflowNote)
	assert.Equal(t, "Float64Valuer", neg.PgValuer)

	pos := specs["PosDouble"]
	assert.Equal(t, "uint64", pos.Storage)
	assert.Equal(t, "0x3ff0000000000000", pos.Anchor)
	assert.Equal(t, "PosDouble(1.0)", pos.ZeroLiteral)
	assert.Equal(t, "PosZDouble", pos.ZeroSibling)
	assert.Equal(t, "p", pos.Recv)

	z := specs["PosZDouble"]
	assert.Equal(t, "0x0000000000000000", z.Anchor)
	assert.Equal(t, "PosZDouble(0.0)", z.ZeroLiteral)
	assert.Equal(t, "PosZDouble", z.ZeroSibling)

	assert.Empty(t, specs["NonZeroFloat"].ZeroSibling)
	assert.Equal(t, "NonZeroFloat", specs["NonZeroFloat"].Mirror)
	assert.Equal(t, "PosFloat", specs["NonZeroFloat"].Abs)
}

func TestBuild_OverflowNotes(t *testing.T) {
	t.Parallel()

	specs := buildSpecs(t)
	for _, name := range []string{"NegInt", "NegZLong", "NonZeroInt"} {
		assert.NotEmpty(t, specs[name].OverflowNote, name)
	}
	for _, name := range []string{"PosInt", "PosZLong", "NegDouble", "NonZeroFloat"} {
		assert.Empty(t, specs[name].OverflowNote, name)
	}
}

func TestBuild_MissingCompanionRule(t *testing.T) {
	t.Parallel()

	m, err := gen.ParseManifest([]byte("package: p\nprimitives: [{alias: int, type: int32}]\nrules: [Neg]"))
	require.NoError(t, err)

	_, err = gen.Build(m, "kinds.yaml")
	require.ErrorIs(t, err, gen.ErrInvalidManifest)
	assert.Contains(t, err.Error(), "NegInt needs rule Pos")
}

func TestBuild_SubsetManifest(t *testing.T) {
	t.Parallel()

	m, err := gen.ParseManifest([]byte(`
package: p
primitives:
  - {alias: long, type: int64, widens_to: [double]}
  - {alias: double, type: float64}
rules: [Pos, Neg, NonZero]
`))
	require.NoError(t, err)

	specs, err := gen.Build(m, "subset.yaml")
	require.NoError(t, err)
	require.Len(t, specs, 6)
	assert.Equal(t, "PosLong", specs[0].Name)
	assert.Equal(t, []string{"PosDouble", "NonZeroLong", "NonZeroDouble"}, widenings(specs[0]))

	// Without zero-inclusive rules no float kind gets rounding helpers.
	assert.Equal(t, "NegDouble", specs[3].Name)
	assert.Empty(t, specs[3].ZeroSibling)
	assert.Empty(t, specs[1].ZeroSibling)
}
