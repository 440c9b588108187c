package gen

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dmitrymomot/refined/pkg/predicate"
)

// Spec is the template data for one kind.
type Spec struct {
	Package string
	Source  string

	Name  string // NegInt
	Lower string // negInt
	Recv  string

	Prim       string // int32
	PrimPhrase string // an int32
	Storage    string
	Wide       string
	Bits       int
	Float      bool

	Rule        predicate.Rule
	RuleIdent   string
	Desc        string
	Anchor      string
	ZeroLiteral string

	Mirror       string
	Abs          string
	OverflowNote string

	Widenings []Widening

	// ZeroSibling is the zero-inclusive kind over the same primitive. It is
	// only set for float kinds, where it drives Round, Ceil, Floor and Plus.
	ZeroSibling string

	PgScanner string
	PgValuer  string
}

// Widening is one outgoing edge of the conversion DAG.
type Widening struct {
	Name string
	Prim string
}

var ruleIdents = map[predicate.Rule]string{
	predicate.Negative:       "Negative",
	predicate.NegativeOrZero: "NegativeOrZero",
	predicate.Positive:       "Positive",
	predicate.PositiveOrZero: "PositiveOrZero",
	predicate.NonZero:        "NonZero",
}

var ruleDescs = map[predicate.Rule]string{
	predicate.Negative:       "strictly negative",
	predicate.NegativeOrZero: "negative or zero",
	predicate.Positive:       "strictly positive",
	predicate.PositiveOrZero: "positive or zero",
	predicate.NonZero:        "non-zero",
}

type primitive struct {
	title string
	typ   string
	info  primitiveInfo
	reach map[string]bool // aliases reachable through widening, excluding itself
}

// Build expands a validated manifest into one Spec per (rule, primitive)
// pair, ordered by rule then primitive as listed in the manifest.
func Build(m *Manifest, source string) ([]Spec, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	title := cases.Title(language.Und)
	prims := make([]primitive, 0, len(m.Primitives))
	index := make(map[string]int, len(m.Primitives))
	for i, p := range m.Primitives {
		prims = append(prims, primitive{
			title: title.String(p.Alias),
			typ:   p.Type,
			info:  knownPrimitives[p.Type],
		})
		index[p.Alias] = i
	}
	for i, p := range m.Primitives {
		prims[i].reach = reachable(m, index, p.Alias)
	}

	rules := make([]predicate.Rule, 0, len(m.Rules))
	present := make(map[predicate.Rule]bool, len(m.Rules))
	for _, name := range m.Rules {
		r, err := predicate.ParseRule(name)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrInvalidManifest, err)
		}
		rules = append(rules, r)
		present[r] = true
	}

	kindName := func(r predicate.Rule, p primitive) string { return r.Prefix() + p.title }

	var specs []Spec
	for _, r := range rules {
		for pi, p := range prims {
			name := kindName(r, p)
			for _, dep := range []predicate.Rule{r.Mirror(), r.Abs()} {
				if !present[dep] {
					return nil, fmt.Errorf("%w: %s needs rule %s", ErrInvalidManifest, name, dep.Prefix())
				}
			}

			s := Spec{
				Package:    m.Package,
				Source:     source,
				Name:       name,
				Lower:      strings.ToLower(name[:1]) + name[1:],
				Recv:       strings.ToLower(r.Prefix()[:1]),
				Prim:       p.typ,
				PrimPhrase: article(p.typ) + " " + p.typ,
				Bits:       p.info.bits,
				Float:      p.info.float,
				Rule:       r,
				RuleIdent:  ruleIdents[r],
				Desc:       ruleDescs[r],
				Mirror:     kindName(r.Mirror(), p),
				Abs:        kindName(r.Abs(), p),
			}
			s.Anchor, s.ZeroLiteral = anchor(r, p.info)
			s.ZeroLiteral = name + "(" + s.ZeroLiteral + ")"

			if p.info.float {
				s.Storage = fmt.Sprintf("uint%d", p.info.bits)
				s.Wide = "float64"
				s.PgScanner, s.PgValuer = "Float64Scanner", "Float64Valuer"
			} else {
				s.Storage = p.typ
				s.Wide = "int64"
				s.PgScanner, s.PgValuer = "Int64Scanner", "Int64Valuer"
				if r.Abs() != r {
					s.OverflowNote = fmt.Sprintf("It panics with ErrOverflow for %sKind.MinValue(), whose negation overflows %s.", name, p.typ)
				}
			}

			if z, ok := r.ZeroInclusive(); ok && p.info.float && present[z] {
				s.ZeroSibling = kindName(z, p)
			}

			for _, tr := range rules {
				if !r.Implies(tr) {
					continue
				}
				for ti, tp := range prims {
					if ti == pi && tr == r {
						continue
					}
					if ti != pi && !p.reach[m.Primitives[ti].Alias] {
						continue
					}
					s.Widenings = append(s.Widenings, Widening{Name: kindName(tr, tp), Prim: tp.typ})
				}
			}

			specs = append(specs, s)
		}
	}

	return specs, nil
}

// reachable returns the aliases reachable from alias through widens_to edges.
func reachable(m *Manifest, index map[string]int, alias string) map[string]bool {
	seen := make(map[string]bool)
	stack := append([]string(nil), m.Primitives[index[alias]].WidensTo...)
	for len(stack) > 0 {
		next := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if seen[next] {
			continue
		}
		seen[next] = true
		stack = append(stack, m.Primitives[index[next]].WidensTo...)
	}
	return seen
}

// anchor returns the stored-bits constant for the kind's zero value and
// that value as a Go literal. The anchor is -1, 1 or 0 depending on which
// of them the rule admits.
func anchor(r predicate.Rule, p primitiveInfo) (bits, lit string) {
	v := 0
	switch r {
	case predicate.Negative:
		v = -1
	case predicate.Positive, predicate.NonZero:
		v = 1
	}

	if !p.float {
		return fmt.Sprint(v), fmt.Sprint(v)
	}

	lit = fmt.Sprintf("%d.0", v)
	if p.bits == 32 {
		return fmt.Sprintf("0x%08x", math.Float32bits(float32(v))), lit + "f"
	}
	return fmt.Sprintf("0x%016x", math.Float64bits(float64(v))), lit
}

func article(word string) string {
	if strings.ContainsRune("aeiou", rune(word[0])) {
		return "an"
	}
	return "a"
}
