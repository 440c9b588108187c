package predicate

import "fmt"

// Numeric is the set of primitive types a predicate can be evaluated on.
type Numeric interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Rule identifies one predicate family.
type Rule uint8

const (
	// Negative holds for v < 0.
	Negative Rule = iota + 1
	// NegativeOrZero holds for v <= 0.
	NegativeOrZero
	// Positive holds for v > 0.
	Positive
	// PositiveOrZero holds for v >= 0.
	PositiveOrZero
	// NonZero holds for v < 0 || v > 0.
	NonZero
)

// Rules lists every family in declaration order.
func Rules() []Rule {
	return []Rule{Negative, NegativeOrZero, Positive, PositiveOrZero, NonZero}
}

// IsNegative reports whether v < 0.
func IsNegative[T Numeric](v T) bool { return v < 0 }

// IsNegativeOrZero reports whether v <= 0.
func IsNegativeOrZero[T Numeric](v T) bool { return v <= 0 }

// IsPositive reports whether v > 0.
func IsPositive[T Numeric](v T) bool { return v > 0 }

// IsPositiveOrZero reports whether v >= 0.
func IsPositiveOrZero[T Numeric](v T) bool { return v >= 0 }

// IsNonZero reports whether v is ordered and different from zero.
// Unlike v != 0 it is false for NaN.
func IsNonZero[T Numeric](v T) bool { return v < 0 || v > 0 }

// Holds evaluates rule r against v. An unknown rule never holds.
func Holds[T Numeric](r Rule, v T) bool {
	switch r {
	case Negative:
		return IsNegative(v)
	case NegativeOrZero:
		return IsNegativeOrZero(v)
	case Positive:
		return IsPositive(v)
	case PositiveOrZero:
		return IsPositiveOrZero(v)
	case NonZero:
		return IsNonZero(v)
	default:
		return false
	}
}

// Valid reports whether r is one of the declared families.
func (r Rule) Valid() bool {
	return r >= Negative && r <= NonZero
}

// String returns the human readable family name, e.g. "negative or zero".
func (r Rule) String() string {
	switch r {
	case Negative:
		return "negative"
	case NegativeOrZero:
		return "negative or zero"
	case Positive:
		return "positive"
	case PositiveOrZero:
		return "positive or zero"
	case NonZero:
		return "non-zero"
	default:
		return fmt.Sprintf("Rule(%d)", uint8(r))
	}
}

// Prefix returns the short name used in refinement type names ("Neg", "PosZ", ...).
func (r Rule) Prefix() string {
	switch r {
	case Negative:
		return "Neg"
	case NegativeOrZero:
		return "NegZ"
	case Positive:
		return "Pos"
	case PositiveOrZero:
		return "PosZ"
	case NonZero:
		return "NonZero"
	default:
		return ""
	}
}

// Mirror returns the family satisfied by -v whenever v satisfies r.
func (r Rule) Mirror() Rule {
	switch r {
	case Negative:
		return Positive
	case Positive:
		return Negative
	case NegativeOrZero:
		return PositiveOrZero
	case PositiveOrZero:
		return NegativeOrZero
	default:
		return r
	}
}

// Abs returns the family satisfied by |v| whenever v satisfies r.
func (r Rule) Abs() Rule {
	switch r {
	case Negative, Positive, NonZero:
		return Positive
	case NegativeOrZero, PositiveOrZero:
		return PositiveOrZero
	default:
		return r
	}
}

// AdmitsZero reports whether zero satisfies r.
func (r Rule) AdmitsZero() bool {
	return r == NegativeOrZero || r == PositiveOrZero
}

// ZeroInclusive returns the weakest zero-admitting family implied by r.
// NonZero has none and yields itself with ok == false.
func (r Rule) ZeroInclusive() (Rule, bool) {
	switch r {
	case Negative, NegativeOrZero:
		return NegativeOrZero, true
	case Positive, PositiveOrZero:
		return PositiveOrZero, true
	default:
		return r, false
	}
}

// Implies reports whether every value satisfying r also satisfies other.
// Every rule implies itself.
func (r Rule) Implies(other Rule) bool {
	if !r.Valid() || !other.Valid() {
		return false
	}
	if r == other {
		return true
	}
	switch r {
	case Negative:
		return other == NegativeOrZero || other == NonZero
	case Positive:
		return other == PositiveOrZero || other == NonZero
	default:
		return false
	}
}

// ParseRule resolves a rule from either its prefix ("NegZ") or its
// name ("negative or zero").
func ParseRule(s string) (Rule, error) {
	for _, r := range Rules() {
		if s == r.Prefix() || s == r.String() {
			return r, nil
		}
	}
	return 0, fmt.Errorf("%w: %q", ErrUnknownRule, s)
}
