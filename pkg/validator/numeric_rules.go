package validator

import (
	"fmt"

	"github.com/dmitrymomot/refined/pkg/predicate"
)

// RefinedKind is the part of a refinement kind the validator needs.
// Every refined.Kind satisfies it.
type RefinedKind[P Numeric] interface {
	Name() string
	IsValid(v P) bool
}

// Refined validates that value is accepted by kind, e.g.
//
//	validator.Refined("offset", offset, refined.NegIntKind)
func Refined[P Numeric](field string, value P, kind RefinedKind[P]) Rule {
	return Rule{
		Check: func() bool {
			return kind.IsValid(value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be a valid " + kind.Name(),
			TranslationKey: "validation.refined",
			TranslationValues: map[string]any{
				"field": field,
				"kind":  kind.Name(),
				"value": value,
			},
		},
	}
}

// Negative validates that value < 0.
func Negative[T Numeric](field string, value T) Rule {
	return signRule(field, value, predicate.Negative, "validation.negative")
}

// NegativeOrZero validates that value <= 0.
func NegativeOrZero[T Numeric](field string, value T) Rule {
	return signRule(field, value, predicate.NegativeOrZero, "validation.negative_or_zero")
}

// Positive validates that value > 0.
func Positive[T Numeric](field string, value T) Rule {
	return signRule(field, value, predicate.Positive, "validation.positive")
}

// PositiveOrZero validates that value >= 0.
func PositiveOrZero[T Numeric](field string, value T) Rule {
	return signRule(field, value, predicate.PositiveOrZero, "validation.positive_or_zero")
}

// NonZero validates that value is neither zero nor NaN.
func NonZero[T Numeric](field string, value T) Rule {
	return signRule(field, value, predicate.NonZero, "validation.non_zero")
}

func signRule[T Numeric](field string, value T, r predicate.Rule, key string) Rule {
	return Rule{
		Check: func() bool {
			return predicate.Holds(r, value)
		},
		Error: ValidationError{
			Field:          field,
			Message:        "must be " + r.String(),
			TranslationKey: key,
			TranslationValues: map[string]any{
				"field": field,
				"value": value,
			},
		},
	}
}

// MinNum validates that a numeric value is greater than or equal to the minimum.
func MinNum[T Numeric](field string, value T, min T) Rule {
	return Rule{
		Check: func() bool {
			return value >= min
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at least %v", min),
			TranslationKey: "validation.min",
			TranslationValues: map[string]any{
				"field": field,
				"min":   min,
			},
		},
	}
}

// MaxNum validates that a numeric value is less than or equal to the maximum.
func MaxNum[T Numeric](field string, value T, max T) Rule {
	return Rule{
		Check: func() bool {
			return value <= max
		},
		Error: ValidationError{
			Field:          field,
			Message:        fmt.Sprintf("must be at most %v", max),
			TranslationKey: "validation.max",
			TranslationValues: map[string]any{
				"field": field,
				"max":   max,
			},
		},
	}
}
