// Package validator builds field-level validation rules with
// translation-friendly error metadata.
//
// Every exported rule constructor returns a Rule: a Check function paired
// with the ValidationError to report when Check fails. Apply evaluates rules
// and aggregates failures into ValidationErrors, which implements error and
// matches ErrValidationFailed under errors.Is.
//
// The numeric rules mirror the refinement predicates of pkg/predicate, so a
// plain value can be validated against the same rule a refined kind enforces:
//
//	err := validator.Apply(
//	    validator.Positive("workers", cfg.Workers),
//	    validator.MaxNum("workers", cfg.Workers, 64),
//	    validator.Refined("offset", offset, refined.NegIntKind),
//	)
//	if verrs := validator.ExtractValidationErrors(err); verrs != nil {
//	    // translate verrs[i].TranslationKey with verrs[i].TranslationValues
//	}
//
// Translation keys: validation.refined, validation.negative,
// validation.negative_or_zero, validation.positive,
// validation.positive_or_zero, validation.non_zero, validation.min and
// validation.max. Every key receives "field"; the sign rules add "value",
// Refined adds "value" and "kind", MinNum and MaxNum add their bound.
package validator
