package validator_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/refined/pkg/validator"
)

func TestValidationErrors_Error(t *testing.T) {
	t.Parallel()

	t.Run("returns default message when no errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		assert.Equal(t, "validation failed", errs.Error())
	})

	t.Run("returns formatted message with single error", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "workers", Message: "must be positive"})
		assert.Equal(t, "validation failed: workers: must be positive", errs.Error())
	})

	t.Run("joins multiple errors", func(t *testing.T) {
		var errs validator.ValidationErrors
		errs.Add(validator.ValidationError{Field: "workers", Message: "must be positive"})
		errs.Add(validator.ValidationError{Field: "offset", Message: "must be a valid NegInt"})
		assert.Equal(t,
			"validation failed: workers: must be positive; offset: must be a valid NegInt",
			errs.Error())
	})
}

func TestValidationErrors_Lookup(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	assert.True(t, errs.IsEmpty())
	assert.Empty(t, errs.Fields())

	errs.Add(validator.ValidationError{Field: "workers", Message: "must be positive"})
	errs.Add(validator.ValidationError{Field: "workers", Message: "must be at most 64"})
	errs.Add(validator.ValidationError{Field: "ratio", Message: "must be non-zero"})

	assert.False(t, errs.IsEmpty())
	assert.True(t, errs.Has("workers"))
	assert.False(t, errs.Has("manifest"))
	assert.Equal(t, []string{"must be positive", "must be at most 64"}, errs.Get("workers"))
	assert.Empty(t, errs.Get("manifest"))
	assert.Equal(t, []string{"workers", "ratio"}, errs.Fields())
}

func TestApply(t *testing.T) {
	t.Parallel()

	pass := validator.Rule{
		Check: func() bool { return true },
		Error: validator.ValidationError{Field: "a", Message: "ok"},
	}
	fail := func(field, msg string) validator.Rule {
		return validator.Rule{
			Check: func() bool { return false },
			Error: validator.ValidationError{Field: field, Message: msg},
		}
	}

	t.Run("returns nil when all rules pass", func(t *testing.T) {
		assert.NoError(t, validator.Apply(pass, pass))
	})

	t.Run("handles empty rules", func(t *testing.T) {
		assert.NoError(t, validator.Apply())
	})

	t.Run("collects failures in order", func(t *testing.T) {
		err := validator.Apply(fail("b", "first"), pass, fail("b", "second"), fail("c", "third"))
		require.Error(t, err)
		assert.ErrorIs(t, err, validator.ErrValidationFailed)

		verrs := validator.ExtractValidationErrors(err)
		require.Len(t, verrs, 3)
		assert.Equal(t, []string{"first", "second"}, verrs.Get("b"))
		assert.False(t, verrs.Has("a"))
	})
}

func TestExtractValidationErrors(t *testing.T) {
	t.Parallel()

	var errs validator.ValidationErrors
	errs.Add(validator.ValidationError{Field: "workers", Message: "must be positive"})

	wrapped := fmt.Errorf("load config: %w", errs)
	extracted := validator.ExtractValidationErrors(wrapped)
	require.NotNil(t, extracted)
	assert.True(t, extracted.Has("workers"))
	assert.True(t, validator.IsValidationError(wrapped))

	assert.Nil(t, validator.ExtractValidationErrors(errors.New("regular error")))
	assert.Nil(t, validator.ExtractValidationErrors(nil))
	assert.False(t, validator.IsValidationError(errors.New("regular error")))
	assert.False(t, validator.IsValidationError(nil))
}
