package validator

import "errors"

// ErrValidationFailed is matched by every ValidationErrors returned from Apply.
var ErrValidationFailed = errors.New("validation failed")
