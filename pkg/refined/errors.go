package refined

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidValue is matched by every *InvalidValueError.
	ErrInvalidValue = errors.New("invalid refined value")

	// ErrOverflow is the panic value of Negate and Abs on the minimum of an
	// integer kind.
	ErrOverflow = errors.New("refined value overflows its primitive")

	// ErrNullValue is returned when a NULL database value is scanned into a refined kind.
	// Wrap the kind in sql.Null to accept NULLs.
	ErrNullValue = errors.New("refined value cannot be NULL")
)

// InvalidValueError reports a primitive value rejected by a kind's predicate.
type InvalidValueError struct {
	Kind  string
	Value any
}

func (e *InvalidValueError) Error() string {
	return fmt.Sprintf("%v was not a valid %s", e.Value, e.Kind)
}

// Is makes errors.Is(err, ErrInvalidValue) true.
func (e *InvalidValueError) Is(target error) bool {
	return target == ErrInvalidValue
}

// NewInvalidValueError creates an error for value rejected by the named kind.
func NewInvalidValueError(kind string, value any) *InvalidValueError {
	return &InvalidValueError{Kind: kind, Value: value}
}

// IsInvalidValueError reports whether err wraps an *InvalidValueError.
func IsInvalidValueError(err error) bool {
	var e *InvalidValueError
	return errors.As(err, &e)
}
