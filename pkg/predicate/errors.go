package predicate

import "errors"

// ErrUnknownRule is returned when a rule name does not match any family.
var ErrUnknownRule = errors.New("unknown predicate rule")
