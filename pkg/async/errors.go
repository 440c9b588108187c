package async

import "errors"

// ErrInvalidLimit is returned by Map when limit is not positive.
var ErrInvalidLimit = errors.New("async: concurrency limit must be positive")
