package result

// Validation is the outcome of a check that produces no value on success:
// either Pass, or Fail carrying an error value of type E.
type Validation[E any] struct {
	err    E
	failed bool
}

// Pass constructs a successful Validation.
func Pass[E any]() Validation[E] { return Validation[E]{} }

// Fail constructs a failed Validation carrying err.
func Fail[E any](err E) Validation[E] { return Validation[E]{err: err, failed: true} }

// IsPass reports whether the check passed.
func (v Validation[E]) IsPass() bool { return !v.failed }

// IsFail reports whether the check failed.
func (v Validation[E]) IsFail() bool { return v.failed }

// Error returns the failure value and true if the check failed.
func (v Validation[E]) Error() (E, bool) { return v.err, v.failed }

// And returns the first failure of v and next, or Pass if both passed.
func (v Validation[E]) And(next Validation[E]) Validation[E] {
	if v.failed {
		return v
	}
	return next
}
