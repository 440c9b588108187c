package result

// Option represents an optional value.
// Some(v) means a present value, None means absence.
type Option[T any] struct {
	v     T
	valid bool
}

// Some constructs an Option with a value.
func Some[T any](v T) Option[T] { return Option[T]{v: v, valid: true} }

// None constructs an empty Option.
func None[T any]() Option[T] { return Option[T]{} }

// OptionOf converts the common (value, ok) pair into an Option.
func OptionOf[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// IsSome reports whether the option holds a value.
func (o Option[T]) IsSome() bool { return o.valid }

// IsNone reports whether the option is empty.
func (o Option[T]) IsNone() bool { return !o.valid }

// Get returns the value and whether it was present.
func (o Option[T]) Get() (T, bool) { return o.v, o.valid }

// OrElse returns the value if present, otherwise fallback.
func (o Option[T]) OrElse(fallback T) T {
	if o.valid {
		return o.v
	}
	return fallback
}

// MapOption applies f to the value if present.
func MapOption[T, U any](o Option[T], f func(T) U) Option[U] {
	if o.valid {
		return Some(f(o.v))
	}
	return None[U]()
}
