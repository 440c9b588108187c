package result

// Or holds either a good value G or a bad value B.
type Or[G, B any] struct {
	good  G
	bad   B
	isBad bool
}

// Good constructs an Or holding a good value.
func Good[G, B any](g G) Or[G, B] { return Or[G, B]{good: g} }

// Bad constructs an Or holding a bad value.
func Bad[G, B any](b B) Or[G, B] { return Or[G, B]{bad: b, isBad: true} }

// IsGood reports whether o holds a good value.
func (o Or[G, B]) IsGood() bool { return !o.isBad }

// IsBad reports whether o holds a bad value.
func (o Or[G, B]) IsBad() bool { return o.isBad }

// Get returns the good value and true, or the zero G and false.
func (o Or[G, B]) Get() (G, bool) { return o.good, !o.isBad }

// Bad returns the bad value and true, or the zero B and false.
func (o Or[G, B]) Bad() (B, bool) { return o.bad, o.isBad }

// GetOrElse returns the good value or fallback.
func (o Or[G, B]) GetOrElse(fallback G) G {
	if o.isBad {
		return fallback
	}
	return o.good
}

// FoldOr applies onGood or onBad depending on which value o holds.
func FoldOr[G, B, R any](o Or[G, B], onGood func(G) R, onBad func(B) R) R {
	if o.isBad {
		return onBad(o.bad)
	}
	return onGood(o.good)
}
