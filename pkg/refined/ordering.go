package refined

import "slices"

// Ordered is satisfied by every kind: Compare orders values the same way
// as their underlying primitives.
type Ordered[T any] interface {
	Compare(other T) int
}

// Sort sorts s in ascending order.
func Sort[T Ordered[T]](s []T) {
	slices.SortFunc(s, compare[T])
}

// IsSorted reports whether s is sorted in ascending order.
func IsSorted[T Ordered[T]](s []T) bool {
	return slices.IsSortedFunc(s, compare[T])
}

// Min returns the smallest of the given values.
func Min[T Ordered[T]](first T, rest ...T) T {
	m := first
	for _, v := range rest {
		if v.Compare(m) < 0 {
			m = v
		}
	}
	return m
}

// Max returns the largest of the given values.
func Max[T Ordered[T]](first T, rest ...T) T {
	m := first
	for _, v := range rest {
		if v.Compare(m) > 0 {
			m = v
		}
	}
	return m
}

func compare[T Ordered[T]](a, b T) int {
	return a.Compare(b)
}
