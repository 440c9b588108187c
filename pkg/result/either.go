package result

// Either holds a Left value L or a Right value R. By convention Right is the
// success branch.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left constructs an Either holding a left value.
func Left[L, R any](l L) Either[L, R] { return Either[L, R]{left: l} }

// Right constructs an Either holding a right value.
func Right[L, R any](r R) Either[L, R] { return Either[L, R]{right: r, isRight: true} }

// IsLeft reports whether e holds a left value.
func (e Either[L, R]) IsLeft() bool { return !e.isRight }

// IsRight reports whether e holds a right value.
func (e Either[L, R]) IsRight() bool { return e.isRight }

// Left returns the left value and true, or the zero L and false.
func (e Either[L, R]) Left() (L, bool) { return e.left, !e.isRight }

// Right returns the right value and true, or the zero R and false.
func (e Either[L, R]) Right() (R, bool) { return e.right, e.isRight }

// Swap exchanges the branches.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R](e.left)
}

// FoldEither applies onLeft or onRight depending on which value e holds.
func FoldEither[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}
