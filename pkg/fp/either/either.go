package either

import "github.com/ib-77/adt/pkg/fp/result"

// Either holds one of two equally valid values. Unlike Result, neither side
// implies failure. The zero value is Left with L's zero value; construct
// through Left/Right to be explicit.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left wraps a left value.
func Left[L, R any](v L) Either[L, R] {
	return Either[L, R]{left: v}
}

// Right wraps a right value.
func Right[L, R any](v R) Either[L, R] {
	return Either[L, R]{right: v, isRight: true}
}

func (e Either[L, R]) IsLeft() bool {
	return !e.isRight
}

func (e Either[L, R]) IsRight() bool {
	return e.isRight
}

// Left returns the left value and whether this is the Left variant.
func (e Either[L, R]) Left() (L, bool) {
	return e.left, !e.isRight
}

// Right returns the right value and whether this is the Right variant.
func (e Either[L, R]) Right() (R, bool) {
	return e.right, e.isRight
}

// Swap exchanges Left and Right. Swapping twice restores the original.
func (e Either[L, R]) Swap() Either[R, L] {
	if e.isRight {
		return Left[R, L](e.right)
	}
	return Right[R, L](e.left)
}

// MapLeft transforms the left value; Right passes through.
func MapLeft[L, R, L2 any](e Either[L, R], f func(L) L2) Either[L2, R] {
	if e.isRight {
		return Right[L2, R](e.right)
	}
	return Left[L2, R](f(e.left))
}

// MapRight transforms the right value; Left passes through.
func MapRight[L, R, R2 any](e Either[L, R], f func(R) R2) Either[L, R2] {
	if e.isRight {
		return Right[L, R2](f(e.right))
	}
	return Left[L, R2](e.left)
}

// Bimap transforms whichever side is populated.
func Bimap[L, R, L2, R2 any](e Either[L, R], f func(L) L2, g func(R) R2) Either[L2, R2] {
	if e.isRight {
		return Right[L2, R2](g(e.right))
	}
	return Left[L2, R2](f(e.left))
}

// Fold eliminates the Either into a single unified type through exactly one
// of the two handlers.
func Fold[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

// ToResult reinterprets Right as success and Left as failure.
func ToResult[L, R any](e Either[L, R]) result.Result[R, L] {
	if e.isRight {
		return result.Ok[R, L](e.right)
	}
	return result.Err[R, L](e.left)
}
