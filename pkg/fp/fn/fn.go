package fn

import (
	"sync"

	"github.com/ib-77/adt/pkg/fp/option"
)

// Unit is the informationless type.
type Unit = struct{}

// Identity returns its argument unchanged.
func Identity[T any](x T) T {
	return x
}

// Const returns a function that ignores its argument and yields x.
func Const[T, U any](x T) func(U) T {
	return func(U) T { return x }
}

// Compose is right-to-left composition: Compose(f, g)(x) == f(g(x)).
func Compose[T, U, V any](f func(U) V, g func(T) U) func(T) V {
	return func(x T) V {
		return f(g(x))
	}
}

// Pipe threads a value through a sequence of same-type unary functions.
func Pipe[T any](x T, funcs ...func(T) T) T {
	for _, f := range funcs {
		x = f(x)
	}
	return x
}

// Tap runs a side effect on the value and passes the value through.
func Tap[T any](effect func(T)) func(T) T {
	return func(x T) T {
		effect(x)
		return x
	}
}

// Thunk memoizes a zero-argument computation; produce runs at most once,
// on first call.
func Thunk[T any](produce func() T) func() T {
	return sync.OnceValue(produce)
}

// Once runs f at most once and returns the first result for every later
// call, ignoring later arguments.
func Once[T, U any](f func(T) U) func(T) U {
	var (
		mu   sync.Mutex
		done bool
		out  U
	)
	return func(x T) U {
		mu.Lock()
		defer mu.Unlock()
		if !done {
			out = f(x)
			done = true
		}
		return out
	}
}

// Flip swaps the two arguments of a binary function.
func Flip[T, U, V any](f func(T, U) V) func(U, T) V {
	return func(b U, a T) V {
		return f(a, b)
	}
}

// Curry2 turns a binary function into nested unary functions.
func Curry2[T, U, V any](f func(T, U) V) func(T) func(U) V {
	return func(a T) func(U) V {
		return func(b U) V {
			return f(a, b)
		}
	}
}

// Curry3 turns a ternary function into nested unary functions.
func Curry3[T, U, V, W any](f func(T, U, V) W) func(T) func(U) func(V) W {
	return func(a T) func(U) func(V) W {
		return func(b U) func(V) W {
			return func(c V) W {
				return f(a, b, c)
			}
		}
	}
}

// Foldl reduces from the left with an accumulator.
func Foldl[T, A any](f func(A, T) A, init A, xs []T) A {
	acc := init
	for _, x := range xs {
		acc = f(acc, x)
	}
	return acc
}

// Foldr reduces from the right with an accumulator.
func Foldr[T, A any](f func(T, A) A, init A, xs []T) A {
	acc := init
	for i := len(xs) - 1; i >= 0; i-- {
		acc = f(xs[i], acc)
	}
	return acc
}

// Reduce folds without an initial value; empty input yields None.
func Reduce[T any](f func(T, T) T, xs []T) option.Option[T] {
	if len(xs) == 0 {
		return option.None[T]()
	}
	acc := xs[0]
	for _, x := range xs[1:] {
		acc = f(acc, x)
	}
	return option.Some(acc)
}
