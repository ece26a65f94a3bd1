package result

import (
	"fmt"

	"github.com/ib-77/adt/pkg/fp/option"
)

// Result holds either a success value of type T or an error of type E.
// Exactly one channel is populated. The zero value is Ok with T's zero
// value; construct through Ok/Err to be explicit.
type Result[T, E any] struct {
	value T
	err   E
	isErr bool
}

// Ok wraps a success value.
func Ok[T, E any](v T) Result[T, E] {
	return Result[T, E]{value: v}
}

// Err wraps a failure value.
func Err[T, E any](e E) Result[T, E] {
	return Result[T, E]{err: e, isErr: true}
}

// Of lifts Go's comma-error pattern into a Result with a plain error
// channel.
func Of[T any](v T, err error) Result[T, error] {
	if err != nil {
		return Err[T, error](err)
	}
	return Ok[T, error](v)
}

// Catch runs fn and converts a returned error or a panic into Err. A panic
// value that is not an error is wrapped. runtime.Goexit is not a panic and
// passes through.
func Catch[T any](fn func() (T, error)) (r Result[T, error]) {
	defer func() {
		if p := recover(); p != nil {
			if err, ok := p.(error); ok {
				r = Err[T, error](err)
				return
			}
			r = Err[T, error](fmt.Errorf("recovered panic: %v", p))
		}
	}()
	return Of(fn())
}

func (r Result[T, E]) IsOk() bool {
	return !r.isErr
}

func (r Result[T, E]) IsErr() bool {
	return r.isErr
}

// Get returns the success value, the error and whether the result is Ok.
func (r Result[T, E]) Get() (T, E, bool) {
	return r.value, r.err, !r.isErr
}

// Error returns the error value and whether the result is Err.
func (r Result[T, E]) Error() (E, bool) {
	return r.err, r.isErr
}

// UnwrapOr returns the success value or def on Err.
func (r Result[T, E]) UnwrapOr(def T) T {
	if r.isErr {
		return def
	}
	return r.value
}

// UnwrapOrElse returns the success value or computes a default from the
// error. The producer runs only on Err.
func (r Result[T, E]) UnwrapOrElse(produce func(E) T) T {
	if r.isErr {
		return produce(r.err)
	}
	return r.value
}

// Unwrap returns the success value and panics on Err. It signals a contract
// violation by the caller; do not use it inside composed pipelines.
func (r Result[T, E]) Unwrap() T {
	if r.isErr {
		panic(fmt.Sprintf("result: Unwrap on Err: %v", any(r.err)))
	}
	return r.value
}

// Expect is Unwrap with a caller-supplied panic message.
func (r Result[T, E]) Expect(msg string) T {
	if r.isErr {
		panic(fmt.Sprintf("result: %s: %v", msg, any(r.err)))
	}
	return r.value
}

// Map transforms the success channel; Err passes through untouched.
func Map[T, U, E any](r Result[T, E], f func(T) U) Result[U, E] {
	if r.isErr {
		return Err[U, E](r.err)
	}
	return Ok[U, E](f(r.value))
}

// MapErr transforms the error channel; Ok passes through untouched.
func MapErr[T, E, F any](r Result[T, E], f func(E) F) Result[T, F] {
	if r.isErr {
		return Err[T, F](f(r.err))
	}
	return Ok[T, F](r.value)
}

// Bind chains a success-producing step; Err short-circuits and propagates
// unchanged.
func Bind[T, U, E any](r Result[T, E], f func(T) Result[U, E]) Result[U, E] {
	if r.isErr {
		return Err[U, E](r.err)
	}
	return f(r.value)
}

// Flatten collapses one level of nesting over the success channel.
func Flatten[T, E any](r Result[Result[T, E], E]) Result[T, E] {
	if r.isErr {
		return Err[T, E](r.err)
	}
	return r.value
}

// Pair holds two values combined by Zip.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Zip combines two Ok values into a pair. When both sides are Err the first
// operand's error wins; Zip never merges errors (that is validate.All's
// job).
func Zip[A, B, E any](a Result[A, E], b Result[B, E]) Result[Pair[A, B], E] {
	return ZipWith(a, b, func(x A, y B) Pair[A, B] {
		return Pair[A, B]{Fst: x, Snd: y}
	})
}

// ZipWith combines two Ok values with f, left-biased on errors.
func ZipWith[A, B, C, E any](a Result[A, E], b Result[B, E], f func(A, B) C) Result[C, E] {
	if a.isErr {
		return Err[C, E](a.err)
	}
	if b.isErr {
		return Err[C, E](b.err)
	}
	return Ok[C, E](f(a.value, b.value))
}

// Ap applies a wrapped function to a wrapped value, left-biased on errors.
func Ap[T, U, E any](f Result[func(T) U, E], r Result[T, E]) Result[U, E] {
	if f.isErr {
		return Err[U, E](f.err)
	}
	if r.isErr {
		return Err[U, E](r.err)
	}
	return Ok[U, E](f.value(r.value))
}

// Recover turns any Err into Ok by mapping the error to a value.
func Recover[T, E any](r Result[T, E], f func(E) T) Result[T, E] {
	if r.isErr {
		return Ok[T, E](f(r.err))
	}
	return r
}

// RecoverWith allows conditional, possibly still-failing recovery: f may
// return Ok to recover or a new Err to keep failing.
func RecoverWith[T, E any](r Result[T, E], f func(E) Result[T, E]) Result[T, E] {
	if r.isErr {
		return f(r.err)
	}
	return r
}

// Match eliminates the Result through exactly one of the two handlers.
func Match[T, E, U any](r Result[T, E], onOk func(T) U, onErr func(E) U) U {
	if r.isErr {
		return onErr(r.err)
	}
	return onOk(r.value)
}

// ToOption discards the error, keeping only presence of success.
func ToOption[T, E any](r Result[T, E]) option.Option[T] {
	if r.isErr {
		return option.None[T]()
	}
	return option.Some(r.value)
}

// FromOption converts absence into a typed failure.
func FromOption[T, E any](o option.Option[T], err E) Result[T, E] {
	if v, ok := o.Get(); ok {
		return Ok[T, E](v)
	}
	return Err[T, E](err)
}
