package option

import (
	"fmt"
	"iter"
)

// Option holds zero or one value of type T. The zero value is None, so an
// Option can be embedded in other structs without initialization. The value
// is stored inline; use IsSome to distinguish absence from a present zero
// value.
type Option[T any] struct {
	value T
	ok    bool
}

// Some wraps a present value.
func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

// None returns the absent value for T.
func None[T any]() Option[T] {
	return Option[T]{}
}

// FromPtr converts a nullable pointer into an Option, treating nil as None.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromOk lifts Go's comma-ok pattern (map lookups, type assertions) into an
// Option.
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}

// Get returns the contained value and whether it is present.
func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Filter keeps a Some value only when pred holds for it.
func (o Option[T]) Filter(pred func(T) bool) Option[T] {
	if o.ok && pred(o.value) {
		return o
	}
	return None[T]()
}

// OrElse returns the receiver if it is Some, otherwise alt.
func (o Option[T]) OrElse(alt Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return alt
}

// OrElseGet returns the receiver if it is Some, otherwise the produced
// alternative. The producer is not invoked unless the receiver is None.
func (o Option[T]) OrElseGet(produce func() Option[T]) Option[T] {
	if o.ok {
		return o
	}
	return produce()
}

// UnwrapOr returns the contained value or def when None.
func (o Option[T]) UnwrapOr(def T) T {
	if o.ok {
		return o.value
	}
	return def
}

// UnwrapOrElse returns the contained value or computes a default. The
// producer runs only when the receiver is None.
func (o Option[T]) UnwrapOrElse(produce func() T) T {
	if o.ok {
		return o.value
	}
	return produce()
}

// Unwrap returns the contained value and panics on None. It signals a
// contract violation by the caller; do not use it inside composed pipelines.
func (o Option[T]) Unwrap() T {
	if !o.ok {
		panic("option: Unwrap on None")
	}
	return o.value
}

// Expect is Unwrap with a caller-supplied panic message.
func (o Option[T]) Expect(msg string) T {
	if !o.ok {
		panic(fmt.Sprintf("option: %s", msg))
	}
	return o.value
}

// Iter yields zero-or-one values.
func (o Option[T]) Iter() iter.Seq[T] {
	return func(yield func(T) bool) {
		if o.ok {
			yield(o.value)
		}
	}
}

// Map applies f to a present value; None passes through.
func Map[T, U any](o Option[T], f func(T) U) Option[U] {
	if v, ok := o.Get(); ok {
		return Some(f(v))
	}
	return None[U]()
}

// Bind flat-maps with a function that itself returns an Option, avoiding a
// nested Option[Option[U]].
func Bind[T, U any](o Option[T], f func(T) Option[U]) Option[U] {
	if v, ok := o.Get(); ok {
		return f(v)
	}
	return None[U]()
}

// Flatten collapses one level of nesting.
func Flatten[T any](o Option[Option[T]]) Option[T] {
	if inner, ok := o.Get(); ok {
		return inner
	}
	return None[T]()
}

// Pair holds two values combined by Zip.
type Pair[A, B any] struct {
	Fst A
	Snd B
}

// Zip combines two Options into a pair when both are Some.
func Zip[A, B any](a Option[A], b Option[B]) Option[Pair[A, B]] {
	return ZipWith(a, b, func(x A, y B) Pair[A, B] {
		return Pair[A, B]{Fst: x, Snd: y}
	})
}

// ZipWith combines two Options with f when both are Some.
func ZipWith[A, B, C any](a Option[A], b Option[B], f func(A, B) C) Option[C] {
	av, aok := a.Get()
	bv, bok := b.Get()
	if aok && bok {
		return Some(f(av, bv))
	}
	return None[C]()
}

// Ap applies a wrapped function to a wrapped value (applicative apply).
func Ap[T, U any](f Option[func(T) U], o Option[T]) Option[U] {
	fn, fok := f.Get()
	v, vok := o.Get()
	if fok && vok {
		return Some(fn(v))
	}
	return None[U]()
}

// Match eliminates the Option through exactly one of the two handlers.
func Match[T, U any](o Option[T], onSome func(T) U, onNone func() U) U {
	if v, ok := o.Get(); ok {
		return onSome(v)
	}
	return onNone()
}
