package writer

import "github.com/ib-77/adt/pkg/fp/monoid"

// Writer pairs a value with an accumulated log of monoid type W. The
// monoid is supplied at construction and carried by the value; every
// transformation reuses it, so logs from a chain combine consistently.
type Writer[W, A any] struct {
	value A
	log   W
	m     monoid.Monoid[W]
}

// New builds a Writer from an explicit value, log and monoid.
func New[W, A any](value A, log W, m monoid.Monoid[W]) Writer[W, A] {
	return Writer[W, A]{value: value, log: log, m: m}
}

// Unit wraps a value with the monoid's identity log.
func Unit[W, A any](value A, m monoid.Monoid[W]) Writer[W, A] {
	return Writer[W, A]{value: value, log: m.Identity(), m: m}
}

// Tell records an entry with no meaningful value.
func Tell[W any](entry W, m monoid.Monoid[W]) Writer[W, struct{}] {
	return Writer[W, struct{}]{log: entry, m: m}
}

// Value returns the computed value.
func (w Writer[W, A]) Value() A {
	return w.value
}

// Log returns the accumulated log.
func (w Writer[W, A]) Log() W {
	return w.log
}

// Run extracts the value and the accumulated log.
func (w Writer[W, A]) Run() (A, W) {
	return w.value, w.log
}

// Map transforms the value, leaving the log untouched.
func Map[W, A, B any](w Writer[W, A], f func(A) B) Writer[W, B] {
	return Writer[W, B]{value: f(w.value), log: w.log, m: w.m}
}

// Bind chains a Writer-producing step, combining the logs in order
// (receiver's log, then the step's log) with the carried monoid.
func Bind[W, A, B any](w Writer[W, A], f func(A) Writer[W, B]) Writer[W, B] {
	next := f(w.value)
	return Writer[W, B]{
		value: next.value,
		log:   w.m.Combine(w.log, next.log),
		m:     w.m,
	}
}

// Pair holds a value alongside the log Listen exposed.
type Pair[A, W any] struct {
	Value A
	Log   W
}

// Listen exposes the accumulated log alongside the value without altering
// either.
func Listen[W, A any](w Writer[W, A]) Writer[W, Pair[A, W]] {
	return Writer[W, Pair[A, W]]{
		value: Pair[A, W]{Value: w.value, Log: w.log},
		log:   w.log,
		m:     w.m,
	}
}

// Censor replaces the log with transform(log); the value is unchanged.
func Censor[W, A any](transform func(W) W, w Writer[W, A]) Writer[W, A] {
	return Writer[W, A]{value: w.value, log: transform(w.log), m: w.m}
}
