package nelist

import (
	"iter"
	"slices"

	"github.com/ib-77/adt/pkg/fp/option"
)

// NonEmptyList is a list statically guaranteed to hold at least one element.
// Head access never needs a runtime check; the tail may be empty. Values are
// immutable: Append returns a new list sharing no mutable backing with the
// receiver.
type NonEmptyList[E any] struct {
	head E
	tail []E
}

// New builds a list from a guaranteed head and optional tail elements.
func New[E any](head E, tail ...E) NonEmptyList[E] {
	return NonEmptyList[E]{head: head, tail: slices.Clone(tail)}
}

// FromSlice builds a list from a raw slice, signalling absence for empty
// input instead of producing a partially-valid value.
func FromSlice[E any](xs []E) option.Option[NonEmptyList[E]] {
	if len(xs) == 0 {
		return option.None[NonEmptyList[E]]()
	}
	return option.Some(New(xs[0], xs[1:]...))
}

// FromSeq builds a list from a finite sequence, or None when it is empty.
func FromSeq[E any](xs iter.Seq[E]) option.Option[NonEmptyList[E]] {
	var (
		head    E
		tail    []E
		started bool
	)
	for x := range xs {
		if !started {
			head = x
			started = true
			continue
		}
		tail = append(tail, x)
	}
	if !started {
		return option.None[NonEmptyList[E]]()
	}
	return option.Some(NonEmptyList[E]{head: head, tail: tail})
}

// Head returns the first element. Always present.
func (l NonEmptyList[E]) Head() E {
	return l.head
}

// Tail returns a copy of the elements after the head; possibly empty.
func (l NonEmptyList[E]) Tail() []E {
	return slices.Clone(l.tail)
}

// Last returns the final element.
func (l NonEmptyList[E]) Last() E {
	if len(l.tail) == 0 {
		return l.head
	}
	return l.tail[len(l.tail)-1]
}

// Len is always at least 1.
func (l NonEmptyList[E]) Len() int {
	return 1 + len(l.tail)
}

// Append returns a new list with e logically at the end. The receiver is
// unaffected.
func (l NonEmptyList[E]) Append(e E) NonEmptyList[E] {
	tail := make([]E, 0, len(l.tail)+1)
	tail = append(tail, l.tail...)
	tail = append(tail, e)
	return NonEmptyList[E]{head: l.head, tail: tail}
}

// All yields the elements in order, head first.
func (l NonEmptyList[E]) All() iter.Seq[E] {
	return func(yield func(E) bool) {
		if !yield(l.head) {
			return
		}
		for _, e := range l.tail {
			if !yield(e) {
				return
			}
		}
	}
}

// Slice materializes the list as a plain slice of length Len.
func (l NonEmptyList[E]) Slice() []E {
	out := make([]E, 0, l.Len())
	out = append(out, l.head)
	out = append(out, l.tail...)
	return out
}

// Map transforms every element, preserving order and non-emptiness.
func Map[E, F any](l NonEmptyList[E], f func(E) F) NonEmptyList[F] {
	tail := make([]F, len(l.tail))
	for i, e := range l.tail {
		tail[i] = f(e)
	}
	return NonEmptyList[F]{head: f(l.head), tail: tail}
}
