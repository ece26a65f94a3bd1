package traverse

import (
	"iter"

	"github.com/ib-77/adt/pkg/fp/lazy"
	"github.com/ib-77/adt/pkg/fp/option"
	"github.com/ib-77/adt/pkg/fp/result"
)

// SequenceOption collects a sequence of options into an option of values.
// It walks the input once and stops at the first None without forcing any
// later element.
func SequenceOption[A any](xs iter.Seq[option.Option[A]]) option.Option[[]A] {
	var out []A
	for x := range xs {
		v, ok := x.Get()
		if !ok {
			return option.None[[]A]()
		}
		out = append(out, v)
	}
	return option.Some(out)
}

// TraverseOption maps f over the sequence and collects the results in one
// pass, short-circuiting to None at the first absent element. Elements
// after the short-circuiting one are never visited and f is never called
// on them.
func TraverseOption[A, B any](xs iter.Seq[A], f func(A) option.Option[B]) option.Option[[]B] {
	var out []B
	for x := range xs {
		v, ok := f(x).Get()
		if !ok {
			return option.None[[]B]()
		}
		out = append(out, v)
	}
	return option.Some(out)
}

// SequenceResult collects a sequence of results into a result of values,
// returning the first Err encountered without forcing later elements.
func SequenceResult[A, E any](xs iter.Seq[result.Result[A, E]]) result.Result[[]A, E] {
	var out []A
	for x := range xs {
		v, err, ok := x.Get()
		if !ok {
			return result.Err[[]A](err)
		}
		out = append(out, v)
	}
	return result.Ok[[]A, E](out)
}

// TraverseResult maps f over the sequence and collects the results in one
// pass, short-circuiting on the first Err.
func TraverseResult[A, B, E any](xs iter.Seq[A], f func(A) result.Result[B, E]) result.Result[[]B, E] {
	var out []B
	for x := range xs {
		v, err, ok := f(x).Get()
		if !ok {
			return result.Err[[]B](err)
		}
		out = append(out, v)
	}
	return result.Ok[[]B, E](out)
}

// SequenceOptionSlice is SequenceOption over a materialized slice.
func SequenceOptionSlice[A any](xs []option.Option[A]) option.Option[[]A] {
	return SequenceOption(lazy.FromSlice(xs))
}

// TraverseOptionSlice is TraverseOption over a materialized slice.
func TraverseOptionSlice[A, B any](xs []A, f func(A) option.Option[B]) option.Option[[]B] {
	return TraverseOption(lazy.FromSlice(xs), f)
}

// SequenceResultSlice is SequenceResult over a materialized slice.
func SequenceResultSlice[A, E any](xs []result.Result[A, E]) result.Result[[]A, E] {
	return SequenceResult(lazy.FromSlice(xs))
}

// TraverseResultSlice is TraverseResult over a materialized slice.
func TraverseResultSlice[A, B, E any](xs []A, f func(A) result.Result[B, E]) result.Result[[]B, E] {
	return TraverseResult(lazy.FromSlice(xs), f)
}
