package lazy

import "iter"

// Map lazily applies f to each element of xs.
func Map[T, U any](xs iter.Seq[T], f func(T) U) iter.Seq[U] {
	return func(yield func(U) bool) {
		for x := range xs {
			if !yield(f(x)) {
				return
			}
		}
	}
}

// Filter lazily yields the elements of xs for which pred holds.
func Filter[T any](xs iter.Seq[T], pred func(T) bool) iter.Seq[T] {
	return func(yield func(T) bool) {
		for x := range xs {
			if pred(x) && !yield(x) {
				return
			}
		}
	}
}

// Chunk yields slices of up to size elements; the final chunk may be
// shorter. Panics when size is not positive.
func Chunk[T any](xs iter.Seq[T], size int) iter.Seq[[]T] {
	if size <= 0 {
		panic("lazy: Chunk size must be positive")
	}
	return func(yield func([]T) bool) {
		buf := make([]T, 0, size)
		for x := range xs {
			buf = append(buf, x)
			if len(buf) == size {
				if !yield(buf) {
					return
				}
				buf = make([]T, 0, size)
			}
		}
		if len(buf) > 0 {
			yield(buf)
		}
	}
}

// GroupByKey groups consecutive elements sharing a key; the input must be
// pre-sorted by key for global grouping.
func GroupByKey[T any, K comparable](xs iter.Seq[T], key func(T) K) iter.Seq2[K, []T] {
	return func(yield func(K, []T) bool) {
		var (
			cur     K
			group   []T
			started bool
		)
		for x := range xs {
			k := key(x)
			if started && k != cur {
				if !yield(cur, group) {
					return
				}
				group = nil
			}
			cur = k
			started = true
			group = append(group, x)
		}
		if started {
			yield(cur, group)
		}
	}
}

// FromSlice adapts a slice to a lazy sequence.
func FromSlice[T any](xs []T) iter.Seq[T] {
	return func(yield func(T) bool) {
		for _, x := range xs {
			if !yield(x) {
				return
			}
		}
	}
}

// Collect materializes a sequence into a slice.
func Collect[T any](xs iter.Seq[T]) []T {
	var out []T
	for x := range xs {
		out = append(out, x)
	}
	return out
}
