package nelist

import (
	"slices"
	"testing"

	"github.com/ib-77/adt/pkg/fp/lazy"
)

func TestNew(t *testing.T) {
	t.Parallel()
	l := New(1, 2, 3)
	if l.Head() != 1 {
		t.Fatalf("expected head 1, got %d", l.Head())
	}
	if got := l.Tail(); !slices.Equal(got, []int{2, 3}) {
		t.Fatalf("expected tail [2 3], got %v", got)
	}
	if l.Len() != 3 {
		t.Fatalf("expected len 3, got %d", l.Len())
	}
}

func TestFromSliceEmptySignalsAbsence(t *testing.T) {
	t.Parallel()
	if FromSlice([]int{}).IsSome() {
		t.Fatalf("empty input must give None, never a partial value")
	}
	o := FromSlice([]int{1, 2})
	l, ok := o.Get()
	if !ok || l.Head() != 1 || !slices.Equal(l.Tail(), []int{2}) {
		t.Fatalf("expected head 1 tail [2], got: ok=%v l=%v", ok, l.Slice())
	}
}

func TestFromSeq(t *testing.T) {
	t.Parallel()
	if FromSeq(lazy.FromSlice([]string{})).IsSome() {
		t.Fatalf("empty sequence must give None")
	}
	l, ok := FromSeq(lazy.FromSlice([]string{"a", "b", "c"})).Get()
	if !ok || l.Head() != "a" || l.Len() != 3 {
		t.Fatalf("expected head a len 3, got: ok=%v l=%v", ok, l.Slice())
	}
}

func TestAppendIsPersistent(t *testing.T) {
	t.Parallel()
	l := New(1)
	l2 := l.Append(2).Append(3)
	if l.Len() != 1 {
		t.Fatalf("original must be unaffected, len=%d", l.Len())
	}
	if got := l2.Slice(); !slices.Equal(got, []int{1, 2, 3}) {
		t.Fatalf("expected [1 2 3], got %v", got)
	}
	if l2.Last() != 3 {
		t.Fatalf("expected last 3, got %d", l2.Last())
	}
}

func TestIterationOrderHeadFirst(t *testing.T) {
	t.Parallel()
	var seen []int
	for v := range New(1, 2, 3).All() {
		seen = append(seen, v)
	}
	if !slices.Equal(seen, []int{1, 2, 3}) {
		t.Fatalf("expected head-then-tail order, got %v", seen)
	}
}

func TestMap(t *testing.T) {
	t.Parallel()
	l := Map(New(1, 2), func(x int) int { return x * 10 })
	if got := l.Slice(); !slices.Equal(got, []int{10, 20}) {
		t.Fatalf("expected [10 20], got %v", got)
	}
	if l.Len() != 2 {
		t.Fatalf("Map must preserve length, got %d", l.Len())
	}
}

func TestLastOfSingleton(t *testing.T) {
	t.Parallel()
	if New(7).Last() != 7 {
		t.Fatalf("singleton last must be the head")
	}
}
