package option

import (
	"strconv"
	"testing"
)

func TestSomeAndNone(t *testing.T) {
	t.Parallel()
	s := Some(5)
	if !s.IsSome() || s.IsNone() {
		t.Fatalf("expected Some, got: some=%v none=%v", s.IsSome(), s.IsNone())
	}
	n := None[int]()
	if n.IsSome() || !n.IsNone() {
		t.Fatalf("expected None, got: some=%v none=%v", n.IsSome(), n.IsNone())
	}
}

func TestZeroValueIsNone(t *testing.T) {
	t.Parallel()
	var o Option[string]
	if o.IsSome() {
		t.Fatalf("zero value should be None")
	}
}

func TestFromPtr(t *testing.T) {
	t.Parallel()
	v := 3
	if got := FromPtr(&v).UnwrapOr(0); got != 3 {
		t.Fatalf("expected 3, got %d", got)
	}
	if FromPtr[int](nil).IsSome() {
		t.Fatalf("nil pointer should give None")
	}
}

func TestFromOk(t *testing.T) {
	t.Parallel()
	m := map[string]int{"a": 1}
	v, ok := m["a"]
	if got := FromOk(v, ok).UnwrapOr(0); got != 1 {
		t.Fatalf("expected 1, got %d", got)
	}
	v, ok = m["b"]
	if FromOk(v, ok).IsSome() {
		t.Fatalf("missing key should give None")
	}
}

func TestMap(t *testing.T) {
	t.Parallel()
	got := Map(Some(2), func(x int) int { return x + 1 })
	if v, ok := got.Get(); !ok || v != 3 {
		t.Fatalf("expected Some(3), got: ok=%v v=%v", ok, v)
	}
	if Map(None[int](), func(x int) int { return x + 1 }).IsSome() {
		t.Fatalf("mapping None should stay None")
	}
}

func TestMapDoesNotRunOnNone(t *testing.T) {
	t.Parallel()
	called := false
	Map(None[int](), func(x int) int {
		called = true
		return x
	})
	if called {
		t.Fatalf("f must not run on None")
	}
}

func TestBind(t *testing.T) {
	t.Parallel()
	parse := func(s string) Option[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return None[int]()
		}
		return Some(n)
	}
	if v := Bind(Some("7"), parse).UnwrapOr(0); v != 7 {
		t.Fatalf("expected 7, got %d", v)
	}
	if Bind(Some("x"), parse).IsSome() {
		t.Fatalf("expected None for unparsable input")
	}
	if Bind(None[string](), parse).IsSome() {
		t.Fatalf("binding None should stay None")
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()
	even := func(x int) bool { return x%2 == 0 }
	if !Some(4).Filter(even).IsSome() {
		t.Fatalf("4 should pass the filter")
	}
	if Some(3).Filter(even).IsSome() {
		t.Fatalf("3 should be filtered out")
	}
	if None[int]().Filter(even).IsSome() {
		t.Fatalf("None stays None")
	}
}

func TestFlatten(t *testing.T) {
	t.Parallel()
	if v := Flatten(Some(Some(1))).UnwrapOr(0); v != 1 {
		t.Fatalf("expected 1, got %d", v)
	}
	if Flatten(Some(None[int]())).IsSome() {
		t.Fatalf("inner None should flatten to None")
	}
	if Flatten(None[Option[int]]()).IsSome() {
		t.Fatalf("outer None should flatten to None")
	}
}

func TestZipAndZipWith(t *testing.T) {
	t.Parallel()
	p, ok := Zip(Some(1), Some("a")).Get()
	if !ok || p.Fst != 1 || p.Snd != "a" {
		t.Fatalf("expected Some(1, a), got: ok=%v p=%v", ok, p)
	}
	if Zip(Some(1), None[string]()).IsSome() {
		t.Fatalf("zip with None should be None")
	}
	if Zip(None[int](), Some("a")).IsSome() {
		t.Fatalf("zip with None should be None")
	}
	sum := ZipWith(Some(2), Some(3), func(a, b int) int { return a + b })
	if v := sum.UnwrapOr(0); v != 5 {
		t.Fatalf("expected 5, got %d", v)
	}
}

func TestAp(t *testing.T) {
	t.Parallel()
	inc := Some(func(x int) int { return x + 1 })
	if v := Ap(inc, Some(1)).UnwrapOr(0); v != 2 {
		t.Fatalf("expected 2, got %d", v)
	}
	if Ap(None[func(int) int](), Some(1)).IsSome() {
		t.Fatalf("absent function should give None")
	}
	if Ap(inc, None[int]()).IsSome() {
		t.Fatalf("absent value should give None")
	}
}

func TestOrElseGetLaziness(t *testing.T) {
	t.Parallel()
	called := false
	got := Some(1).OrElseGet(func() Option[int] {
		called = true
		return Some(2)
	})
	if called {
		t.Fatalf("producer must not run when receiver is Some")
	}
	if v := got.UnwrapOr(0); v != 1 {
		t.Fatalf("expected 1, got %d", v)
	}

	got = None[int]().OrElseGet(func() Option[int] {
		called = true
		return Some(2)
	})
	if !called {
		t.Fatalf("producer must run when receiver is None")
	}
	if v := got.UnwrapOr(0); v != 2 {
		t.Fatalf("expected 2, got %d", v)
	}
}

func TestUnwrapOrElseLaziness(t *testing.T) {
	t.Parallel()
	called := false
	v := Some(1).UnwrapOrElse(func() int {
		called = true
		return 9
	})
	if called || v != 1 {
		t.Fatalf("producer ran or wrong value: called=%v v=%d", called, v)
	}
	v = None[int]().UnwrapOrElse(func() int { return 9 })
	if v != 9 {
		t.Fatalf("expected 9, got %d", v)
	}
}

func TestUnwrapPanicsOnNone(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("Unwrap on None must panic")
		}
	}()
	None[int]().Unwrap()
}

func TestExpectPanicsOnNone(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Fatalf("Expect on None must panic")
		}
	}()
	None[int]().Expect("needed a value")
}

func TestMatch(t *testing.T) {
	t.Parallel()
	got := Match(Some(2), strconv.Itoa, func() string { return "-" })
	if got != "2" {
		t.Fatalf("expected 2, got %q", got)
	}
	got = Match(None[int](), strconv.Itoa, func() string { return "-" })
	if got != "-" {
		t.Fatalf("expected -, got %q", got)
	}
}

func TestIter(t *testing.T) {
	t.Parallel()
	var seen []int
	for v := range Some(5).Iter() {
		seen = append(seen, v)
	}
	if len(seen) != 1 || seen[0] != 5 {
		t.Fatalf("expected [5], got %v", seen)
	}
	for range None[int]().Iter() {
		t.Fatalf("None must yield nothing")
	}
}
