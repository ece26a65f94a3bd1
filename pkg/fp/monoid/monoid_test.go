package monoid

import (
	"slices"
	"testing"
)

// checkLaws verifies identity and associativity for an instance over three
// sample values.
func checkLaws[W any](t *testing.T, name string, m Monoid[W], a, b, c W, eq func(x, y W) bool) {
	t.Helper()
	id := m.Identity()
	if !eq(m.Combine(id, a), a) {
		t.Fatalf("%s: left identity violated", name)
	}
	if !eq(m.Combine(a, id), a) {
		t.Fatalf("%s: right identity violated", name)
	}
	left := m.Combine(m.Combine(a, b), c)
	right := m.Combine(a, m.Combine(b, c))
	if !eq(left, right) {
		t.Fatalf("%s: associativity violated: %v != %v", name, left, right)
	}
}

func eqComparable[W comparable](x, y W) bool { return x == y }

func TestSliceLaws(t *testing.T) {
	t.Parallel()
	checkLaws[[]int](t, "Slice", Slice[int]{},
		[]int{1}, []int{2, 3}, []int{4},
		slices.Equal)
}

func TestSliceCombineCopies(t *testing.T) {
	t.Parallel()
	a := make([]int, 1, 4)
	a[0] = 1
	got := Slice[int]{}.Combine(a, []int{2})
	got[0] = 99
	if a[0] != 1 {
		t.Fatalf("Combine must not alias its operands")
	}
}

func TestStringLaws(t *testing.T) {
	t.Parallel()
	checkLaws[string](t, "String", String{}, "a", "b", "c", eqComparable)
}

func TestSumLaws(t *testing.T) {
	t.Parallel()
	checkLaws[int](t, "Sum", Sum[int]{}, 1, 2, 3, eqComparable)
	checkLaws[float64](t, "SumFloat", Sum[float64]{}, 1.5, 2.5, 4.0, eqComparable)
}

func TestProductLaws(t *testing.T) {
	t.Parallel()
	checkLaws[int](t, "Product", Product[int]{}, 2, 3, 4, eqComparable)
}

func TestAllLaws(t *testing.T) {
	t.Parallel()
	checkLaws[bool](t, "All", All{}, true, false, true, eqComparable)
	and := All{}
	if and.Combine(true, true) != true || and.Combine(true, false) != false {
		t.Fatalf("All must be logical AND")
	}
}

func TestAnyLaws(t *testing.T) {
	t.Parallel()
	checkLaws[bool](t, "Any", Any{}, false, true, false, eqComparable)
	or := Any{}
	if or.Combine(false, false) != false || or.Combine(false, true) != true {
		t.Fatalf("Any must be logical OR")
	}
}

func TestUnionLaws(t *testing.T) {
	t.Parallel()
	eqSet := func(x, y map[string]struct{}) bool {
		return slices.Equal(Elems(x), Elems(y))
	}
	checkLaws[map[string]struct{}](t, "Union", Union[string]{},
		Set("a"), Set("b", "c"), Set("a", "d"), eqSet)

	got := Union[string]{}.Combine(Set("a", "b"), Set("b", "c"))
	if want := []string{"a", "b", "c"}; !slices.Equal(Elems(got), want) {
		t.Fatalf("expected %v, got %v", want, Elems(got))
	}
}

func TestUnionCombineDoesNotMutateOperands(t *testing.T) {
	t.Parallel()
	a := Set(1)
	b := Set(2)
	Union[int]{}.Combine(a, b)
	if len(a) != 1 || len(b) != 1 {
		t.Fatalf("operands must stay untouched: a=%v b=%v", a, b)
	}
}

func TestMaxLaws(t *testing.T) {
	t.Parallel()
	checkLaws[int](t, "MaxInt", MaxInt(), 3, -7, 12, eqComparable)
	checkLaws[float64](t, "MaxFloat64", MaxFloat64(), 1.5, -2.5, 0.0, eqComparable)
	if MaxInt().Combine(3, 9) != 9 {
		t.Fatalf("Max must keep the larger value")
	}
}

func TestMinLaws(t *testing.T) {
	t.Parallel()
	checkLaws[int](t, "MinInt", MinInt(), 3, -7, 12, eqComparable)
	checkLaws[float64](t, "MinFloat64", MinFloat64(), 1.5, -2.5, 0.0, eqComparable)
	if MinInt().Combine(3, 9) != 3 {
		t.Fatalf("Min must keep the smaller value")
	}
}
