package monoid

import (
	"cmp"
	"maps"
	"math"
	"slices"
)

// Monoid is a type with an identity element and an associative combine
// operation. The laws
//
//	Combine(Identity(), x) == x == Combine(x, Identity())
//	Combine(Combine(a, b), c) == Combine(a, Combine(b, c))
//
// are the caller's responsibility for custom instances; every instance in
// this package satisfies them.
type Monoid[W any] interface {
	Identity() W
	Combine(a, b W) W
}

// Number constrains the numeric instances.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Slice concatenates slices; identity is the empty slice. Combine copies
// both operands, so accumulated logs never alias caller-owned backing
// arrays.
type Slice[E any] struct{}

func (Slice[E]) Identity() []E { return nil }

func (Slice[E]) Combine(a, b []E) []E {
	out := make([]E, 0, len(a)+len(b))
	out = append(out, a...)
	out = append(out, b...)
	return out
}

// String concatenates strings; identity is the empty string.
type String struct{}

func (String) Identity() string           { return "" }
func (String) Combine(a, b string) string { return a + b }

// Sum adds numbers; identity is zero.
type Sum[N Number] struct{}

func (Sum[N]) Identity() N      { return 0 }
func (Sum[N]) Combine(a, b N) N { return a + b }

// Product multiplies numbers; identity is one.
type Product[N Number] struct{}

func (Product[N]) Identity() N      { return 1 }
func (Product[N]) Combine(a, b N) N { return a * b }

// All is logical AND; identity is true.
type All struct{}

func (All) Identity() bool         { return true }
func (All) Combine(a, b bool) bool { return a && b }

// Any is logical OR; identity is false.
type Any struct{}

func (Any) Identity() bool         { return false }
func (Any) Combine(a, b bool) bool { return a || b }

// Union unions sets represented as map[E]struct{}; identity is the empty
// set. Combine builds a fresh map, leaving both operands untouched.
type Union[E comparable] struct{}

func (Union[E]) Identity() map[E]struct{} { return map[E]struct{}{} }

func (Union[E]) Combine(a, b map[E]struct{}) map[E]struct{} {
	out := make(map[E]struct{}, len(a)+len(b))
	maps.Copy(out, a)
	maps.Copy(out, b)
	return out
}

// Set builds a Union-compatible set from elements.
func Set[E comparable](xs ...E) map[E]struct{} {
	out := make(map[E]struct{}, len(xs))
	for _, x := range xs {
		out[x] = struct{}{}
	}
	return out
}

// Elems returns the elements of a Union-compatible set in sorted order.
func Elems[E cmp.Ordered](set map[E]struct{}) []E {
	return slices.Sorted(maps.Keys(set))
}

// Max keeps the larger value. Floor is the identity and must be a lower
// bound for every value combined; use MaxInt/MaxFloat64 for the usual
// bounds.
type Max[N cmp.Ordered] struct{ Floor N }

func (m Max[N]) Identity() N    { return m.Floor }
func (Max[N]) Combine(a, b N) N { return max(a, b) }

// MaxInt is Max over int with the smallest int as identity.
func MaxInt() Max[int] { return Max[int]{Floor: math.MinInt} }

// MaxFloat64 is Max over float64 with negative infinity as identity.
func MaxFloat64() Max[float64] { return Max[float64]{Floor: math.Inf(-1)} }

// Min keeps the smaller value. Ceil is the identity and must be an upper
// bound for every value combined; use MinInt/MinFloat64 for the usual
// bounds.
type Min[N cmp.Ordered] struct{ Ceil N }

func (m Min[N]) Identity() N    { return m.Ceil }
func (Min[N]) Combine(a, b N) N { return min(a, b) }

// MinInt is Min over int with the largest int as identity.
func MinInt() Min[int] { return Min[int]{Ceil: math.MaxInt} }

// MinFloat64 is Min over float64 with positive infinity as identity.
func MinFloat64() Min[float64] { return Min[float64]{Ceil: math.Inf(1)} }
