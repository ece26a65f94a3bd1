// Package option provides Option[T], a container holding zero or one value.
//
// It replaces nil checks and comma-ok branching with composable operations:
//
// - Some/None/FromPtr/FromOk: construct options
// - Map/Bind: transform or flat-map the contained value
// - Filter/Flatten/Zip/ZipWith/Ap: combine and reshape options
// - OrElse/OrElseGet: fall back to an alternative (lazily if needed)
// - UnwrapOr/UnwrapOrElse/Match: extract at a program boundary
// - Unwrap/Expect: escape hatches that panic on None
//
// The zero value is None. Use result.FromOption to turn absence into a
// typed failure.
package option
