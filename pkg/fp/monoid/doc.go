// Package monoid defines the Monoid[W] interface and the built-in
// instances used by package writer.
//
// A monoid supplies an identity element and an associative combine.
// Instances: Slice (concat), String (concat), Sum, Product, All (AND),
// Any (OR), Union (set union), Max, Min.
package monoid
