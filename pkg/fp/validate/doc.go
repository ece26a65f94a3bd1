// Package validate runs every check against a value and accumulates all
// failures, instead of stopping at the first one.
//
// All returns Ok with the final (possibly normalized) value when every
// check passes, or Err with a NonEmptyList of every error in check order.
// AllErr collapses that list into a single combined error.
package validate
