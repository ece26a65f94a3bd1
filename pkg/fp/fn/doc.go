// Package fn provides plain function combinators with no algebraic
// structure: glue for pipelines and higher-order APIs.
//
// - Pipe/Compose: thread values and build handlers from small pieces
// - Curry2/Curry3/Flip: reshape functions to fit unary-first APIs
// - Tap: side effects without breaking data flow
// - Thunk/Once: memoized and run-at-most-once wrappers
// - Identity/Const/Unit: trivial building blocks
// - Foldl/Foldr/Reduce: reductions; Reduce returns an Option for empty
//   input
package fn
