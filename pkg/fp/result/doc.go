// Package result provides Result[T, E], a success-or-typed-failure
// container for railway-oriented pipelines.
//
// Once a computation is on the Err rail every Map/Bind is a pass-through
// until an explicit Recover, RecoverWith or terminal Match.
//
// - Ok/Err: construct results; Of/Catch bridge (T, error) and panics
// - Map/MapErr: transform one channel independently of the other
// - Bind/Flatten: chain result-producing steps, short-circuiting on Err
// - Zip/ZipWith/Ap: combine independent results (left-biased on errors)
// - Recover/RecoverWith: leave the error rail
// - UnwrapOr/UnwrapOrElse/Match: extract at a program boundary
// - ToOption/FromOption: bridge to package option
package result
