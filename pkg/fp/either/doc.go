// Package either provides Either[L, R], a symmetric two-variant sum type.
//
// Use it when a computation produces one of two equally valid outcomes and
// Result's success/failure bias would mislead (e.g. parse-as-int or
// keep-as-string).
//
// - Left/Right: construct either side
// - MapLeft/MapRight/Bimap: transform one or both sides
// - Fold: the sole elimination producing a unified type
// - Swap: flip sides; Swap twice is the identity
// - ToResult: opt into success semantics with Right as Ok
package either
