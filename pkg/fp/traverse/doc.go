// Package traverse lifts collections of Option/Result values into a single
// Option/Result of a collection.
//
// Synchronous forms walk an iter.Seq once and short-circuit at the first
// None/Err without forcing later elements. Ctx forms apply an effectful
// step strictly left to right under a context.Context. Parallel forms fan
// out with errgroup, keep result slots index-aligned and deterministically
// report the lowest-index failure. Gather/GatherAccumulate await
// already-scheduled result channels; this package never schedules work of
// its own beyond that fan-out.
package traverse
