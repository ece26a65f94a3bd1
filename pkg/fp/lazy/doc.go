// Package lazy provides small iterator helpers over iter.Seq: Map, Filter,
// Chunk and GroupByKey, plus FromSlice/Collect adapters.
//
// Everything stays lazy; elements are only forced when the consumer pulls
// them, which is what lets package traverse honor its short-circuit
// contract over these sequences.
package lazy
