// Package flow provides a fluent, context-aware wrapper around
// Result[T, error] for building railway pipelines.
//
// A Flow carries a uuid identity and creation time from Start through
// every step. Steps short-circuit on failure or context cancellation:
//
// - Start/FromValue: begin a flow
// - Then/ThenTry: compose result-returning or (T, error) functions
// - Map: transform the successful value
// - Ensure: run side effects without changing the result
// - Finally: collapse into a final value via handlers
//
// Type-changing steps use the package-level Then/Map/Finally.
package flow
