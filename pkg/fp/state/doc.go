// Package state provides State[S, A], pure stateful computation without
// mutation.
//
// A State wraps a function S -> (A, S). Bind threads the state left to
// right through a chain; Get/Put/Modify/Gets are the usual primitives. Run
// supplies the initial state and returns (value, final state); Eval and
// Exec keep one half.
package state
