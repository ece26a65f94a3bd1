package state

// State is a computation that threads a state value S while producing A.
// It wraps a pure function S -> (A, S); the returned state is a new value,
// never a mutated alias of the input.
type State[S, A any] struct {
	run func(S) (A, S)
}

// New wraps a function from state to (value, next state).
func New[S, A any](run func(S) (A, S)) State[S, A] {
	return State[S, A]{run: run}
}

// Pure yields v without touching the state.
func Pure[S, A any](v A) State[S, A] {
	return New(func(s S) (A, S) { return v, s })
}

// Get returns the current state unchanged as the value.
func Get[S any]() State[S, S] {
	return New(func(s S) (S, S) { return s, s })
}

// Put discards the incoming state and installs s.
func Put[S any](s S) State[S, struct{}] {
	return New(func(S) (struct{}, S) { return struct{}{}, s })
}

// Modify installs f(current state).
func Modify[S any](f func(S) S) State[S, struct{}] {
	return New(func(s S) (struct{}, S) { return struct{}{}, f(s) })
}

// Gets returns f(current state) without altering the state.
func Gets[S, A any](f func(S) A) State[S, A] {
	return New(func(s S) (A, S) { return f(s), s })
}

// Run executes the computation from an initial state, returning the value
// and the final state. It is the sole terminal operation; Eval and Exec are
// projections of it.
func (st State[S, A]) Run(initial S) (A, S) {
	return st.run(initial)
}

// Eval runs the computation and keeps only the value.
func (st State[S, A]) Eval(initial S) A {
	v, _ := st.run(initial)
	return v
}

// Exec runs the computation and keeps only the final state.
func (st State[S, A]) Exec(initial S) S {
	_, s := st.run(initial)
	return s
}

// Map transforms the value, preserving the state transition.
func Map[S, A, B any](st State[S, A], f func(A) B) State[S, B] {
	return New(func(s S) (B, S) {
		v, next := st.run(s)
		return f(v), next
	})
}

// Bind runs the receiver, then runs the computation returned by f against
// the state the receiver produced. Sequencing is left-to-right and
// single-threaded; the state never branches implicitly.
func Bind[S, A, B any](st State[S, A], f func(A) State[S, B]) State[S, B] {
	return New(func(s S) (B, S) {
		v, next := st.run(s)
		return f(v).run(next)
	})
}
