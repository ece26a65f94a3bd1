package reader

// Reader is a computation that depends on a read-only environment R to
// produce a value A. It wraps a pure function R -> A; the environment is
// threaded automatically through Bind chains.
type Reader[R, A any] struct {
	run func(R) A
}

// New wraps a function from environment to value.
func New[R, A any](run func(R) A) Reader[R, A] {
	return Reader[R, A]{run: run}
}

// Ask yields the environment itself, for pulling configuration into the
// middle of a bind chain.
func Ask[R any]() Reader[R, R] {
	return New(func(env R) R { return env })
}

// Pure yields a constant value ignoring the environment.
func Pure[R, A any](v A) Reader[R, A] {
	return New(func(R) A { return v })
}

// Local runs r against a transformed copy of the environment. Sibling
// computations keep seeing the untransformed environment; transform must
// not mutate a shared environment value.
func Local[R, A any](transform func(R) R, r Reader[R, A]) Reader[R, A] {
	return New(func(env R) A {
		return r.run(transform(env))
	})
}

// Run supplies the environment and extracts the value.
func (r Reader[R, A]) Run(env R) A {
	return r.run(env)
}

// Map post-composes f on the result, preserving the environment dependency.
func Map[R, A, B any](r Reader[R, A], f func(A) B) Reader[R, B] {
	return New(func(env R) B {
		return f(r.run(env))
	})
}

// Bind chains a computation that itself depends on the environment. The
// same environment instance reaches both the receiver and the computation
// returned by f; only Local may substitute it.
func Bind[R, A, B any](r Reader[R, A], f func(A) Reader[R, B]) Reader[R, B] {
	return New(func(env R) B {
		return f(r.run(env)).run(env)
	})
}
