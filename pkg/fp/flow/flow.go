package flow

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/ib-77/adt/pkg/fp/result"
)

// Flow wraps a Result with a context and a pipeline identity to enable
// fluent railway chaining. The id and creation time are assigned when the
// flow starts and survive every step, so a pipeline outcome can be traced
// back to its origin.
type Flow[T any] struct {
	ctx       context.Context
	id        uuid.UUID
	createdAt time.Time
	res       result.Result[T, error]
}

// Start begins a flow from an existing result.
func Start[T any](ctx context.Context, r result.Result[T, error]) Flow[T] {
	return Flow[T]{
		ctx:       ctx,
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		res:       r,
	}
}

// FromValue begins a flow from a successful value.
func FromValue[T any](ctx context.Context, v T) Flow[T] {
	return Start(ctx, result.Ok[T, error](v))
}

// Result returns the underlying result.
func (f Flow[T]) Result() result.Result[T, error] {
	return f.res
}

// ID returns the pipeline identity assigned at Start.
func (f Flow[T]) ID() uuid.UUID {
	return f.id
}

// CreatedAt returns the flow's creation time (UTC).
func (f Flow[T]) CreatedAt() time.Time {
	return f.createdAt
}

// step guards a transformation: a failed result or a cancelled context
// short-circuits the step without running it.
func (f Flow[T]) step(next func(T) result.Result[T, error]) Flow[T] {
	v, _, ok := f.res.Get()
	if !ok {
		return f
	}
	if err := f.ctx.Err(); err != nil {
		f.res = result.Err[T](err)
		return f
	}
	f.res = next(v)
	return f
}

// Then composes a function that already returns a result.
func (f Flow[T]) Then(onSuccess func(ctx context.Context, t T) result.Result[T, error]) Flow[T] {
	return f.step(func(v T) result.Result[T, error] {
		return onSuccess(f.ctx, v)
	})
}

// ThenTry composes a function in Go's (T, error) shape, converting the
// error to a failure.
func (f Flow[T]) ThenTry(try func(ctx context.Context, t T) (T, error)) Flow[T] {
	return f.step(func(v T) result.Result[T, error] {
		return result.Of(try(f.ctx, v))
	})
}

// Map transforms the successful value.
func (f Flow[T]) Map(onSuccess func(ctx context.Context, t T) T) Flow[T] {
	return f.step(func(v T) result.Result[T, error] {
		return result.Ok[T, error](onSuccess(f.ctx, v))
	})
}

// Ensure triggers side effects for success or failure without changing the
// result. Either handler may be nil.
func (f Flow[T]) Ensure(onSuccess func(context.Context, T), onFailure func(context.Context, error)) Flow[T] {
	if v, err, ok := f.res.Get(); ok {
		if onSuccess != nil {
			onSuccess(f.ctx, v)
		}
	} else if onFailure != nil {
		onFailure(f.ctx, err)
	}
	return f
}

// Finally collapses the flow into a final value via the two handlers.
func Finally[T, U any](f Flow[T], onSuccess func(context.Context, T) U, onFailure func(context.Context, error) U) U {
	v, err, ok := f.res.Get()
	if ok {
		return onSuccess(f.ctx, v)
	}
	return onFailure(f.ctx, err)
}

// Then switches the flow to a new value type via a result-returning
// function, keeping the pipeline identity.
func Then[T, U any](f Flow[T], onSuccess func(ctx context.Context, t T) result.Result[U, error]) Flow[U] {
	out := Flow[U]{ctx: f.ctx, id: f.id, createdAt: f.createdAt}
	v, err, ok := f.res.Get()
	if !ok {
		out.res = result.Err[U](err)
		return out
	}
	if cerr := f.ctx.Err(); cerr != nil {
		out.res = result.Err[U](cerr)
		return out
	}
	out.res = onSuccess(f.ctx, v)
	return out
}

// Map switches the flow to a new value type via a pure transformation.
func Map[T, U any](f Flow[T], onSuccess func(ctx context.Context, t T) U) Flow[U] {
	return Then(f, func(ctx context.Context, t T) result.Result[U, error] {
		return result.Ok[U, error](onSuccess(ctx, t))
	})
}
