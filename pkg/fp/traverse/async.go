package traverse

import (
	"context"
	"errors"
	"iter"

	"golang.org/x/sync/errgroup"

	"github.com/ib-77/adt/pkg/fp/option"
	"github.com/ib-77/adt/pkg/fp/result"
)

// ErrNoResult reports a gathered channel that closed before delivering a
// result.
var ErrNoResult = errors.New("traverse: channel closed without a result")

// IsCancellation reports whether err carries context cancellation or a
// deadline, so callers can tell host-driven aborts from domain failures.
func IsCancellation(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// TraverseOptionCtx applies f to each element strictly left to right,
// not starting element i+1 until element i has finished. Option carries
// no error channel, so cancellation of ctx between elements surfaces as
// None, indistinguishable from an absent element; callers that need to
// tell the two apart should use TraverseResultCtx.
func TraverseOptionCtx[A, B any](ctx context.Context, xs iter.Seq[A],
	f func(ctx context.Context, a A) option.Option[B]) option.Option[[]B] {

	var out []B
	for x := range xs {
		if ctx.Err() != nil {
			return option.None[[]B]()
		}
		v, ok := f(ctx, x).Get()
		if !ok {
			return option.None[[]B]()
		}
		out = append(out, v)
	}
	return option.Some(out)
}

// TraverseResultCtx applies f to each element strictly left to right,
// not starting element i+1 until element i has finished. Cancellation of
// ctx between elements surfaces as Err with the context's error; elements
// after that point are never started.
func TraverseResultCtx[A, B any](ctx context.Context, xs iter.Seq[A],
	f func(ctx context.Context, a A) result.Result[B, error]) result.Result[[]B, error] {

	var out []B
	for x := range xs {
		if err := ctx.Err(); err != nil {
			return result.Err[[]B](err)
		}
		v, err, ok := f(ctx, x).Get()
		if !ok {
			return result.Err[[]B](err)
		}
		out = append(out, v)
	}
	return result.Ok[[]B, error](out)
}

// TraverseResultParallel launches f for every element concurrently and
// collects index-aligned results. Evaluation order of side effects is
// unspecified, but when several elements fail the lowest-index failure is
// reported, keeping the outcome deterministic. Failures do not cancel
// sibling work; cancellation of ctx marks not-yet-started elements with
// the context's error.
func TraverseResultParallel[A, B any](ctx context.Context, xs []A,
	f func(ctx context.Context, a A) result.Result[B, error]) result.Result[[]B, error] {

	results := make([]result.Result[B, error], len(xs))

	var g errgroup.Group
	for i, x := range xs {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				results[i] = result.Err[B](err)
				return nil
			}
			results[i] = f(ctx, x)
			return nil
		})
	}
	// worker closures always return nil; failures travel through results.
	_ = g.Wait()

	out := make([]B, 0, len(xs))
	for _, r := range results {
		v, err, ok := r.Get()
		if !ok {
			return result.Err[[]B](err)
		}
		out = append(out, v)
	}
	return result.Ok[[]B, error](out)
}

// Gather awaits already-scheduled result channels and collects their
// values in slot order. All channels are awaited even after a failure; the
// lowest-index Err wins. A ctx cancellation while waiting surfaces as Err
// with the context's error.
func Gather[T any](ctx context.Context, tasks []<-chan result.Result[T, error]) result.Result[[]T, error] {
	values := make([]T, 0, len(tasks))
	var firstErr error
	for _, task := range tasks {
		select {
		case <-ctx.Done():
			return result.Err[[]T](ctx.Err())
		case r, ok := <-task:
			if !ok {
				if firstErr == nil {
					firstErr = ErrNoResult
				}
				continue
			}
			v, err, isOk := r.Get()
			if !isOk {
				if firstErr == nil {
					firstErr = err
				}
				continue
			}
			values = append(values, v)
		}
	}
	if firstErr != nil {
		return result.Err[[]T](firstErr)
	}
	return result.Ok[[]T, error](values)
}

// GatherAccumulate awaits already-scheduled result channels and collects
// either every value or every error, in slot order.
func GatherAccumulate[T any](ctx context.Context, tasks []<-chan result.Result[T, error]) result.Result[[]T, []error] {
	values := make([]T, 0, len(tasks))
	var errs []error
	for _, task := range tasks {
		select {
		case <-ctx.Done():
			errs = append(errs, ctx.Err())
			return result.Err[[]T](errs)
		case r, ok := <-task:
			if !ok {
				errs = append(errs, ErrNoResult)
				continue
			}
			v, err, isOk := r.Get()
			if !isOk {
				errs = append(errs, err)
				continue
			}
			values = append(values, v)
		}
	}
	if len(errs) > 0 {
		return result.Err[[]T](errs)
	}
	return result.Ok[[]T, []error](values)
}
