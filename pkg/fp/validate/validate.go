package validate

import (
	"go.uber.org/multierr"

	"github.com/ib-77/adt/pkg/fp/nelist"
	"github.com/ib-77/adt/pkg/fp/result"
)

// Check examines a value and either passes it through (possibly
// normalized) or fails with an error.
type Check[T, E any] func(T) result.Result[T, E]

// All runs every check regardless of earlier failures, accumulating
// errors in check order. Each check receives the value produced by the
// most recent successful check; after a failure the pre-failure value
// continues to the next check. The error branch carries a NonEmptyList,
// built only once at least one check has failed.
//
// All is the applicative counterpart to Bind's short-circuiting: use Bind
// chains to stop at the first failure, All to report every failure.
func All[T, E any](checks []Check[T, E], value T) result.Result[T, nelist.NonEmptyList[E]] {
	cur := value
	var (
		errs    nelist.NonEmptyList[E]
		hasErrs bool
	)
	for _, check := range checks {
		v, err, ok := check(cur).Get()
		if ok {
			cur = v
			continue
		}
		if !hasErrs {
			errs = nelist.New(err)
			hasErrs = true
			continue
		}
		errs = errs.Append(err)
	}
	if hasErrs {
		return result.Err[T](errs)
	}
	return result.Ok[T, nelist.NonEmptyList[E]](cur)
}

// AllErr is All for plain-error checks, collapsing the accumulated list
// into one combined error for callers that just want an error value.
func AllErr[T any](checks []Check[T, error], value T) result.Result[T, error] {
	r := All(checks, value)
	v, errs, ok := r.Get()
	if ok {
		return result.Ok[T, error](v)
	}
	return result.Err[T](multierr.Combine(errs.Slice()...))
}
