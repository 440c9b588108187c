package async

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Map applies fn to every item with at most limit calls running at once
// and returns the results in input order. The first error cancels the
// context of the remaining calls and is the error Map returns.
//
// An item whose context is already done when its turn comes fails with the
// context error without calling fn.
func Map[T, U any](ctx context.Context, limit int, items []T, fn func(context.Context, T) (U, error)) ([]U, error) {
	if limit <= 0 {
		return nil, ErrInvalidLimit
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)

	results := make([]U, len(items))
	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			res, err := fn(ctx, item)
			if err != nil {
				return err
			}
			results[i] = res
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
