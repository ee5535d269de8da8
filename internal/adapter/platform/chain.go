package platform

import (
	"context"
	"errors"
	"fmt"
)

// attempt is one strategy in a first-success chain.
type attempt[T any] struct {
	name string
	run  func(ctx context.Context) ([]T, error)
}

// firstSuccess runs attempts in order and returns the results of the first
// one that yields a non-empty slice, together with its name. Failed and
// empty attempts are skipped without retry. When nothing succeeds it returns
// the joined errors of the failed attempts, or nil if they were all empty.
func firstSuccess[T any](ctx context.Context, attempts []attempt[T]) ([]T, string, error) {
	var errs []error
	for _, a := range attempts {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		res, err := a.run(ctx)
		if err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", a.name, err))
			continue
		}
		if len(res) > 0 {
			return res, a.name, nil
		}
	}
	return nil, "", errors.Join(errs...)
}
