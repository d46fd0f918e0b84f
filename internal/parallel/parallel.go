// Package parallel runs independent tasks on a bounded number of goroutines.
//
// Tasks must not share mutable state: each task owns whatever it builds
// and hands it back as its result.
package parallel

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// Config controls parallel execution behavior.
type Config struct {
	Enabled    bool // Whether parallel execution is enabled.
	NumWorkers int  // Maximum number of tasks running at once.
}

// DefaultConfig returns defaults based on CPU count.
func DefaultConfig() Config {
	n := runtime.NumCPU()
	return Config{
		Enabled:    n > 1,
		NumWorkers: n,
	}
}

// Map runs f(ctx, i) for i in [0, n) and returns the results in index order.
//
// With parallelism disabled, or n < 2, tasks run sequentially on the
// calling goroutine. The first error cancels ctx for the remaining tasks
// and is returned.
func Map[T any](ctx context.Context, n int, cfg Config, f func(ctx context.Context, i int) (T, error)) ([]T, error) {
	results := make([]T, n)
	if !cfg.Enabled || n < 2 {
		for i := 0; i < n; i++ {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
			r, err := f(ctx, i)
			if err != nil {
				return nil, err
			}
			results[i] = r
		}
		return results, nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(cfg.NumWorkers, 1))
	for i := 0; i < n; i++ {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			r, err := f(gctx, i)
			if err != nil {
				return err
			}
			results[i] = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
