package solver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// BatchOption configures SolveAll.
type BatchOption func(b *batch)

type batch struct {
	numWorker int
	opts      []Option
}

// WithParallelism sets the number of rosters solved at the same time.
func WithParallelism(n int) BatchOption { return func(b *batch) { b.numWorker = n } }

// WithSolverOptions sets the options every solver of the batch is built with.
func WithSolverOptions(opts ...Option) BatchOption {
	return func(b *batch) { b.opts = append(b.opts, opts...) }
}

// SolveAll solves every roster with a solver of its own. Results are in
// roster order. The first configuration error cancels the remaining work.
func SolveAll(ctx context.Context, rosters []*Roster, opts ...BatchOption) ([]*Result, error) {
	b := &batch{numWorker: runtime.NumCPU()}
	for _, opt := range opts {
		opt(b)
	}

	results := make([]*Result, len(rosters))
	g, ctx := errgroup.WithContext(ctx)
	if b.numWorker > 0 {
		g.SetLimit(b.numWorker)
	}

	for i, r := range rosters {
		i, r := i, r
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			initial, err := BuildInitialState(r)
			if err != nil {
				return fmt.Errorf("roster %d: %w", i, err)
			}
			result, err := New(b.opts...).Run(initial)
			if err != nil {
				return fmt.Errorf("roster %d: %w", i, err)
			}
			results[i] = result
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
