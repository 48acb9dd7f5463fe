// Package batch runs independent per-item operations and joins all of them,
// keeping one outcome per item instead of stopping at the first failure.
package batch

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/sync/errgroup"
)

// DefaultConcurrency bounds how many items run at the same time.
const DefaultConcurrency = 8

// Outcome is the result of running an operation for one item.
type Outcome[T any] struct {
	Item T
	Err  error
}

// OK reports whether the operation succeeded for this item.
func (o Outcome[T]) OK() bool {
	return o.Err == nil
}

type config struct {
	concurrency int
}

// Option configures Run.
type Option func(*config)

// WithConcurrency sets how many items run at the same time. Values below 1
// run items one by one.
func WithConcurrency(n int) Option {
	return func(c *config) {
		c.concurrency = max(n, 1)
	}
}

// Run calls fn for every item and waits for all of them. Outcomes are in
// the same order as items. A failing item never cancels the others; items
// not yet started when ctx is done are reported with ctx.Err().
func Run[T any](ctx context.Context, items []T, fn func(ctx context.Context, item T) error, opts ...Option) []Outcome[T] {
	cfg := config{concurrency: DefaultConcurrency}
	for _, opt := range opts {
		opt(&cfg)
	}

	outcomes := make([]Outcome[T], len(items))

	var g errgroup.Group
	g.SetLimit(cfg.concurrency)

	for i, item := range items {
		outcomes[i].Item = item

		if err := ctx.Err(); err != nil {
			outcomes[i].Err = err
			continue
		}

		g.Go(func() error {
			outcomes[i].Err = fn(ctx, item)
			return nil
		})
	}

	// Goroutines always return nil; failures live in outcomes.
	_ = g.Wait()

	return outcomes
}

// Failed returns the outcomes that carry an error.
func Failed[T any](outcomes []Outcome[T]) []Outcome[T] {
	var failed []Outcome[T]
	for _, o := range outcomes {
		if !o.OK() {
			failed = append(failed, o)
		}
	}
	return failed
}

// Err joins the failures of outcomes into one error, each prefixed with its
// item. It returns nil when every item succeeded.
func Err[T any](outcomes []Outcome[T]) error {
	var errs []error
	for _, o := range Failed(outcomes) {
		errs = append(errs, fmt.Errorf("%v: %w", o.Item, o.Err))
	}
	return errors.Join(errs...)
}
