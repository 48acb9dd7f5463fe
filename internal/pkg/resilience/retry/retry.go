// Package retry wraps avast/retry-go behind a small interface with
// functional options. It is used where a transient failure is expected and
// the operation is safe to repeat, such as opening a local store whose file
// lock is still held by a previous process or pinging a Redis server that is
// starting up.
//
//	r := retry.New(retry.WithAttempts(5), retry.WithDelay(200*time.Millisecond))
//	err := r.Execute(ctx, func() error { return openStore() })
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes operations with automatic retries.
type Retry interface {
	// Execute runs operation until it succeeds, the attempts run out or ctx
	// is done. operation must be idempotent.
	Execute(ctx context.Context, operation func() error) error
}

// config holds internal settings for the retry mechanism.
type config struct {
	attempts    uint
	delay       time.Duration
	maxDelay    time.Duration
	lastErrOnly bool
	retryIf     func(error) bool
}

// Option configures New.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry using exponential backoff. Defaults:
//   - attempts:    3 (1 initial attempt + 2 retries)
//   - delay:       1 second
//   - maxDelay:    5 seconds
//   - lastErrOnly: true
//   - retryIf:     every error is retried
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements Retry.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	}
	if r.cfg.retryIf != nil {
		options = append(options, retry.RetryIf(r.cfg.retryIf))
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the maximum number of attempts, including the first one.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay, doubled after each failed attempt.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the delay between attempts.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly controls whether Execute returns only the final error
// (true) or every attempt's error joined in a retry.Error (false).
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithRetryIf restricts retries to errors for which fn returns true. Other
// errors stop the loop immediately.
func WithRetryIf(fn func(error) bool) Option {
	return func(c *config) {
		c.retryIf = fn
	}
}
