// Package http builds the retrying HTTP clients used to talk to chain nodes.
// It wraps HashiCorp's retryablehttp.Client behind functional options so
// callers pick timeouts and retry budgets per endpoint type: JSON-RPC reads
// retry, while liveness probes and transaction submission must not.
package http

import (
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"
)

// config holds internal settings for the HTTP client.
type config struct {
	timeout      time.Duration // maximum duration for a single HTTP request
	retryWaitMin time.Duration // minimum delay between retry attempts
	retryWaitMax time.Duration // maximum delay between retry attempts
	retryMax     int           // maximum number of retry attempts
}

// Option defines a functional option for configuring the HTTP client.
type Option func(*config)

// NewClient creates a retryablehttp.Client. Defaults:
//
//   - timeout:      5 seconds
//   - retryWaitMin: 1 second
//   - retryWaitMax: 5 seconds
//   - retryMax:     2 retries
func NewClient(opts ...Option) *retryablehttp.Client {
	cfg := config{
		timeout:      5 * time.Second,
		retryWaitMin: 1 * time.Second,
		retryWaitMax: 5 * time.Second,
		retryMax:     2,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	client := retryablehttp.NewClient()
	client.Logger = nil
	client.HTTPClient.Timeout = cfg.timeout
	client.RetryWaitMin = cfg.retryWaitMin
	client.RetryWaitMax = cfg.retryWaitMax
	client.RetryMax = cfg.retryMax

	// Return the last response instead of a generic "giving up" error so
	// callers can still inspect the status code.
	client.ErrorHandler = retryablehttp.PassthroughErrorHandler
	return client
}

// NewStandardClient is NewClient exposed as a plain *http.Client, for
// libraries that only accept the standard type.
func NewStandardClient(opts ...Option) *http.Client {
	return NewClient(opts...).StandardClient()
}

// WithTimeout sets the maximum duration allowed for a single HTTP request.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithRetryWaitMin sets the minimum delay between retry attempts.
func WithRetryWaitMin(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMin = d
	}
}

// WithRetryWaitMax sets the maximum delay between retry attempts.
func WithRetryWaitMax(d time.Duration) Option {
	return func(c *config) {
		c.retryWaitMax = d
	}
}

// WithRetryMax sets the maximum number of retries. Zero disables retrying.
func WithRetryMax(n int) Option {
	return func(c *config) {
		c.retryMax = n
	}
}
