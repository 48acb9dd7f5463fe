// Package jsonrpc provides a JSON-RPC 2.0 client over HTTP, used to talk to
// Ethereum-compatible nodes and browser-wallet bridges.
package jsonrpc

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	httptransport "github.com/gabapcia/aiowallet/internal/pkg/transport/http"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
)

var (
	// ErrProviderReturnedError indicates that the remote JSON-RPC server returned an error response.
	ErrProviderReturnedError = errors.New("provider error")

	// ErrUnexpectedStatus indicates a non-2xx HTTP answer without a JSON-RPC body.
	ErrUnexpectedStatus = errors.New("unexpected http status")
)

// response represents a standard JSON-RPC 2.0 response.
type response struct {
	JsonRPC string `json:"jsonrpc"`
	Error   *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
	Result json.RawMessage `json:"result"`
}

// Err returns an error if the response includes a JSON-RPC error object.
func (r response) Err() error {
	if r.Error == nil {
		return nil
	}

	return fmt.Errorf("%w: [%d] - %s", ErrProviderReturnedError, r.Error.Code, r.Error.Message)
}

// Client sends JSON-RPC calls and returns the raw result.
type Client interface {
	Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error)
}

type client struct {
	providerEndpoint string
	httpClient       *retryablehttp.Client
}

var _ Client = (*client)(nil)

// Fetch sends method with params and returns the raw result. Every request
// carries a fresh UUID as its id.
func (c *client) Fetch(ctx context.Context, method string, params ...any) (json.RawMessage, error) {
	if params == nil {
		params = []any{}
	}

	body, err := json.Marshal(map[string]any{
		"jsonrpc": "2.0",
		"id":      uuid.NewString(),
		"method":  method,
		"params":  params,
	})
	if err != nil {
		return nil, err
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.providerEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, err
	}

	var data response
	if err := json.Unmarshal(raw, &data); err != nil {
		if res.StatusCode < 200 || res.StatusCode > 299 {
			return nil, fmt.Errorf("%w: %d", ErrUnexpectedStatus, res.StatusCode)
		}
		return nil, err
	}

	if err := data.Err(); err != nil {
		return nil, err
	}

	return data.Result, nil
}

// Call runs Fetch and decodes the result into T.
func Call[T any](ctx context.Context, c Client, method string, params ...any) (T, error) {
	var out T

	raw, err := c.Fetch(ctx, method, params...)
	if err != nil {
		return out, err
	}

	if err := json.Unmarshal(raw, &out); err != nil {
		return out, fmt.Errorf("decode %s result: %w", method, err)
	}

	return out, nil
}

// Option configures the underlying HTTP transport.
type Option = httptransport.Option

// WithTimeout bounds a single HTTP request.
func WithTimeout(d time.Duration) Option { return httptransport.WithTimeout(d) }

// WithRetryWaitMin sets the minimum delay between retries.
func WithRetryWaitMin(d time.Duration) Option { return httptransport.WithRetryWaitMin(d) }

// WithRetryWaitMax sets the maximum delay between retries.
func WithRetryWaitMax(d time.Duration) Option { return httptransport.WithRetryWaitMax(d) }

// WithRetryMax sets the retry budget. Use zero for non-idempotent calls
// such as eth_sendRawTransaction.
func WithRetryMax(n int) Option { return httptransport.WithRetryMax(n) }

// NewClient returns a Client bound to providerEndpoint.
func NewClient(providerEndpoint string, opts ...Option) *client {
	return &client{
		providerEndpoint: providerEndpoint,
		httpClient:       httptransport.NewClient(opts...),
	}
}
