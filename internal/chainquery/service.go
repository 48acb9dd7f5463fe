// Package chainquery answers read-only questions about a chain: account
// balances, the current gas price and whether an RPC endpoint is reachable.
//
// Nodes are dialled per call from the endpoint supplied by the caller, so
// one Service can serve any number of networks.
package chainquery

import (
	"context"
	"errors"
	"math/big"
	"net/http"
	"time"

	"github.com/gabapcia/aiowallet/internal/wallet"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

// Unavailable is the display value of a balance that could not be read.
const Unavailable = "-"

var (
	// ErrEndpointRequired is returned when a query needs an RPC endpoint and none was given.
	ErrEndpointRequired = errors.New("rpc endpoint is required")

	// ErrQueryFailed wraps every failure reported by a node.
	ErrQueryFailed = errors.New("chain query failed")
)

type (
	// Node reads account balances in the chain's base unit.
	Node interface {
		Balance(ctx context.Context, address string) (*big.Int, error)
	}

	// GasOracle reads the suggested gas price in wei.
	GasOracle interface {
		GasPrice(ctx context.Context) (*big.Int, error)
	}

	// Dialer returns a Node for endpoint.
	Dialer func(endpoint string) Node

	// GasDialer returns a GasOracle for endpoint.
	GasDialer func(endpoint string) GasOracle
)

type (
	// Balance is an account balance in base units and its human readable form.
	Balance struct {
		Raw     *big.Int
		Display string
	}

	// GasPrice is a gas price in wei and its display form in gwei.
	GasPrice struct {
		Wei     *big.Int
		Display string
	}

	// ProbeResult describes a single reachability check of an endpoint.
	ProbeResult struct {
		Success bool
		Latency time.Duration
		Message string
	}
)

// Service queries chains.
type Service interface {
	// GetBalance returns the balance of address on chain. On failure the
	// returned Balance displays Unavailable and the error is set.
	GetBalance(ctx context.Context, chain wallet.Chain, address, endpoint string) (Balance, error)

	// GetGasPrice returns the gas price reported by endpoint. An empty
	// endpoint yields a zero price and no error.
	GetGasPrice(ctx context.Context, endpoint string) (GasPrice, error)

	// ProbeEndpoint issues a bounded GET against url and reports the outcome.
	ProbeEndpoint(ctx context.Context, url string) ProbeResult
}

type service struct {
	dialers      map[wallet.Chain]Dialer
	gasDialer    GasDialer
	httpClient   *http.Client
	probeTimeout time.Duration
	precision    int
	tracer       trace.Tracer
}

var _ Service = (*service)(nil)

// New returns a Service. Chains without a Dialer fail with
// wallet.ErrUnsupportedChain.
func New(opts ...Option) *service {
	cfg := newConfig(opts)

	return &service{
		dialers:      cfg.dialers,
		gasDialer:    cfg.gasDialer,
		httpClient:   cfg.httpClient,
		probeTimeout: cfg.probeTimeout,
		precision:    cfg.precision,
		tracer:       otel.Tracer("github.com/gabapcia/aiowallet/internal/chainquery"),
	}
}
