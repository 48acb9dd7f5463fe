package chainquery

import (
	"net/http"
	"time"

	httptransport "github.com/gabapcia/aiowallet/internal/pkg/transport/http"
	"github.com/gabapcia/aiowallet/internal/wallet"
)

const (
	// DefaultProbeTimeout bounds a reachability check.
	DefaultProbeTimeout = 5 * time.Second

	// DefaultPrecision is the number of fraction digits in display amounts.
	DefaultPrecision = 3
)

type config struct {
	dialers      map[wallet.Chain]Dialer
	gasDialer    GasDialer
	httpClient   *http.Client
	probeTimeout time.Duration
	precision    int
}

// Option configures a Service.
type Option func(*config)

// WithDialer registers the Node dialer used for chain.
func WithDialer(chain wallet.Chain, d Dialer) Option {
	return func(c *config) {
		c.dialers[chain] = d
	}
}

// WithGasDialer sets the dialer used by GetGasPrice.
func WithGasDialer(d GasDialer) Option {
	return func(c *config) {
		c.gasDialer = d
	}
}

// WithHTTPClient replaces the client used by ProbeEndpoint.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) {
		c.httpClient = client
	}
}

// WithProbeTimeout sets the deadline of a reachability check.
func WithProbeTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.probeTimeout = d
		}
	}
}

// WithPrecision sets the number of fraction digits in display amounts.
func WithPrecision(digits int) Option {
	return func(c *config) {
		if digits >= 0 {
			c.precision = digits
		}
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		dialers:      make(map[wallet.Chain]Dialer),
		probeTimeout: DefaultProbeTimeout,
		precision:    DefaultPrecision,
	}

	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.httpClient == nil {
		cfg.httpClient = httptransport.NewStandardClient(
			httptransport.WithRetryMax(0),
			httptransport.WithTimeout(cfg.probeTimeout),
		)
	}

	return cfg
}
