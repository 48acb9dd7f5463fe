// Package config loads the application configuration from AIOWALLET_*
// environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/gabapcia/aiowallet/internal/pkg/validator"

	"github.com/kelseyhightower/envconfig"
)

// Prefix is prepended to every environment variable name. Keys are derived
// from the field path (AIOWALLET_STORE_PATH, AIOWALLET_RPC_EVM, ...); fields
// carry no explicit envconfig name, since envconfig would also read that
// name unprefixed and pick up variables such as PATH or USERNAME.
const Prefix = "AIOWALLET"

// Store drivers.
const (
	DriverLevelDB = "leveldb"
	DriverRedis   = "redis"
)

type (
	// Store selects and configures the record store backend.
	Store struct {
		Driver string `default:"leveldb" validate:"oneof=leveldb redis"`
		Path   string `default:"aiowallet.db"`
		Sync   bool   `default:"false"`
	}

	// Redis configures the shared redis backend.
	Redis struct {
		Addr      string `default:"localhost:6379"`
		Username  string
		Password  string
		DB        int    `default:"0" validate:"min=0"`
		Namespace string `default:"aiowallet"`
	}

	// RPC holds the default node endpoints and JSON-RPC client tuning.
	RPC struct {
		EVM     string
		Solana  string        `default:"https://api.mainnet-beta.solana.com"`
		Timeout time.Duration `default:"10s" validate:"gt=0"`
		Retries int           `default:"2" validate:"min=0,max=10"`
	}

	// Provider is the JSON-RPC wallet used to connect a session.
	Provider struct {
		URL string
	}

	// Telemetry toggles OpenTelemetry export.
	Telemetry struct {
		Enabled     bool   `default:"false"`
		ServiceName string `split_words:"true" default:"aiowallet"`
	}

	// Export configures spreadsheet exports.
	Export struct {
		File string `default:"aiowallet.xlsx"`
	}
)

// Config is the full application configuration.
type Config struct {
	LogLevel  string `split_words:"true" default:"warn" validate:"oneof=debug info warn error"`
	Store     Store
	Redis     Redis
	RPC       RPC
	Provider  Provider
	Telemetry Telemetry
	Export    Export
}

// Load reads the configuration from the environment and validates it.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := envconfig.Process(Prefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to process config: %w", err)
	}

	if err := validator.Validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
