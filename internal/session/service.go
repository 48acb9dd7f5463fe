// Package session tracks the external wallet the user logged in with.
//
// Connecting asks the wallet provider for its accounts, has the first
// account sign a timestamped login message and, once the signature checks
// out, remembers the account list in the preference storage.
package session

import (
	"context"
	"errors"
	"time"
)

// AddressKey is the preference key holding the connected addresses as a JSON array.
const AddressKey = "USER_WALLET_ADDRESS"

var (
	// ErrProviderMissing is returned by Connect when no wallet provider is configured.
	ErrProviderMissing = errors.New("wallet provider is not configured")

	// ErrNoAccounts is returned when the provider exposes no account.
	ErrNoAccounts = errors.New("wallet provider returned no accounts")

	// ErrSignatureMismatch is returned when the login signature was not made by the first account.
	ErrSignatureMismatch = errors.New("login signature does not match account")
)

// Provider is an external wallet reachable over JSON-RPC.
type Provider interface {
	RequestAccounts(ctx context.Context) ([]string, error)
	PersonalSign(ctx context.Context, message, address string) (string, error)
}

// Service manages the connected wallet.
type Service interface {
	// Connect logs in with the provider and returns the connected addresses.
	Connect(ctx context.Context) ([]string, error)

	// Addresses returns the connected addresses, empty when disconnected.
	Addresses(ctx context.Context) ([]string, error)

	// Disconnect forgets the connected addresses.
	Disconnect(ctx context.Context) error
}

type service struct {
	storage  PreferenceStorage
	provider Provider
	now      func() time.Time
}

var _ Service = (*service)(nil)

// Option configures a Service.
type Option func(*service)

// WithClock replaces the clock used to timestamp login messages.
func WithClock(now func() time.Time) Option {
	return func(s *service) {
		s.now = now
	}
}

// New returns a Service. provider may be nil, in which case Connect fails
// with ErrProviderMissing.
func New(storage PreferenceStorage, provider Provider, opts ...Option) *service {
	s := &service{
		storage:  storage,
		provider: provider,
		now:      time.Now,
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}
