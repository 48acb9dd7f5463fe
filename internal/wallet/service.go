// Package wallet builds, derives and persists EVM and Solana keypairs,
// organised in user defined groups.
package wallet

import (
	"context"

	"github.com/gabapcia/aiowallet/internal/pkg/x/batch"
)

// Service manages wallet records.
type Service interface {
	// CreateBatch generates count new keypairs for chain, tagged with group.
	// The records are returned but not persisted.
	CreateBatch(ctx context.Context, group string, count int, chain Chain) ([]Record, error)

	// DeriveAddress returns the address controlled by privateKey, or
	// ErrMalformedKey. It never panics.
	DeriveAddress(chain Chain, privateKey string) (string, error)

	// Save persists records and reports one outcome per record.
	Save(ctx context.Context, chain Chain, records []Record) []batch.Outcome[Record]

	// Import derives the address of privateKey and persists it under group.
	// Importing a key already stored overwrites its record.
	Import(ctx context.Context, group string, chain Chain, privateKey string) (Record, error)

	// Get returns the wallet stored under address or ErrWalletNotFound.
	Get(ctx context.Context, chain Chain, address string) (Record, error)

	// List returns every stored address of chain in ascending order.
	List(ctx context.Context, chain Chain) ([]string, error)

	// ListGroup returns the wallets of chain tagged with group.
	ListGroup(ctx context.Context, chain Chain, group string) ([]Record, error)

	// Groups returns every wallet of chain keyed by group label.
	Groups(ctx context.Context, chain Chain) (map[string][]Record, error)

	// Delete removes addresses and reports one outcome per distinct address.
	Delete(ctx context.Context, chain Chain, addresses []string) []batch.Outcome[string]
}

type service struct {
	store    Store
	keyrings map[Chain]Keyring
}

var _ Service = (*service)(nil)

// New returns a Service persisting to store and using keyrings to generate
// and derive keys. Chains without a keyring fail with ErrUnsupportedChain.
func New(store Store, keyrings map[Chain]Keyring) *service {
	return &service{
		store:    store,
		keyrings: keyrings,
	}
}
