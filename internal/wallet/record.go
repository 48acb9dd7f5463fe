package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/aiowallet/internal/pkg/x/batch"
	"github.com/gabapcia/aiowallet/internal/recordstore"

	"github.com/mitchellh/mapstructure"
)

var (
	// ErrMalformedKey is returned when a private key cannot be decoded for its chain.
	ErrMalformedKey = errors.New("malformed private key")

	// ErrInvalidAddress is returned when an address is not valid for its chain.
	ErrInvalidAddress = errors.New("invalid address")

	// ErrWalletNotFound is returned when no wallet is stored under an address.
	ErrWalletNotFound = errors.New("wallet not found")
)

// Record is one generated or imported keypair, tagged with a group label.
// Records are persisted verbatim and never mutated, only deleted.
type Record struct {
	Group      string `mapstructure:"group" json:"group"`
	Address    string `mapstructure:"address" json:"address"`
	PrivateKey string `mapstructure:"privateKey" json:"privateKey"`
}

// String renders the group and address. The private key is left out so a
// record can be printed or wrapped into errors safely.
func (r Record) String() string {
	return r.Group + "/" + r.Address
}

// toStoreRecord converts r into its record store representation.
func (r Record) toStoreRecord() (recordstore.Record, error) {
	out := recordstore.Record{}
	if err := mapstructure.Decode(r, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// recordFromStore converts a stored record back into a Record. Fields
// other than group, address and privateKey are ignored.
func recordFromStore(in recordstore.Record) (Record, error) {
	var r Record
	if err := mapstructure.Decode(map[string]any(in), &r); err != nil {
		return Record{}, fmt.Errorf("decode wallet record: %w", err)
	}
	return r, nil
}

// Keyring generates and inspects the keys of one chain family.
type Keyring interface {
	// Generate creates a new keypair from a cryptographically secure source.
	Generate() (address, privateKey string, err error)

	// Derive returns the address controlled by privateKey.
	Derive(privateKey string) (address string, err error)

	// Normalize returns the canonical form of address, or an error when it
	// is not a valid address.
	Normalize(address string) (string, error)
}

// Store is the subset of the record store used by the wallet service.
type Store interface {
	Put(ctx context.Context, collection string, record recordstore.Record) error
	Get(ctx context.Context, collection, key string) (recordstore.Record, error)
	DeleteMany(ctx context.Context, collection string, keys []string) []batch.Outcome[string]
	ListKeys(ctx context.Context, collection string) ([]string, error)
	FindKeys(ctx context.Context, collection, index string, value any) ([]string, error)
}
