// Package recordstore is the local, versioned, keyed object store holding
// wallet and transaction records. Records live in named collections declared
// by a Schema; schema upgrades only ever add collections.
package recordstore

import (
	"context"
	"sync"

	"github.com/gabapcia/aiowallet/internal/pkg/x/batch"
)

// Service is the record store used by the rest of the program. A Service is
// safe for concurrent use; concurrent writers to the same key race with
// last-write-wins semantics.
type Service interface {
	// Initialize opens the database with schema, upgrading it when the stored
	// version is lower. It must succeed before any other call.
	Initialize(ctx context.Context, schema Schema) error

	// Put inserts or overwrites record by its primary key.
	Put(ctx context.Context, collection string, record Record) error

	// Get returns the record stored under key or ErrRecordNotFound.
	Get(ctx context.Context, collection, key string) (Record, error)

	// Delete removes key. Deleting an absent key succeeds.
	Delete(ctx context.Context, collection, key string) error

	// DeleteMany deletes every distinct key and reports one outcome per key.
	DeleteMany(ctx context.Context, collection string, keys []string) []batch.Outcome[string]

	// ListKeys returns every primary key of collection in ascending order.
	ListKeys(ctx context.Context, collection string) ([]string, error)

	// FindKeys returns, in ascending order, the keys of the records whose
	// indexed field equals value.
	FindKeys(ctx context.Context, collection, index string, value any) ([]string, error)

	// Close releases the backend.
	Close() error
}

type service struct {
	backend Backend

	mu          sync.RWMutex
	collections map[string]Collection
}

var _ Service = (*service)(nil)

// New returns a Service persisting through backend. The returned store is
// unusable until Initialize succeeds.
func New(backend Backend) *service {
	return &service{
		backend: backend,
	}
}
