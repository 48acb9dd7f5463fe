package recordstore

import "context"

// Entry is a record ready to be persisted: its primary key, its encoded body
// and the value of every index it participates in.
type Entry struct {
	Key     string
	Data    []byte
	Indexes map[string]string
}

// Backend persists schemas and records. Implementations live under
// internal/infra/storage.
//
// Put and Delete must replace or remove a record together with its index
// entries in one atomic write.
type Backend interface {
	// LoadSchema returns the stored version (0 for a fresh database) and the
	// collections created so far.
	LoadSchema(ctx context.Context) (version int, collections []Collection, err error)

	// ApplySchema creates the given collections and records version.
	ApplySchema(ctx context.Context, version int, create []Collection) error

	// Put upserts entry into collection.
	Put(ctx context.Context, collection string, entry Entry) error

	// Get returns the encoded record stored under key, or ErrRecordNotFound.
	Get(ctx context.Context, collection, key string) ([]byte, error)

	// Delete removes key. Removing an absent key is not an error.
	Delete(ctx context.Context, collection, key string) error

	// Keys returns every primary key in collection.
	Keys(ctx context.Context, collection string) ([]string, error)

	// FindKeys returns the primary keys whose index entry equals value.
	FindKeys(ctx context.Context, collection, index, value string) ([]string, error)

	// Close releases the underlying database.
	Close() error
}
