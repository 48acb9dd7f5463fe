package recordstore

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNotInitialized is returned by every operation issued before Initialize succeeded.
	ErrNotInitialized = errors.New("record store not initialized")

	// ErrCollectionNotFound is returned when the collection is not part of the open database.
	ErrCollectionNotFound = errors.New("collection not found")

	// ErrIndexNotFound is returned by FindKeys for an index the collection does not declare.
	ErrIndexNotFound = errors.New("index not found")

	// ErrRecordNotFound is returned by Get when no record has the given key.
	ErrRecordNotFound = errors.New("record not found")

	// ErrInvalidKey is returned when a record has no usable primary key.
	ErrInvalidKey = errors.New("invalid record key")

	// ErrInvalidIndexValue is returned by Put when an indexed field renders
	// to a value containing a NUL byte, which storage drivers use as separator.
	ErrInvalidIndexValue = errors.New("invalid index value")

	// ErrVersionDowngrade is returned by Initialize when the database on disk
	// was written by a newer schema version.
	ErrVersionDowngrade = errors.New("schema version is older than the stored database")
)

// Record is a flat key/value object as persisted in a collection.
type Record map[string]any

// Key returns the record's primary key under keyPath. It fails with
// ErrInvalidKey when the field is missing, not a string or empty.
func (r Record) Key(keyPath string) (string, error) {
	key, ok := r[keyPath].(string)
	if !ok || key == "" {
		return "", fmt.Errorf("%w: field %q must be a non-empty string", ErrInvalidKey, keyPath)
	}
	return key, nil
}

// Index declares a secondary lookup over one record field.
type Index struct {
	Name  string `json:"name" validate:"required,excludesall=:"`
	Field string `json:"field" validate:"required"`
}

// Collection is a named partition of the store. Records are addressed by
// the value of their KeyPath field. Collection and index names may not
// contain ':', the separator of storage key prefixes.
type Collection struct {
	Name    string  `json:"name" validate:"required,excludesall=:"`
	KeyPath string  `json:"keyPath" validate:"required"`
	Indexes []Index `json:"indexes" validate:"dive"`
}

// index returns the declared index with the given name.
func (c Collection) index(name string) (Index, bool) {
	for _, idx := range c.Indexes {
		if idx.Name == name {
			return idx, true
		}
	}
	return Index{}, false
}

// Schema is the versioned set of collections a database is opened with.
type Schema struct {
	Name        string       `validate:"required"`
	Version     int          `validate:"min=1"`
	Collections []Collection `validate:"required,dive"`
}

// Collection names of DefaultSchema.
const (
	EVMTransactions = "evmTransactions"
	SOLTransactions = "solTransactions"
	ProtocolState   = "protocolState"
	WalletManage    = "walletManage"
	SOLWalletManage = "solWalletManage"
)

// primaryKey is the key path shared by every collection of DefaultSchema.
const primaryKey = "address"

func fieldIndexes(fields ...string) []Index {
	indexes := make([]Index, len(fields))
	for i, f := range fields {
		indexes[i] = Index{Name: f, Field: f}
	}
	return indexes
}

// DefaultSchema returns the schema of the wallet database at version 2.
func DefaultSchema() Schema {
	return Schema{
		Name:    "aiowallet",
		Version: 2,
		Collections: []Collection{
			{Name: EVMTransactions, KeyPath: primaryKey, Indexes: fieldIndexes("address", "data")},
			{Name: SOLTransactions, KeyPath: primaryKey, Indexes: fieldIndexes("address", "data")},
			{Name: ProtocolState, KeyPath: primaryKey, Indexes: fieldIndexes("address", "data")},
			{Name: WalletManage, KeyPath: primaryKey, Indexes: fieldIndexes("group", "address", "privateKey", "token", "settoken", "data")},
			{Name: SOLWalletManage, KeyPath: primaryKey, Indexes: fieldIndexes("address", "group", "data")},
		},
	}
}

// indexSafe reports whether v can be stored as an index value.
func indexSafe(v string) bool {
	return !strings.Contains(v, "\x00")
}

// IndexValue renders a field value the way index entries store it. Scalars
// use their plain text form, nested values their JSON encoding. It reports
// false for nil, which is never indexed.
func IndexValue(v any) (string, bool) {
	switch x := v.(type) {
	case nil:
		return "", false
	case string:
		return x, true
	case json.Number:
		return x.String(), true
	case bool, int, int32, int64, uint, uint32, uint64, float32, float64:
		return fmt.Sprint(x), true
	default:
		b, err := json.Marshal(x)
		if err != nil {
			return "", false
		}
		return string(b), true
	}
}
