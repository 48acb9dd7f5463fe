package leveldb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/aiowallet/internal/recordstore"

	goleveldb "github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// envelope is the stored form of a record. Index values are kept next to the
// body so an overwrite can drop the entries of the previous version.
type envelope struct {
	Data    json.RawMessage   `json:"data"`
	Indexes map[string]string `json:"indexes,omitempty"`
}

// LoadSchema implements recordstore.Backend.
func (c *client) LoadSchema(ctx context.Context) (int, []recordstore.Collection, error) {
	raw, err := c.db.Get([]byte(versionKey), nil)
	if errors.Is(err, goleveldb.ErrNotFound) {
		return 0, nil, nil
	}
	if err != nil {
		return 0, nil, err
	}

	version, err := decodeVersion(raw)
	if err != nil {
		return 0, nil, fmt.Errorf("corrupted schema version %q: %w", raw, err)
	}

	iter := c.db.NewIterator(util.BytesPrefix([]byte(collectionPrefix)), nil)
	defer iter.Release()

	var collections []recordstore.Collection
	for iter.Next() {
		var col recordstore.Collection
		if err := json.Unmarshal(iter.Value(), &col); err != nil {
			return 0, nil, fmt.Errorf("corrupted collection %q: %w", iter.Key(), err)
		}
		collections = append(collections, col)
	}

	return version, collections, iter.Error()
}

// ApplySchema implements recordstore.Backend.
func (c *client) ApplySchema(ctx context.Context, version int, create []recordstore.Collection) error {
	batch := new(goleveldb.Batch)
	for _, col := range create {
		data, err := json.Marshal(col)
		if err != nil {
			return err
		}
		batch.Put(collectionKey(col.Name), data)
	}
	batch.Put([]byte(versionKey), encodeVersion(version))

	return c.db.Write(batch, c.writeOpts)
}

// load returns the stored envelope of key, or nil when absent.
func (c *client) load(collection, key string) (*envelope, error) {
	raw, err := c.db.Get(recordKey(collection, key), nil)
	if errors.Is(err, goleveldb.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return nil, fmt.Errorf("corrupted record %s/%s: %w", collection, key, err)
	}
	return &env, nil
}

// Put implements recordstore.Backend.
func (c *client) Put(ctx context.Context, collection string, entry recordstore.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data, err := json.Marshal(envelope{Data: entry.Data, Indexes: entry.Indexes})
	if err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	prev, err := c.load(collection, entry.Key)
	if err != nil {
		return err
	}

	batch := new(goleveldb.Batch)
	if prev != nil {
		for index, value := range prev.Indexes {
			batch.Delete(indexKey(collection, index, value, entry.Key))
		}
	}
	batch.Put(recordKey(collection, entry.Key), data)
	for index, value := range entry.Indexes {
		batch.Put(indexKey(collection, index, value, entry.Key), nil)
	}

	return c.db.Write(batch, c.writeOpts)
}

// Get implements recordstore.Backend.
func (c *client) Get(ctx context.Context, collection, key string) ([]byte, error) {
	env, err := c.load(collection, key)
	if err != nil {
		return nil, err
	}
	if env == nil {
		return nil, recordstore.ErrRecordNotFound
	}
	return env.Data, nil
}

// Delete implements recordstore.Backend.
func (c *client) Delete(ctx context.Context, collection, key string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	prev, err := c.load(collection, key)
	if err != nil || prev == nil {
		return err
	}

	batch := new(goleveldb.Batch)
	for index, value := range prev.Indexes {
		batch.Delete(indexKey(collection, index, value, key))
	}
	batch.Delete(recordKey(collection, key))

	return c.db.Write(batch, c.writeOpts)
}

// scanSuffixes returns what follows prefix in every key starting with it.
func (c *client) scanSuffixes(prefix []byte) ([]string, error) {
	iter := c.db.NewIterator(util.BytesPrefix(prefix), nil)
	defer iter.Release()

	suffixes := []string{}
	for iter.Next() {
		suffixes = append(suffixes, string(iter.Key()[len(prefix):]))
	}
	return suffixes, iter.Error()
}

// Keys implements recordstore.Backend.
func (c *client) Keys(ctx context.Context, collection string) ([]string, error) {
	return c.scanSuffixes(recordPrefix(collection))
}

// FindKeys implements recordstore.Backend.
func (c *client) FindKeys(ctx context.Context, collection, index, value string) ([]string, error) {
	return c.scanSuffixes(indexPrefix(collection, index, value))
}

var _ recordstore.Backend = (*client)(nil)
