package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/gabapcia/aiowallet/internal/recordstore"

	redis "github.com/redis/go-redis/v9"
)

const (
	schemaVersionField    = "version"
	schemaCollectionField = "collection:"

	// maxTxAttempts bounds optimistic-lock retries when another writer
	// touches the same collection hash between WATCH and EXEC.
	maxTxAttempts = 5
)

// envelope is the stored form of a record. Index values are kept next to the
// body so an overwrite can drop the set memberships of the previous version.
type envelope struct {
	Data    json.RawMessage   `json:"data"`
	Indexes map[string]string `json:"indexes,omitempty"`
}

func (c *client) schemaKey() string {
	return c.key("schema")
}

func (c *client) recordsKey(collection string) string {
	return c.key("rec", collection)
}

func (c *client) indexKey(collection, index, value string) string {
	return c.key("idx", collection, index, value)
}

// LoadSchema implements recordstore.Backend.
func (c *client) LoadSchema(ctx context.Context) (int, []recordstore.Collection, error) {
	fields, err := c.conn.HGetAll(ctx, c.schemaKey()).Result()
	if err != nil {
		return 0, nil, err
	}

	rawVersion, ok := fields[schemaVersionField]
	if !ok {
		return 0, nil, nil
	}

	version, err := strconv.Atoi(rawVersion)
	if err != nil {
		return 0, nil, fmt.Errorf("corrupted schema version %q: %w", rawVersion, err)
	}

	var collections []recordstore.Collection
	for field, value := range fields {
		if !strings.HasPrefix(field, schemaCollectionField) {
			continue
		}

		var col recordstore.Collection
		if err := json.Unmarshal([]byte(value), &col); err != nil {
			return 0, nil, fmt.Errorf("corrupted collection %q: %w", field, err)
		}
		collections = append(collections, col)
	}

	return version, collections, nil
}

// ApplySchema implements recordstore.Backend.
func (c *client) ApplySchema(ctx context.Context, version int, create []recordstore.Collection) error {
	values := []any{schemaVersionField, version}
	for _, col := range create {
		data, err := json.Marshal(col)
		if err != nil {
			return err
		}
		values = append(values, schemaCollectionField+col.Name, string(data))
	}

	return c.conn.HSet(ctx, c.schemaKey(), values...).Err()
}

// hashGetter is satisfied by both *redis.Client and *redis.Tx.
type hashGetter interface {
	HGet(ctx context.Context, key, field string) *redis.StringCmd
}

// loadEnvelope reads the envelope of key through cmd, returning nil when absent.
func loadEnvelope(ctx context.Context, cmd hashGetter, hash, key string) (*envelope, error) {
	raw, err := cmd.HGet(ctx, hash, key).Result()
	if errors.Is(err, redis.Nil) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var env envelope
	if err := json.Unmarshal([]byte(raw), &env); err != nil {
		return nil, fmt.Errorf("corrupted record %s/%s: %w", hash, key, err)
	}
	return &env, nil
}

// replace runs write inside a WATCH on the collection hash, handing it the
// previous envelope of key. The transaction is retried when the hash
// changes concurrently.
func (c *client) replace(ctx context.Context, collection, key string, write func(pipe redis.Pipeliner, prev *envelope)) error {
	hash := c.recordsKey(collection)

	txf := func(tx *redis.Tx) error {
		prev, err := loadEnvelope(ctx, tx, hash, key)
		if err != nil {
			return err
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			write(pipe, prev)
			return nil
		})
		return err
	}

	var err error
	for range maxTxAttempts {
		err = c.conn.Watch(ctx, txf, hash)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return err
}

// Put implements recordstore.Backend.
func (c *client) Put(ctx context.Context, collection string, entry recordstore.Entry) error {
	data, err := json.Marshal(envelope{Data: entry.Data, Indexes: entry.Indexes})
	if err != nil {
		return err
	}

	return c.replace(ctx, collection, entry.Key, func(pipe redis.Pipeliner, prev *envelope) {
		if prev != nil {
			for index, value := range prev.Indexes {
				pipe.SRem(ctx, c.indexKey(collection, index, value), entry.Key)
			}
		}

		pipe.HSet(ctx, c.recordsKey(collection), entry.Key, string(data))

		for index, value := range entry.Indexes {
			pipe.SAdd(ctx, c.indexKey(collection, index, value), entry.Key)
		}
	})
}

// Get implements recordstore.Backend.
func (c *client) Get(ctx context.Context, collection, key string) ([]byte, error) {
	env, err := loadEnvelope(ctx, c.conn, c.recordsKey(collection), key)
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
	return c.replace(ctx, collection, key, func(pipe redis.Pipeliner, prev *envelope) {
		if prev == nil {
			return
		}

		for index, value := range prev.Indexes {
			pipe.SRem(ctx, c.indexKey(collection, index, value), key)
		}
		pipe.HDel(ctx, c.recordsKey(collection), key)
	})
}

// Keys implements recordstore.Backend.
func (c *client) Keys(ctx context.Context, collection string) ([]string, error) {
	return c.conn.HKeys(ctx, c.recordsKey(collection)).Result()
}

// FindKeys implements recordstore.Backend.
func (c *client) FindKeys(ctx context.Context, collection, index, value string) ([]string, error) {
	return c.conn.SMembers(ctx, c.indexKey(collection, index, value)).Result()
}

var _ recordstore.Backend = (*client)(nil)
