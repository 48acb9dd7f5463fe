package recordstore

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"slices"

	"github.com/gabapcia/aiowallet/internal/pkg/logger"
	"github.com/gabapcia/aiowallet/internal/pkg/types"
	"github.com/gabapcia/aiowallet/internal/pkg/validator"
	"github.com/gabapcia/aiowallet/internal/pkg/x/batch"
)

// Initialize implements Service.
//
// A stored version above schema.Version fails with ErrVersionDowngrade. A
// lower one (or a fresh database) creates every collection of schema that is
// not stored yet and then records the new version. Stored collections keep
// their original definition.
func (s *service) Initialize(ctx context.Context, schema Schema) error {
	if err := validator.Validate(schema); err != nil {
		return err
	}

	ctx = logger.Derive(ctx, "schema.name", schema.Name, "schema.version", schema.Version)

	version, stored, err := s.backend.LoadSchema(ctx)
	if err != nil {
		logger.Error(ctx, "failed to load stored schema", "error", err)
		return err
	}

	if version > schema.Version {
		logger.Error(ctx, "refusing to open a newer database", "stored.version", version)
		return fmt.Errorf("%w: stored %d, requested %d", ErrVersionDowngrade, version, schema.Version)
	}

	existing := types.NewSet[string]()
	for _, c := range stored {
		existing.Add(c.Name)
	}

	if version < schema.Version {
		var create []Collection
		for _, c := range schema.Collections {
			if !existing.Has(c.Name) {
				create = append(create, c)
				existing.Add(c.Name)
			}
		}

		if err := s.backend.ApplySchema(ctx, schema.Version, create); err != nil {
			logger.Error(ctx, "failed to upgrade schema", "stored.version", version, "error", err)
			return err
		}

		stored = append(stored, create...)
		logger.Info(ctx, "schema upgraded", "stored.version", version, "collections.created", len(create))
	}

	collections := make(map[string]Collection, len(stored))
	for _, c := range stored {
		collections[c.Name] = c
	}

	s.mu.Lock()
	s.collections = collections
	s.mu.Unlock()

	return nil
}

// collection resolves name against the open database.
func (s *service) collection(name string) (Collection, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.collections == nil {
		return Collection{}, ErrNotInitialized
	}

	c, ok := s.collections[name]
	if !ok {
		return Collection{}, fmt.Errorf("%w: %s", ErrCollectionNotFound, name)
	}
	return c, nil
}

// Put implements Service.
func (s *service) Put(ctx context.Context, collection string, record Record) error {
	ctx = logger.Derive(ctx, "collection", collection)

	c, err := s.collection(collection)
	if err != nil {
		logger.Error(ctx, "failed to put record", "error", err)
		return err
	}

	key, err := record.Key(c.KeyPath)
	if err != nil {
		logger.Error(ctx, "failed to put record", "error", err)
		return err
	}

	data, err := json.Marshal(record)
	if err != nil {
		logger.Error(ctx, "failed to encode record", "key", key, "error", err)
		return err
	}

	entry := Entry{
		Key:     key,
		Data:    data,
		Indexes: make(map[string]string, len(c.Indexes)),
	}
	for _, idx := range c.Indexes {
		v, ok := IndexValue(record[idx.Field])
		if !ok {
			continue
		}
		if !indexSafe(v) {
			err := fmt.Errorf("%w: field %q contains a NUL byte", ErrInvalidIndexValue, idx.Field)
			logger.Error(ctx, "failed to put record", "key", key, "error", err)
			return err
		}
		entry.Indexes[idx.Name] = v
	}

	if err := s.backend.Put(ctx, c.Name, entry); err != nil {
		logger.Error(ctx, "failed to put record", "key", key, "error", err)
		return err
	}

	return nil
}

// Get implements Service.
func (s *service) Get(ctx context.Context, collection, key string) (Record, error) {
	ctx = logger.Derive(ctx, "collection", collection, "key", key)

	c, err := s.collection(collection)
	if err != nil {
		logger.Error(ctx, "failed to get record", "error", err)
		return nil, err
	}

	data, err := s.backend.Get(ctx, c.Name, key)
	if err != nil {
		logger.Error(ctx, "failed to get record", "error", err)
		return nil, err
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var record Record
	if err := dec.Decode(&record); err != nil {
		logger.Error(ctx, "failed to decode record", "error", err)
		return nil, err
	}

	return record, nil
}

// Delete implements Service.
func (s *service) Delete(ctx context.Context, collection, key string) error {
	ctx = logger.Derive(ctx, "collection", collection, "key", key)

	c, err := s.collection(collection)
	if err != nil {
		logger.Error(ctx, "failed to delete record", "error", err)
		return err
	}

	if err := s.backend.Delete(ctx, c.Name, key); err != nil {
		logger.Error(ctx, "failed to delete record", "error", err)
		return err
	}

	return nil
}

// DeleteMany implements Service.
func (s *service) DeleteMany(ctx context.Context, collection string, keys []string) []batch.Outcome[string] {
	return batch.Run(ctx, types.Dedupe(keys), func(ctx context.Context, key string) error {
		return s.Delete(ctx, collection, key)
	})
}

// ListKeys implements Service.
func (s *service) ListKeys(ctx context.Context, collection string) ([]string, error) {
	ctx = logger.Derive(ctx, "collection", collection)

	c, err := s.collection(collection)
	if err != nil {
		logger.Error(ctx, "failed to list keys", "error", err)
		return nil, err
	}

	keys, err := s.backend.Keys(ctx, c.Name)
	if err != nil {
		logger.Error(ctx, "failed to list keys", "error", err)
		return nil, err
	}

	slices.Sort(keys)
	return keys, nil
}

// FindKeys implements Service.
func (s *service) FindKeys(ctx context.Context, collection, index string, value any) ([]string, error) {
	ctx = logger.Derive(ctx, "collection", collection, "index", index)

	c, err := s.collection(collection)
	if err != nil {
		logger.Error(ctx, "failed to find keys", "error", err)
		return nil, err
	}

	if _, ok := c.index(index); !ok {
		err := fmt.Errorf("%w: %s.%s", ErrIndexNotFound, collection, index)
		logger.Error(ctx, "failed to find keys", "error", err)
		return nil, err
	}

	v, ok := IndexValue(value)
	if !ok || !indexSafe(v) {
		return []string{}, nil
	}

	keys, err := s.backend.FindKeys(ctx, c.Name, index, v)
	if err != nil {
		logger.Error(ctx, "failed to find keys", "error", err)
		return nil, err
	}

	slices.Sort(keys)
	return keys, nil
}

// Close implements Service.
func (s *service) Close() error {
	s.mu.Lock()
	s.collections = nil
	s.mu.Unlock()

	return s.backend.Close()
}
