package wallet

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/aiowallet/internal/pkg/logger"
	"github.com/gabapcia/aiowallet/internal/pkg/types"
	"github.com/gabapcia/aiowallet/internal/pkg/x/batch"
	"github.com/gabapcia/aiowallet/internal/recordstore"

	"go.uber.org/zap"
)

const groupIndex = "group"

func failAll[T any](items []T, err error) []batch.Outcome[T] {
	out := make([]batch.Outcome[T], len(items))
	for i, item := range items {
		out[i] = batch.Outcome[T]{Item: item, Err: err}
	}
	return out
}

// Save implements Service.
func (s *service) Save(ctx context.Context, chain Chain, records []Record) []batch.Outcome[Record] {
	collection, err := chain.Collection()
	if err != nil {
		return failAll(records, err)
	}

	outcomes := batch.Run(ctx, records, func(ctx context.Context, r Record) error {
		doc, err := r.toStoreRecord()
		if err != nil {
			return err
		}
		return s.store.Put(ctx, collection, doc)
	})

	if failed := batch.Failed(outcomes); len(failed) > 0 {
		logger.Warn(ctx, "some wallets were not saved",
			zap.Stringer("chain", chain),
			zap.Int("failed", len(failed)),
			zap.Int("total", len(records)),
		)
	}

	return outcomes
}

// Import implements Service.
func (s *service) Import(ctx context.Context, group string, chain Chain, privateKey string) (Record, error) {
	collection, err := chain.Collection()
	if err != nil {
		return Record{}, err
	}

	address, err := s.DeriveAddress(chain, privateKey)
	if err != nil {
		return Record{}, err
	}

	record := Record{Group: group, Address: address, PrivateKey: privateKey}
	doc, err := record.toStoreRecord()
	if err != nil {
		return Record{}, err
	}

	if err := s.store.Put(ctx, collection, doc); err != nil {
		return Record{}, err
	}

	logger.Info(ctx, "wallet imported", zap.Stringer("chain", chain), zap.String("address", address))
	return record, nil
}

// Get implements Service.
func (s *service) Get(ctx context.Context, chain Chain, address string) (Record, error) {
	collection, err := chain.Collection()
	if err != nil {
		return Record{}, err
	}

	key, err := s.normalize(chain, address)
	if err != nil {
		return Record{}, err
	}

	doc, err := s.store.Get(ctx, collection, key)
	if errors.Is(err, recordstore.ErrRecordNotFound) {
		return Record{}, fmt.Errorf("%w: %s", ErrWalletNotFound, address)
	}
	if err != nil {
		return Record{}, err
	}

	return recordFromStore(doc)
}

// normalize canonicalizes address when a keyring is registered for chain.
// Records are keyed by the address produced by the keyring, so lookups must
// use the same form.
func (s *service) normalize(chain Chain, address string) (string, error) {
	kr, err := s.keyring(chain)
	if err != nil {
		return address, nil
	}

	normalized, err := kr.Normalize(address)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	return normalized, nil
}

// List implements Service.
func (s *service) List(ctx context.Context, chain Chain) ([]string, error) {
	collection, err := chain.Collection()
	if err != nil {
		return nil, err
	}

	return s.store.ListKeys(ctx, collection)
}

// ListGroup implements Service.
func (s *service) ListGroup(ctx context.Context, chain Chain, group string) ([]Record, error) {
	collection, err := chain.Collection()
	if err != nil {
		return nil, err
	}

	keys, err := s.store.FindKeys(ctx, collection, groupIndex, group)
	if err != nil {
		return nil, err
	}

	return s.load(ctx, collection, keys)
}

// Groups implements Service.
func (s *service) Groups(ctx context.Context, chain Chain) (map[string][]Record, error) {
	collection, err := chain.Collection()
	if err != nil {
		return nil, err
	}

	keys, err := s.store.ListKeys(ctx, collection)
	if err != nil {
		return nil, err
	}

	records, err := s.load(ctx, collection, keys)
	if err != nil {
		return nil, err
	}

	groups := types.NewDefaultMap[string](func() []Record { return nil })
	for _, r := range records {
		groups.Set(r.Group, append(groups.Get(r.Group), r))
	}

	return groups.ToMap(), nil
}

// load fetches the records stored under keys. Keys deleted between listing
// and loading are skipped.
func (s *service) load(ctx context.Context, collection string, keys []string) ([]Record, error) {
	records := make([]Record, 0, len(keys))
	for _, key := range keys {
		doc, err := s.store.Get(ctx, collection, key)
		if errors.Is(err, recordstore.ErrRecordNotFound) {
			continue
		}
		if err != nil {
			return nil, err
		}

		r, err := recordFromStore(doc)
		if err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, nil
}

// Delete implements Service. Addresses are normalized like in Get, so any
// accepted spelling removes the stored record; invalid ones fail with
// ErrInvalidAddress without reaching the store.
func (s *service) Delete(ctx context.Context, chain Chain, addresses []string) []batch.Outcome[string] {
	addresses = types.Dedupe(addresses)

	collection, err := chain.Collection()
	if err != nil {
		return failAll(addresses, err)
	}

	outcomes := make([]batch.Outcome[string], len(addresses))
	keyOf := make([]string, len(addresses))
	keys := make([]string, 0, len(addresses))
	for i, address := range addresses {
		outcomes[i].Item = address

		key, err := s.normalize(chain, address)
		if err != nil {
			outcomes[i].Err = err
			continue
		}
		keyOf[i] = key
		keys = append(keys, key)
	}

	deleted := make(map[string]error, len(keys))
	for _, o := range s.store.DeleteMany(ctx, collection, keys) {
		deleted[o.Item] = o.Err
	}
	for i := range outcomes {
		if outcomes[i].Err == nil {
			outcomes[i].Err = deleted[keyOf[i]]
		}
	}

	logger.Info(ctx, "wallets deleted",
		zap.Stringer("chain", chain),
		zap.Int("requested", len(addresses)),
		zap.Int("failed", len(batch.Failed(outcomes))),
	)

	return outcomes
}
