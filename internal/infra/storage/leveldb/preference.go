package leveldb

import (
	"context"
	"errors"

	"github.com/gabapcia/aiowallet/internal/session"

	goleveldb "github.com/syndtr/goleveldb/leveldb"
)

// LoadPreference implements session.PreferenceStorage.
func (c *client) LoadPreference(ctx context.Context, key string) (string, error) {
	raw, err := c.db.Get(preferenceKey(key), nil)
	if errors.Is(err, goleveldb.ErrNotFound) {
		return "", session.ErrPreferenceNotFound
	}
	if err != nil {
		return "", err
	}
	return string(raw), nil
}

// SavePreference implements session.PreferenceStorage.
func (c *client) SavePreference(ctx context.Context, key, value string) error {
	return c.db.Put(preferenceKey(key), []byte(value), c.writeOpts)
}

// DeletePreference implements session.PreferenceStorage.
func (c *client) DeletePreference(ctx context.Context, key string) error {
	return c.db.Delete(preferenceKey(key), c.writeOpts)
}

var _ session.PreferenceStorage = (*client)(nil)
