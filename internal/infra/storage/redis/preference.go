package redis

import (
	"context"
	"errors"

	"github.com/gabapcia/aiowallet/internal/session"

	redis "github.com/redis/go-redis/v9"
)

func (c *client) preferencesKey() string {
	return c.key("pref")
}

// LoadPreference implements session.PreferenceStorage.
func (c *client) LoadPreference(ctx context.Context, key string) (string, error) {
	value, err := c.conn.HGet(ctx, c.preferencesKey(), key).Result()
	if errors.Is(err, redis.Nil) {
		return "", session.ErrPreferenceNotFound
	}
	return value, err
}

// SavePreference implements session.PreferenceStorage.
func (c *client) SavePreference(ctx context.Context, key, value string) error {
	return c.conn.HSet(ctx, c.preferencesKey(), key, value).Err()
}

// DeletePreference implements session.PreferenceStorage.
func (c *client) DeletePreference(ctx context.Context, key string) error {
	return c.conn.HDel(ctx, c.preferencesKey(), key).Err()
}

var _ session.PreferenceStorage = (*client)(nil)
