// Package redis is the shared storage driver. It persists the record store
// and user preferences in Redis so several machines can work on the same
// wallet batches.
//
// Key layout, under a configurable namespace (default "aiowallet"):
//
//	<ns>:schema                           hash: "version" and "collection:<name>"
//	<ns>:rec:<collection>                 hash: primary key -> JSON record envelope
//	<ns>:idx:<collection>:<index>:<value> set of primary keys
//	<ns>:pref                             hash: preference key -> value
package redis

import (
	"context"
	"strings"
	"time"

	"github.com/gabapcia/aiowallet/internal/pkg/logger"
	"github.com/gabapcia/aiowallet/internal/pkg/resilience/retry"

	redis "github.com/redis/go-redis/v9"
)

// DefaultNamespace prefixes every key written by the driver.
const DefaultNamespace = "aiowallet"

type client struct {
	conn      *redis.Client
	namespace string
}

func (c *client) Close() error {
	return c.conn.Close()
}

// key joins parts under the client namespace.
func (c *client) key(parts ...string) string {
	return c.namespace + ":" + strings.Join(parts, ":")
}

type config struct {
	namespace    string
	pingAttempts uint
	pingDelay    time.Duration
}

// Option configures NewClient.
type Option func(*config)

// WithNamespace sets the prefix of every key.
func WithNamespace(ns string) Option {
	return func(c *config) {
		c.namespace = ns
	}
}

// WithPingRetry sets how many times NewClient pings the server before
// giving up, and the initial delay between pings.
func WithPingRetry(attempts uint, delay time.Duration) Option {
	return func(c *config) {
		c.pingAttempts = attempts
		c.pingDelay = delay
	}
}

// NewClient connects to the Redis server at addr and checks it answers.
func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	cfg := config{
		namespace:    DefaultNamespace,
		pingAttempts: 3,
		pingDelay:    500 * time.Millisecond,
	}
	for _, o := range opts {
		o(&cfg)
	}

	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	ctx = logger.Derive(ctx, "redis.addr", addr)
	r := retry.New(retry.WithAttempts(cfg.pingAttempts), retry.WithDelay(cfg.pingDelay))

	err := r.Execute(ctx, func() error {
		err := conn.Ping(ctx).Err()
		if err != nil {
			logger.Warn(ctx, "redis ping failed", "error", err)
		}
		return err
	})
	if err != nil {
		_ = conn.Close()
		return nil, err
	}

	return &client{
		conn:      conn,
		namespace: cfg.namespace,
	}, nil
}
