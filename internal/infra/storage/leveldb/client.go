// Package leveldb is the embedded storage driver. It persists the record
// store and user preferences in a goleveldb database owned by the process.
//
// Key layout:
//
//	meta:version                              stored schema version
//	meta:collection:<name>                    JSON collection definition
//	rec:<collection>:<key>                    JSON record envelope
//	idx:<collection>:<index>:<value>\x00<key> secondary index entry
//	pref:<key>                                preference value
package leveldb

import (
	"context"
	"sync"
	"time"

	"github.com/gabapcia/aiowallet/internal/pkg/logger"
	"github.com/gabapcia/aiowallet/internal/pkg/resilience/retry"

	goleveldb "github.com/syndtr/goleveldb/leveldb"
	lerrors "github.com/syndtr/goleveldb/leveldb/errors"
	"github.com/syndtr/goleveldb/leveldb/opt"
	"github.com/syndtr/goleveldb/leveldb/storage"
)

type client struct {
	db        *goleveldb.DB
	writeOpts *opt.WriteOptions

	// mu serializes read-modify-write cycles that keep index entries in
	// step with their record.
	mu sync.Mutex
}

func (c *client) Close() error {
	return c.db.Close()
}

type config struct {
	sync         bool
	openAttempts uint
	openDelay    time.Duration
}

// Option configures Open.
type Option func(*config)

// WithSync makes every write fsync before returning.
func WithSync(sync bool) Option {
	return func(c *config) {
		c.sync = sync
	}
}

// WithOpenRetry sets how many times Open tries to acquire the database and
// the initial delay between tries. The file lock is released a moment after
// a previous process exits, so the first attempt may fail.
func WithOpenRetry(attempts uint, delay time.Duration) Option {
	return func(c *config) {
		c.openAttempts = attempts
		c.openDelay = delay
	}
}

func newConfig(opts []Option) config {
	cfg := config{
		openAttempts: 5,
		openDelay:    200 * time.Millisecond,
	}
	for _, o := range opts {
		o(&cfg)
	}
	return cfg
}

// Open opens, or creates, the database stored in the directory at path.
//
// A corrupted database is recovered once with goleveldb's journal recovery
// before giving up.
func Open(ctx context.Context, path string, opts ...Option) (*client, error) {
	cfg := newConfig(opts)
	ctx = logger.Derive(ctx, "store.path", path)

	r := retry.New(
		retry.WithAttempts(cfg.openAttempts),
		retry.WithDelay(cfg.openDelay),
		retry.WithRetryIf(func(err error) bool { return !lerrors.IsCorrupted(err) }),
	)

	var db *goleveldb.DB
	err := r.Execute(ctx, func() error {
		var err error
		db, err = goleveldb.OpenFile(path, nil)
		if err != nil {
			logger.Warn(ctx, "failed to open leveldb store", "error", err)
		}
		return err
	})
	if lerrors.IsCorrupted(err) {
		logger.Warn(ctx, "recovering corrupted leveldb store", "error", err)
		db, err = goleveldb.RecoverFile(path, nil)
	}
	if err != nil {
		return nil, err
	}

	return &client{
		db:        db,
		writeOpts: &opt.WriteOptions{Sync: cfg.sync},
	}, nil
}

// OpenStorage opens a database on an arbitrary goleveldb storage, such as
// storage.NewMemStorage for an ephemeral store.
func OpenStorage(stor storage.Storage, opts ...Option) (*client, error) {
	cfg := newConfig(opts)

	db, err := goleveldb.Open(stor, nil)
	if err != nil {
		return nil, err
	}

	return &client{
		db:        db,
		writeOpts: &opt.WriteOptions{Sync: cfg.sync},
	}, nil
}
