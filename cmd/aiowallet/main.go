package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gabapcia/aiowallet/internal/chainquery"
	"github.com/gabapcia/aiowallet/internal/config"
	"github.com/gabapcia/aiowallet/internal/handlers/cli"
	"github.com/gabapcia/aiowallet/internal/infra/blockchain/ethereum"
	"github.com/gabapcia/aiowallet/internal/infra/blockchain/solana"
	"github.com/gabapcia/aiowallet/internal/infra/storage/leveldb"
	"github.com/gabapcia/aiowallet/internal/infra/storage/redis"
	"github.com/gabapcia/aiowallet/internal/pkg/logger"
	"github.com/gabapcia/aiowallet/internal/pkg/telemetry"
	"github.com/gabapcia/aiowallet/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/aiowallet/internal/recordstore"
	"github.com/gabapcia/aiowallet/internal/session"
	"github.com/gabapcia/aiowallet/internal/txsender"
	"github.com/gabapcia/aiowallet/internal/wallet"
)

// storage is what both backends provide: records plus session preferences.
type storage interface {
	recordstore.Backend
	session.PreferenceStorage
}

func openStorage(ctx context.Context, cfg *config.Config) (storage, error) {
	switch cfg.Store.Driver {
	case config.DriverRedis:
		return redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB,
			redis.WithNamespace(cfg.Redis.Namespace),
		)
	default:
		return leveldb.Open(ctx, cfg.Store.Path, leveldb.WithSync(cfg.Store.Sync))
	}
}

func run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.Telemetry.Enabled {
		shutdown, err := telemetry.Init(ctx, cfg.Telemetry.ServiceName)
		if err != nil {
			return err
		}
		defer shutdown(context.WithoutCancel(ctx))
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}
	defer logger.Sync()

	backend, err := openStorage(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open %s store: %w", cfg.Store.Driver, err)
	}

	store := recordstore.New(backend)
	defer store.Close()

	if err := store.Initialize(ctx, recordstore.DefaultSchema()); err != nil {
		return err
	}

	rpcOpts := []jsonrpc.Option{
		jsonrpc.WithTimeout(cfg.RPC.Timeout),
		jsonrpc.WithRetryMax(cfg.RPC.Retries),
	}

	wallets := wallet.New(store, map[wallet.Chain]wallet.Keyring{
		wallet.EVM:    ethereum.NewKeyring(),
		wallet.Solana: solana.NewKeyring(),
	})

	query := chainquery.New(
		chainquery.WithDialer(wallet.EVM, func(endpoint string) chainquery.Node {
			return ethereum.Dial(endpoint, rpcOpts...)
		}),
		chainquery.WithDialer(wallet.Solana, func(endpoint string) chainquery.Node {
			return solana.Dial(endpoint)
		}),
		chainquery.WithGasDialer(func(endpoint string) chainquery.GasOracle {
			return ethereum.Dial(endpoint, rpcOpts...)
		}),
	)

	// Submitting a transaction twice must never happen, so the sender
	// talks to the node without retries.
	sender := txsender.New(func(endpoint string) txsender.Node {
		return ethereum.Dial(endpoint, jsonrpc.WithTimeout(cfg.RPC.Timeout), jsonrpc.WithRetryMax(0))
	})

	var provider session.Provider
	if cfg.Provider.URL != "" {
		provider = ethereum.Dial(cfg.Provider.URL, rpcOpts...)
	}

	return cli.Run(ctx, cli.Dependencies{
		Wallets: wallets,
		Query:   query,
		Sender:  sender,
		Session: session.New(backend, provider),
		Defaults: cli.Defaults{
			EVMEndpoint:    cfg.RPC.EVM,
			SolanaEndpoint: cfg.RPC.Solana,
			ExportFile:     cfg.Export.File,
		},
	})
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		fmt.Fprintln(os.Stderr, "aiowallet:", err)
		stop()
		os.Exit(1)
	}
}
