package cli

import (
	"context"
	"io"
	"os"

	"github.com/gabapcia/aiowallet/internal/chainquery"
	"github.com/gabapcia/aiowallet/internal/session"
	"github.com/gabapcia/aiowallet/internal/txsender"
	"github.com/gabapcia/aiowallet/internal/wallet"

	"github.com/urfave/cli/v3"
)

// Defaults are the values used when a command flag is left empty.
type Defaults struct {
	EVMEndpoint    string
	SolanaEndpoint string
	ExportFile     string
}

// Dependencies are the services exposed through the command line.
type Dependencies struct {
	Wallets  wallet.Service
	Query    chainquery.Service
	Sender   txsender.Service
	Session  session.Service
	Defaults Defaults
}

// Run initializes and executes the aiowallet CLI application.
//
// It registers all available commands, including:
//
//   - `wallet`: Creates, imports, lists, deletes and exports wallets.
//   - `balance`, `gas`, `probe`: Read-only chain queries.
//   - `tx`: Builds and sends native-coin transfers.
//   - `connect`, `disconnect`, `whoami`: Manage the connected external wallet.
//
// This function sets up shell completion and invokes the CLI framework to parse and run commands.
func Run(ctx context.Context, deps Dependencies) error {
	return newApp(deps).Run(ctx, os.Args)
}

func newApp(deps Dependencies) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "aiowallet",
		Description:           "Command-line wallet toolkit for batch wallet management on EVM and Solana chains.",
		Usage:                 "aiowallet [command] [flags]",
		Commands: []*cli.Command{
			walletCommand(deps.Wallets, deps.Defaults),
			balanceCommand(deps.Query, deps.Defaults),
			gasCommand(deps.Query, deps.Defaults),
			probeCommand(deps.Query),
			txCommand(deps.Sender, deps.Wallets, deps.Defaults),
			connectCommand(deps.Session),
			disconnectCommand(deps.Session),
			whoamiCommand(deps.Session),
		},
	}
}

// out returns the writer command output goes to.
func out(c *cli.Command) io.Writer {
	if w := c.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

func chainFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "chain",
		Usage: "Chain family (evm, solana)",
		Value: string(wallet.EVM),
	}
}

func rpcFlag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:  "rpc",
		Usage: "RPC endpoint URL (defaults to the configured endpoint for the chain)",
	}
}

// endpointFor returns the flag value or the configured default for chain.
func endpointFor(c *cli.Command, chain wallet.Chain, defaults Defaults) string {
	if rpc := c.String("rpc"); rpc != "" {
		return rpc
	}
	if chain == wallet.Solana {
		return defaults.SolanaEndpoint
	}
	return defaults.EVMEndpoint
}
