package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/gabapcia/aiowallet/internal/chainquery"
	"github.com/gabapcia/aiowallet/internal/wallet"

	"github.com/urfave/cli/v3"
)

func symbolOf(chain wallet.Chain) string {
	if chain == wallet.Solana {
		return "SOL"
	}
	return "ETH"
}

// balanceCommand prints the balance of an address.
//
// Usage example:
//
//	aiowallet balance --chain solana --address EPjF...
func balanceCommand(q chainquery.Service, defaults Defaults) *cli.Command {
	return &cli.Command{
		Name:        "balance",
		Description: "Query the native-coin balance of an address.",
		Usage:       "Prints the balance of an address.",
		Flags: []cli.Flag{
			chainFlag(),
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Address to query",
				Required: true,
			},
			rpcFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			chain, err := wallet.ParseChain(c.String("chain"))
			if err != nil {
				return err
			}

			balance, err := q.GetBalance(ctx, chain, c.String("address"), endpointFor(c, chain, defaults))
			fmt.Fprintf(out(c), "%s %s\n", balance.Display, symbolOf(chain))
			return err
		},
	}
}

func gasCommand(q chainquery.Service, defaults Defaults) *cli.Command {
	return &cli.Command{
		Name:        "gas",
		Description: "Query the current gas price of an EVM network.",
		Usage:       "Prints the gas price in gwei.",
		Flags: []cli.Flag{
			rpcFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			price, err := q.GetGasPrice(ctx, endpointFor(c, wallet.EVM, defaults))
			if err != nil {
				return err
			}

			fmt.Fprintf(out(c), "%s gwei\n", price.Display)
			return nil
		},
	}
}

func probeCommand(q chainquery.Service) *cli.Command {
	return &cli.Command{
		Name:        "probe",
		Description: "Check that an RPC endpoint answers within five seconds.",
		Usage:       "Tests the reachability of an endpoint.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "url",
				Usage:    "Endpoint URL to probe",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			result := q.ProbeEndpoint(ctx, c.String("url"))
			if !result.Success {
				return errors.New(result.Message)
			}

			fmt.Fprintln(out(c), result.Message)
			return nil
		},
	}
}
