package cli

import (
	"context"
	"errors"
	"fmt"
	"math/big"
	"text/tabwriter"

	"github.com/gabapcia/aiowallet/internal/pkg/units"
	"github.com/gabapcia/aiowallet/internal/txsender"
	"github.com/gabapcia/aiowallet/internal/wallet"

	"github.com/urfave/cli/v3"
)

func transferFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "from",
			Usage:    "Sender address",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "to",
			Usage:    "Recipient address",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "amount",
			Usage:    "Amount in ether, the network fee is taken out of it",
			Required: true,
		},
		rpcFlag(),
		&cli.UintFlag{
			Name:  "multiplier",
			Usage: "Gas limit multiplier applied to the estimate",
			Value: 1,
		},
		&cli.StringFlag{
			Name:  "max-fee",
			Usage: "EIP-1559 max fee per gas in wei (requires --priority-fee)",
		},
		&cli.StringFlag{
			Name:  "priority-fee",
			Usage: "EIP-1559 max priority fee per gas in wei (requires --max-fee)",
		},
	}
}

func parseWei(s string) (*big.Int, error) {
	if s == "" {
		return nil, nil
	}
	return units.ParseUnits(s, 0)
}

func buildRequest(c *cli.Command, defaults Defaults) (txsender.BuildRequest, error) {
	maxFee, err := parseWei(c.String("max-fee"))
	if err != nil {
		return txsender.BuildRequest{}, fmt.Errorf("--max-fee: %w", err)
	}

	priorityFee, err := parseWei(c.String("priority-fee"))
	if err != nil {
		return txsender.BuildRequest{}, fmt.Errorf("--priority-fee: %w", err)
	}

	return txsender.BuildRequest{
		From:                 c.String("from"),
		To:                   c.String("to"),
		Endpoint:             endpointFor(c, wallet.EVM, defaults),
		Amount:               c.String("amount"),
		FeeMultiplier:        uint64(c.Uint("multiplier")),
		MaxFeePerGas:         maxFee,
		MaxPriorityFeePerGas: priorityFee,
	}, nil
}

// txCommand groups the transfer subcommands.
//
// Usage example:
//
//	aiowallet tx send --from 0xA... --to 0xB... --amount 0.5
func txCommand(ts txsender.Service, ws wallet.Service, defaults Defaults) *cli.Command {
	return &cli.Command{
		Name:        "tx",
		Description: "Build and send native-coin transfers on EVM networks.",
		Usage:       "Builds and sends transfers.",
		Commands: []*cli.Command{
			buildTxCommand(ts, defaults),
			sendTxCommand(ts, ws, defaults),
		},
	}
}

func buildTxCommand(ts txsender.Service, defaults Defaults) *cli.Command {
	return &cli.Command{
		Name:        "build",
		Description: "Prepare a transfer and print its parameters without signing it.",
		Usage:       "Prints the parameters of a transfer.",
		Flags:       transferFlags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			req, err := buildRequest(c, defaults)
			if err != nil {
				return err
			}

			params, err := ts.Build(ctx, req)
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(out(c), 0, 4, 2, ' ', 0)
			fmt.Fprintf(w, "from\t%s\n", params.From)
			fmt.Fprintf(w, "to\t%s\n", params.To)
			fmt.Fprintf(w, "value\t%s wei\n", params.Value)
			fmt.Fprintf(w, "gas\t%d\n", params.Gas)
			fmt.Fprintf(w, "gasPrice\t%s wei\n", params.GasPrice)
			fmt.Fprintf(w, "nonce\t%d\n", params.Nonce)
			if params.Dynamic() {
				fmt.Fprintf(w, "maxFeePerGas\t%s wei\n", params.MaxFeePerGas)
				fmt.Fprintf(w, "maxPriorityFeePerGas\t%s wei\n", params.MaxPriorityFeePerGas)
			}
			return w.Flush()
		},
	}
}

// senderKey returns the key given with --key, the stored key of from, or
// prompts for it.
func senderKey(ctx context.Context, c *cli.Command, ws wallet.Service, from string) (string, error) {
	if key := c.String("key"); key != "" {
		return key, nil
	}

	record, err := ws.Get(ctx, wallet.EVM, from)
	if err == nil {
		return record.PrivateKey, nil
	}
	if !errors.Is(err, wallet.ErrWalletNotFound) {
		return "", err
	}

	return readSecret("Private key of " + from + ": ")
}

func sendTxCommand(ts txsender.Service, ws wallet.Service, defaults Defaults) *cli.Command {
	flags := append(transferFlags(), &cli.StringFlag{
		Name:  "key",
		Usage: "Sender private key (defaults to the stored wallet, then a terminal prompt)",
	})

	return &cli.Command{
		Name:        "send",
		Description: "Prepare, sign and submit a transfer. The transaction is submitted once and never retried.",
		Usage:       "Sends a transfer and prints its hash.",
		Flags:       flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			req, err := buildRequest(c, defaults)
			if err != nil {
				return err
			}

			key, err := senderKey(ctx, c, ws, req.From)
			if err != nil {
				return err
			}

			params, err := ts.Build(ctx, req)
			if err != nil {
				return err
			}

			hash, err := ts.Send(ctx, params, key, req.Endpoint)
			if err != nil {
				return err
			}

			fmt.Fprintln(out(c), hash)
			return nil
		},
	}
}
