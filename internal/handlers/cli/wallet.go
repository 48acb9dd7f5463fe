package cli

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"text/tabwriter"

	"github.com/gabapcia/aiowallet/internal/export"
	"github.com/gabapcia/aiowallet/internal/pkg/x/batch"
	"github.com/gabapcia/aiowallet/internal/wallet"

	"github.com/urfave/cli/v3"
)

// walletCommand groups the wallet management subcommands.
//
// Usage example:
//
//	aiowallet wallet create --chain evm --group batch1 --count 10
func walletCommand(ws wallet.Service, defaults Defaults) *cli.Command {
	return &cli.Command{
		Name:        "wallet",
		Description: "Create, import, list, delete and export locally stored wallets.",
		Usage:       "Manages locally stored wallets.",
		Commands: []*cli.Command{
			createWalletsCommand(ws),
			importWalletCommand(ws),
			listWalletsCommand(ws),
			deleteWalletsCommand(ws),
			exportWalletsCommand(ws, defaults),
			addressQRCommand(),
		},
	}
}

func createWalletsCommand(ws wallet.Service) *cli.Command {
	return &cli.Command{
		Name:        "create",
		Description: "Generate a batch of new wallets tagged with a group label and store them.",
		Usage:       "Generates and stores count new wallets.",
		Flags: []cli.Flag{
			chainFlag(),
			&cli.StringFlag{
				Name:     "group",
				Usage:    "Group label attached to every generated wallet",
				Required: true,
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: fmt.Sprintf("Number of wallets to generate (1-%d)", wallet.MaxBatchSize),
				Value: 1,
			},
			&cli.BoolFlag{
				Name:  "show-keys",
				Usage: "Print private keys next to the addresses",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			chain, err := wallet.ParseChain(c.String("chain"))
			if err != nil {
				return err
			}

			records, err := ws.CreateBatch(ctx, c.String("group"), int(c.Int("count")), chain)
			if err != nil {
				return err
			}

			outcomes := ws.Save(ctx, chain, records)

			w := tabwriter.NewWriter(out(c), 0, 4, 2, ' ', 0)
			for _, o := range outcomes {
				if !o.OK() {
					continue
				}
				if c.Bool("show-keys") {
					fmt.Fprintf(w, "%s\t%s\t%s\n", o.Item.Group, o.Item.Address, o.Item.PrivateKey)
				} else {
					fmt.Fprintf(w, "%s\t%s\n", o.Item.Group, o.Item.Address)
				}
			}
			if err := w.Flush(); err != nil {
				return err
			}

			return batch.Err(outcomes)
		},
	}
}

func importWalletCommand(ws wallet.Service) *cli.Command {
	return &cli.Command{
		Name:        "import",
		Description: "Store an existing private key. The key is read from the terminal when --key is omitted.",
		Usage:       "Imports an existing private key.",
		Flags: []cli.Flag{
			chainFlag(),
			&cli.StringFlag{
				Name:  "group",
				Usage: "Group label attached to the wallet",
				Value: "imported",
			},
			&cli.StringFlag{
				Name:  "key",
				Usage: "Private key to import",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			chain, err := wallet.ParseChain(c.String("chain"))
			if err != nil {
				return err
			}

			key := c.String("key")
			if key == "" {
				if key, err = readSecret("Private key: "); err != nil {
					return err
				}
			}

			record, err := ws.Import(ctx, c.String("group"), chain, key)
			if err != nil {
				return err
			}

			fmt.Fprintln(out(c), record.Address)
			return nil
		},
	}
}

// walletRecords returns the wallets of group, or every wallet when group is empty.
func walletRecords(ctx context.Context, ws wallet.Service, chain wallet.Chain, group string) ([]wallet.Record, error) {
	if group != "" {
		return ws.ListGroup(ctx, chain, group)
	}

	groups, err := ws.Groups(ctx, chain)
	if err != nil {
		return nil, err
	}

	var records []wallet.Record
	for _, name := range slices.Sorted(maps.Keys(groups)) {
		records = append(records, groups[name]...)
	}
	return records, nil
}

func listWalletsCommand(ws wallet.Service) *cli.Command {
	return &cli.Command{
		Name:        "list",
		Description: "List stored wallets, optionally restricted to one group.",
		Usage:       "Lists stored wallets.",
		Flags: []cli.Flag{
			chainFlag(),
			&cli.StringFlag{
				Name:  "group",
				Usage: "Only list wallets with this group label",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			chain, err := wallet.ParseChain(c.String("chain"))
			if err != nil {
				return err
			}

			records, err := walletRecords(ctx, ws, chain, c.String("group"))
			if err != nil {
				return err
			}

			w := tabwriter.NewWriter(out(c), 0, 4, 2, ' ', 0)
			for _, r := range records {
				fmt.Fprintf(w, "%s\t%s\n", r.Group, r.Address)
			}
			return w.Flush()
		},
	}
}

func deleteWalletsCommand(ws wallet.Service) *cli.Command {
	return &cli.Command{
		Name:        "delete",
		Description: "Delete stored wallets by address.",
		Usage:       "Deletes the given wallet addresses.",
		ArgsUsage:   "ADDRESS [ADDRESS...]",
		Flags: []cli.Flag{
			chainFlag(),
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			chain, err := wallet.ParseChain(c.String("chain"))
			if err != nil {
				return err
			}

			addresses := c.Args().Slice()
			if len(addresses) == 0 {
				return errors.New("at least one address is required")
			}

			outcomes := ws.Delete(ctx, chain, addresses)
			fmt.Fprintf(out(c), "deleted %d of %d wallets\n", len(outcomes)-len(batch.Failed(outcomes)), len(outcomes))

			return batch.Err(outcomes)
		},
	}
}

func exportWalletsCommand(ws wallet.Service, defaults Defaults) *cli.Command {
	return &cli.Command{
		Name:        "export",
		Description: "Export stored wallets, private keys included, to an xlsx spreadsheet.",
		Usage:       "Exports wallets to a spreadsheet.",
		Flags: []cli.Flag{
			chainFlag(),
			&cli.StringFlag{
				Name:  "group",
				Usage: "Only export wallets with this group label",
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "Spreadsheet file name",
				Value: defaults.ExportFile,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			chain, err := wallet.ParseChain(c.String("chain"))
			if err != nil {
				return err
			}

			records, err := walletRecords(ctx, ws, chain, c.String("group"))
			if err != nil {
				return err
			}

			rows := make([]export.Row, len(records))
			for i, r := range records {
				rows[i] = export.Row{"group": r.Group, "address": r.Address, "privateKey": r.PrivateKey}
			}

			path, err := export.ExportRows(rows, c.String("output"), export.WithColumns("group", "address", "privateKey"))
			if err != nil {
				return err
			}

			fmt.Fprintf(out(c), "exported %d wallets to %s\n", len(rows), path)
			return nil
		},
	}
}

func addressQRCommand() *cli.Command {
	return &cli.Command{
		Name:        "qr",
		Description: "Write a PNG QR code of an address, for sharing a deposit address.",
		Usage:       "Writes an address QR code.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Address to encode",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "output",
				Usage: "PNG file name (defaults to <address>.png)",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			path, err := export.ExportAddressQR(c.String("address"), c.String("output"))
			if err != nil {
				return err
			}

			fmt.Fprintln(out(c), path)
			return nil
		},
	}
}
