package cli

import (
	"context"
	"fmt"

	"github.com/gabapcia/aiowallet/internal/session"

	"github.com/urfave/cli/v3"
)

func connectCommand(s session.Service) *cli.Command {
	return &cli.Command{
		Name:        "connect",
		Description: "Log in with the configured wallet provider by signing a timestamped message.",
		Usage:       "Connects the external wallet.",
		Action: func(ctx context.Context, c *cli.Command) error {
			addresses, err := s.Connect(ctx)
			if err != nil {
				return err
			}

			for _, a := range addresses {
				fmt.Fprintln(out(c), a)
			}
			return nil
		},
	}
}

func disconnectCommand(s session.Service) *cli.Command {
	return &cli.Command{
		Name:        "disconnect",
		Description: "Forget the connected wallet addresses.",
		Usage:       "Disconnects the external wallet.",
		Action: func(ctx context.Context, c *cli.Command) error {
			return s.Disconnect(ctx)
		},
	}
}

func whoamiCommand(s session.Service) *cli.Command {
	return &cli.Command{
		Name:        "whoami",
		Description: "Print the connected wallet addresses.",
		Usage:       "Shows the connected wallet.",
		Action: func(ctx context.Context, c *cli.Command) error {
			addresses, err := s.Addresses(ctx)
			if err != nil {
				return err
			}

			if len(addresses) == 0 {
				fmt.Fprintln(out(c), "not connected")
				return nil
			}

			for _, a := range addresses {
				fmt.Fprintln(out(c), a)
			}
			return nil
		},
	}
}
