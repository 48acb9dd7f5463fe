package solana

import (
	"context"
	"math/big"

	"github.com/gagliardetto/solana-go"
	"github.com/gagliardetto/solana-go/rpc"
)

// client queries a Solana RPC node.
type client struct {
	conn *rpc.Client
}

// Dial returns a client for the Solana RPC endpoint at url.
func Dial(url string) *client {
	return &client{
		conn: rpc.New(url),
	}
}

// Balance returns the confirmed balance of address in lamports.
func (c *client) Balance(ctx context.Context, address string) (*big.Int, error) {
	pub, err := solana.PublicKeyFromBase58(address)
	if err != nil {
		return nil, err
	}

	out, err := c.conn.GetBalance(ctx, pub, rpc.CommitmentConfirmed)
	if err != nil {
		return nil, err
	}

	return new(big.Int).SetUint64(out.Value), nil
}
