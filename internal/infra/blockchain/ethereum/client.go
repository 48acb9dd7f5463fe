// Package ethereum talks to EVM-compatible nodes and wallet providers over
// JSON-RPC and implements the EVM keyring.
package ethereum

import (
	"github.com/gabapcia/aiowallet/internal/pkg/transport/jsonrpc"
)

// client wraps a JSON-RPC connection to an EVM node or wallet provider.
type client struct {
	conn jsonrpc.Client // Underlying JSON-RPC client used to interact with the node
}

// NewClient creates an EVM client over the given JSON-RPC connection.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}

// Dial returns a client for the JSON-RPC endpoint at url.
func Dial(url string, opts ...jsonrpc.Option) *client {
	return NewClient(jsonrpc.NewClient(url, opts...))
}
