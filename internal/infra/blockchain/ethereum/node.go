package ethereum

import (
	"context"
	"math/big"

	"github.com/gabapcia/aiowallet/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/aiowallet/internal/pkg/types"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

const (
	blockLatest  = "latest"
	blockPending = "pending"
)

// callRequest is the transaction object accepted by eth_estimateGas.
type callRequest struct {
	From  string    `json:"from"`
	To    string    `json:"to"`
	Value types.Hex `json:"value"`
}

// fetchQuantity calls method and decodes its hex quantity result.
func (c *client) fetchQuantity(ctx context.Context, method string, params ...any) (types.Hex, error) {
	return jsonrpc.Call[types.Hex](ctx, c.conn, method, params...)
}

// Balance returns the balance of address in wei at the latest block.
func (c *client) Balance(ctx context.Context, address string) (*big.Int, error) {
	balance, err := c.fetchQuantity(ctx, "eth_getBalance", address, blockLatest)
	if err != nil {
		return nil, err
	}
	return balance.Big(), nil
}

// GasPrice returns the node's suggested gas price in wei.
func (c *client) GasPrice(ctx context.Context) (*big.Int, error) {
	price, err := c.fetchQuantity(ctx, "eth_gasPrice")
	if err != nil {
		return nil, err
	}
	return price.Big(), nil
}

// PendingNonce returns the next nonce of address, counting pending transactions.
func (c *client) PendingNonce(ctx context.Context, address string) (uint64, error) {
	nonce, err := c.fetchQuantity(ctx, "eth_getTransactionCount", address, blockPending)
	if err != nil {
		return 0, err
	}
	return nonce.Uint64(), nil
}

// EstimateGas returns the gas needed to transfer value wei from from to to.
func (c *client) EstimateGas(ctx context.Context, from, to string, value *big.Int) (uint64, error) {
	gas, err := c.fetchQuantity(ctx, "eth_estimateGas", callRequest{
		From:  from,
		To:    to,
		Value: types.HexFromBig(value),
	})
	if err != nil {
		return 0, err
	}
	return gas.Uint64(), nil
}

// ChainID returns the EIP-155 chain id of the network.
func (c *client) ChainID(ctx context.Context) (*big.Int, error) {
	id, err := c.fetchQuantity(ctx, "eth_chainId")
	if err != nil {
		return nil, err
	}
	return id.Big(), nil
}

// SendRawTransaction submits an RLP encoded signed transaction and returns its hash.
func (c *client) SendRawTransaction(ctx context.Context, raw []byte) (string, error) {
	return jsonrpc.Call[string](ctx, c.conn, "eth_sendRawTransaction", hexutil.Encode(raw))
}
