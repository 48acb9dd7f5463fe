package ethereum

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/ethereum/go-ethereum/common/hexutil"
)

// RequestAccounts asks the wallet provider for the accounts it exposes.
func (c *client) RequestAccounts(ctx context.Context) ([]string, error) {
	data, err := c.conn.Fetch(ctx, "eth_requestAccounts")
	if err != nil {
		return nil, err
	}

	var accounts []string
	if err := json.Unmarshal(data, &accounts); err != nil {
		return nil, fmt.Errorf("decode eth_requestAccounts result: %w", err)
	}
	return accounts, nil
}

// PersonalSign asks the wallet provider to sign message with the key of
// address, using the personal_sign message prefix.
func (c *client) PersonalSign(ctx context.Context, message, address string) (string, error) {
	data, err := c.conn.Fetch(ctx, "personal_sign", hexutil.Encode([]byte(message)), address)
	if err != nil {
		return "", err
	}

	var signature string
	if err := json.Unmarshal(data, &signature); err != nil {
		return "", fmt.Errorf("decode personal_sign result: %w", err)
	}
	return signature, nil
}
