package wallet

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/aiowallet/internal/recordstore"
)

// ErrUnsupportedChain is returned for a chain family with no keyring or collection.
var ErrUnsupportedChain = errors.New("unsupported chain")

// Chain is a family of blockchains sharing a key scheme.
type Chain string

const (
	// EVM covers Ethereum and every EVM-compatible network (secp256k1 keys).
	EVM Chain = "evm"

	// Solana covers the Solana network (ed25519 keys).
	Solana Chain = "solana"
)

// ParseChain resolves a user supplied chain name. Matching is case
// insensitive and accepts the usual aliases ("eth", "ethereum", "sol").
func ParseChain(s string) (Chain, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "evm", "eth", "ethereum":
		return EVM, nil
	case "solana", "sol":
		return Solana, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedChain, s)
	}
}

// String implements fmt.Stringer.
func (c Chain) String() string {
	return string(c)
}

// Collection returns the record store collection holding the wallets of c.
func (c Chain) Collection() (string, error) {
	switch c {
	case EVM:
		return recordstore.WalletManage, nil
	case Solana:
		return recordstore.SOLWalletManage, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnsupportedChain, string(c))
	}
}
