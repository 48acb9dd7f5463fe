package ethereum

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/aiowallet/internal/pkg/evmkey"
	"github.com/gabapcia/aiowallet/internal/wallet"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
)

// ErrInvalidAddress is returned for strings that are not 20-byte hex addresses.
var ErrInvalidAddress = errors.New("invalid ethereum address")

// keyring generates secp256k1 keypairs. Private keys are 0x-prefixed hex,
// addresses use the EIP-55 mixed-case checksum.
type keyring struct{}

var _ wallet.Keyring = keyring{}

// NewKeyring returns the EVM keyring.
func NewKeyring() keyring {
	return keyring{}
}

// Generate implements wallet.Keyring.
func (keyring) Generate() (string, string, error) {
	key, err := crypto.GenerateKey()
	if err != nil {
		return "", "", err
	}

	address := crypto.PubkeyToAddress(key.PublicKey).Hex()
	return address, hexutil.Encode(crypto.FromECDSA(key)), nil
}

// Derive implements wallet.Keyring.
func (keyring) Derive(privateKey string) (string, error) {
	key, err := evmkey.Parse(privateKey)
	if err != nil {
		return "", err
	}
	return evmkey.Address(key), nil
}

// Normalize implements wallet.Keyring.
func (keyring) Normalize(address string) (string, error) {
	address = strings.TrimSpace(address)
	if !common.IsHexAddress(address) {
		return "", fmt.Errorf("%w: %q", ErrInvalidAddress, address)
	}
	return common.HexToAddress(address).Hex(), nil
}
