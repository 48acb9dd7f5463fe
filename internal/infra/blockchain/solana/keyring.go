// Package solana implements the Solana keyring and balance queries over
// the solana-go RPC client.
package solana

import (
	"bytes"
	"crypto/ed25519"
	"errors"
	"fmt"
	"strings"

	"github.com/gabapcia/aiowallet/internal/wallet"

	"github.com/gagliardetto/solana-go"
)

var (
	// ErrInvalidSecretKey is returned for secrets that are not a base-58
	// encoded 64-byte ed25519 keypair.
	ErrInvalidSecretKey = errors.New("invalid solana secret key")

	// ErrInvalidAddress is returned for strings that are not base-58 public keys.
	ErrInvalidAddress = errors.New("invalid solana address")
)

// keyring generates ed25519 keypairs. The secret is the base-58 encoding of
// the 64-byte seed||public key, the address is the base-58 public key.
type keyring struct{}

var _ wallet.Keyring = keyring{}

// NewKeyring returns the Solana keyring.
func NewKeyring() keyring {
	return keyring{}
}

// ParsePrivateKey decodes and checks a base-58 secret key.
func ParsePrivateKey(s string) (solana.PrivateKey, error) {
	key, err := solana.PrivateKeyFromBase58(strings.TrimSpace(s))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidSecretKey, err)
	}

	if len(key) != ed25519.PrivateKeySize {
		return nil, fmt.Errorf("%w: got %d bytes", ErrInvalidSecretKey, len(key))
	}

	derived := ed25519.NewKeyFromSeed(key[:ed25519.SeedSize])
	if !bytes.Equal(derived[ed25519.SeedSize:], key[ed25519.SeedSize:]) {
		return nil, fmt.Errorf("%w: public half does not match seed", ErrInvalidSecretKey)
	}

	return key, nil
}

// Generate implements wallet.Keyring.
func (keyring) Generate() (string, string, error) {
	w := solana.NewWallet()
	return w.PublicKey().String(), w.PrivateKey.String(), nil
}

// Derive implements wallet.Keyring.
func (keyring) Derive(privateKey string) (string, error) {
	key, err := ParsePrivateKey(privateKey)
	if err != nil {
		return "", err
	}
	return key.PublicKey().String(), nil
}

// Normalize implements wallet.Keyring.
func (keyring) Normalize(address string) (string, error) {
	pub, err := solana.PublicKeyFromBase58(strings.TrimSpace(address))
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}
	return pub.String(), nil
}
