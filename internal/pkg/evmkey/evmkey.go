// Package evmkey decodes secp256k1 private keys written as hex.
package evmkey

import (
	"crypto/ecdsa"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
)

// ErrMalformed is returned for keys that are not 32-byte hex scalars.
var ErrMalformed = errors.New("malformed evm private key")

// Parse decodes a hex private key, with or without the 0x prefix.
//
//	key, err := evmkey.Parse("0x4c0883a6...")
func Parse(s string) (*ecdsa.PrivateKey, error) {
	s = strings.TrimSpace(s)
	if len(s) >= 2 && (s[:2] == "0x" || s[:2] == "0X") {
		s = s[2:]
	}

	key, err := crypto.HexToECDSA(s)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMalformed, err)
	}
	return key, nil
}

// Address returns the EIP-55 address controlled by key.
func Address(key *ecdsa.PrivateKey) string {
	return crypto.PubkeyToAddress(key.PublicKey).Hex()
}
