package types

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// Hex is an Ethereum JSON-RPC quantity: a "0x"-prefixed, base-16 encoded
// unsigned integer (e.g., "0x1a"). Values routinely exceed 64 bits (wei
// balances), so conversions go through math/big.
type Hex string

// HexFromBig encodes a non-negative integer as a quantity. A nil value
// encodes as "0x0".
func HexFromBig(v *big.Int) Hex {
	if v == nil {
		return "0x0"
	}
	return Hex("0x" + v.Text(16))
}

// HexFromUint64 encodes v as a quantity.
func HexFromUint64(v uint64) Hex {
	return Hex(fmt.Sprintf("0x%x", v))
}

func parseHex(s string) (*big.Int, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return nil, fmt.Errorf("hex string must start with 0x")
	}

	digits := s[2:]
	if digits == "" {
		return nil, fmt.Errorf("invalid hexadecimal value: empty quantity")
	}

	v, ok := new(big.Int).SetString(digits, 16)
	if !ok || v.Sign() < 0 {
		return nil, fmt.Errorf("invalid hexadecimal value: %q", s)
	}

	return v, nil
}

// MarshalJSON encodes the Hex as a JSON string.
func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(h))
}

// UnmarshalJSON parses and validates a JSON-encoded quantity.
func (h *Hex) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("invalid hex string: %w", err)
	}

	if _, err := parseHex(s); err != nil {
		return err
	}

	*h = Hex(s)
	return nil
}

// Big returns the decoded value. Malformed quantities decode as zero.
func (h Hex) Big() *big.Int {
	v, err := parseHex(string(h))
	if err != nil {
		return new(big.Int)
	}
	return v
}

// Uint64 returns the decoded value truncated to 64 bits. Malformed
// quantities decode as zero.
func (h Hex) Uint64() uint64 {
	return h.Big().Uint64()
}
