// Package units converts between integer base units (wei, lamports) and
// human-readable decimal strings without going through floating point.
package units

import (
	"errors"
	"fmt"
	"math/big"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

const (
	// EtherDecimals is the number of decimals between wei and ether.
	EtherDecimals = 18
	// GweiDecimals is the number of decimals between wei and gwei.
	GweiDecimals = 9
	// SOLDecimals is the number of decimals between lamports and SOL.
	SOLDecimals = 9
)

// ErrInvalidAmount is returned by ParseUnits for malformed or negative input.
var ErrInvalidAmount = errors.New("invalid decimal amount")

// plainDecimal accepts unsigned amounts without exponent: "1", "1.5", ".5", "1.".
var plainDecimal = regexp.MustCompile(`^(\d+\.?\d*|\.\d+)$`)

// FormatUnits renders value/10^decimals with exactly precision fractional
// digits, rounding half away from zero. A nil value formats as zero.
//
//	FormatUnits(big.NewInt(1_234_500_000), 9, 3) == "1.235"
func FormatUnits(value *big.Int, decimals, precision int) string {
	if value == nil {
		value = new(big.Int)
	}
	return decimal.NewFromBigInt(value, -int32(decimals)).StringFixed(int32(precision))
}

// ParseUnits converts a non-negative decimal string to base units. Digits
// past decimals are rejected rather than truncated.
//
//	ParseUnits("0.5", 18) == 500000000000000000
func ParseUnits(s string, decimals int) (*big.Int, error) {
	s = strings.TrimSpace(s)
	if !plainDecimal.MatchString(s) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}

	if _, frac, _ := strings.Cut(s, "."); len(frac) > decimals {
		return nil, fmt.Errorf("%w: %q has more than %d decimals", ErrInvalidAmount, s, decimals)
	}

	normalized := strings.TrimSuffix(s, ".")
	if strings.HasPrefix(normalized, ".") {
		normalized = "0" + normalized
	}

	d, err := decimal.NewFromString(normalized)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}
	return d.Shift(int32(decimals)).BigInt(), nil
}
