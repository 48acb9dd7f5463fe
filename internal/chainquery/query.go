package chainquery

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/gabapcia/aiowallet/internal/pkg/logger"
	"github.com/gabapcia/aiowallet/internal/pkg/units"
	"github.com/gabapcia/aiowallet/internal/wallet"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
)

func decimalsOf(chain wallet.Chain) int {
	if chain == wallet.Solana {
		return units.SOLDecimals
	}
	return units.EtherDecimals
}

func fail(span trace.Span, err error) {
	span.RecordError(err)
	span.SetStatus(codes.Error, err.Error())
}

// GetBalance implements Service.
func (s *service) GetBalance(ctx context.Context, chain wallet.Chain, address, endpoint string) (Balance, error) {
	ctx, span := s.tracer.Start(ctx, "chainquery.GetBalance", trace.WithAttributes(
		attribute.String("chain", chain.String()),
		attribute.String("address", address),
	))
	defer span.End()

	unavailable := Balance{Display: Unavailable}

	if strings.TrimSpace(endpoint) == "" {
		fail(span, ErrEndpointRequired)
		return unavailable, ErrEndpointRequired
	}

	dial, ok := s.dialers[chain]
	if !ok {
		err := fmt.Errorf("%w: %q", wallet.ErrUnsupportedChain, chain.String())
		fail(span, err)
		return unavailable, err
	}

	raw, err := dial(endpoint).Balance(ctx, address)
	if err != nil {
		err = fmt.Errorf("%w: balance of %s: %w", ErrQueryFailed, address, err)
		fail(span, err)
		logger.Warn(ctx, "balance query failed", zap.Stringer("chain", chain), zap.String("address", address), zap.Error(err))
		return unavailable, err
	}

	return Balance{
		Raw:     raw,
		Display: units.FormatUnits(raw, decimalsOf(chain), s.precision),
	}, nil
}

// GetGasPrice implements Service.
func (s *service) GetGasPrice(ctx context.Context, endpoint string) (GasPrice, error) {
	ctx, span := s.tracer.Start(ctx, "chainquery.GetGasPrice")
	defer span.End()

	if strings.TrimSpace(endpoint) == "" || s.gasDialer == nil {
		return GasPrice{
			Wei:     new(big.Int),
			Display: units.FormatUnits(nil, units.GweiDecimals, s.precision),
		}, nil
	}

	wei, err := s.gasDialer(endpoint).GasPrice(ctx)
	if err != nil {
		err = fmt.Errorf("%w: gas price: %w", ErrQueryFailed, err)
		fail(span, err)
		logger.Warn(ctx, "gas price query failed", zap.Error(err))
		return GasPrice{Display: Unavailable}, err
	}

	return GasPrice{
		Wei:     wei,
		Display: units.FormatUnits(wei, units.GweiDecimals, s.precision),
	}, nil
}
