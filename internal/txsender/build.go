package txsender

import (
	"context"
	"fmt"
	"math/big"

	"github.com/gabapcia/aiowallet/internal/pkg/logger"
	"github.com/gabapcia/aiowallet/internal/pkg/units"
	"github.com/gabapcia/aiowallet/internal/pkg/validator"

	"github.com/holiman/uint256"
	"go.uber.org/zap"
)

// Build implements Service.
func (s *service) Build(ctx context.Context, req BuildRequest) (TransactionParams, error) {
	if err := validator.Validate(req); err != nil {
		return TransactionParams{}, err
	}

	amount, err := units.ParseUnits(req.Amount, units.EtherDecimals)
	if err != nil {
		return TransactionParams{}, err
	}

	ctx = logger.Derive(ctx, "from", req.From, "to", req.To)
	node := s.dial(req.Endpoint)

	gasPrice, err := node.GasPrice(ctx)
	if err != nil {
		return TransactionParams{}, buildError(ctx, "gas price", err)
	}

	nonce, err := node.PendingNonce(ctx, req.From)
	if err != nil {
		return TransactionParams{}, buildError(ctx, "nonce", err)
	}

	estimate, err := node.EstimateGas(ctx, req.From, req.To, amount)
	if err != nil {
		return TransactionParams{}, buildError(ctx, "gas estimate", err)
	}

	value, err := valueAfterFee(amount, gasPrice, estimate)
	if err != nil {
		return TransactionParams{}, err
	}

	gas, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(estimate), uint256.NewInt(req.FeeMultiplier))
	if overflow || !gas.IsUint64() {
		return TransactionParams{}, fmt.Errorf("%w: gas limit overflows", ErrBuildFailed)
	}

	params := TransactionParams{
		From:     req.From,
		To:       req.To,
		Value:    value.ToBig(),
		Gas:      gas.Uint64(),
		GasPrice: gasPrice,
		Nonce:    nonce,
	}

	if req.MaxFeePerGas != nil && req.MaxPriorityFeePerGas != nil {
		params.MaxFeePerGas = req.MaxFeePerGas
		params.MaxPriorityFeePerGas = req.MaxPriorityFeePerGas
	}

	logger.Debug(ctx, "transaction built",
		zap.Uint64("nonce", nonce),
		zap.Uint64("gas", params.Gas),
		zap.Stringer("value", params.Value),
	)

	return params, nil
}

func buildError(ctx context.Context, step string, err error) error {
	logger.Warn(ctx, "transaction build step failed", zap.String("step", step), zap.Error(err))
	return fmt.Errorf("%w: %s: %w", ErrBuildFailed, step, err)
}

// valueAfterFee returns amount - estimate*gasPrice, all in wei.
func valueAfterFee(amount, gasPrice *big.Int, estimate uint64) (*uint256.Int, error) {
	amt, overflow := uint256.FromBig(amount)
	if overflow || amount.Sign() < 0 {
		return nil, fmt.Errorf("%w: amount out of range", ErrBuildFailed)
	}

	price, overflow := uint256.FromBig(gasPrice)
	if overflow || gasPrice.Sign() < 0 {
		return nil, fmt.Errorf("%w: gas price out of range", ErrBuildFailed)
	}

	fee, overflow := new(uint256.Int).MulOverflow(uint256.NewInt(estimate), price)
	if overflow {
		return nil, fmt.Errorf("%w: fee overflows", ErrBuildFailed)
	}

	value, underflow := new(uint256.Int).SubOverflow(amt, fee)
	if underflow {
		return nil, fmt.Errorf("%w: amount %s wei, fee %s wei", ErrAmountBelowFee, amt.Dec(), fee.Dec())
	}

	return value, nil
}
