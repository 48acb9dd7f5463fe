package txsender

import (
	"context"
	"fmt"

	"github.com/gabapcia/aiowallet/internal/pkg/evmkey"
	"github.com/gabapcia/aiowallet/internal/pkg/logger"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

// Send implements Service. The transaction is submitted exactly once.
func (s *service) Send(ctx context.Context, params TransactionParams, privateKey, endpoint string) (string, error) {
	key, err := evmkey.Parse(privateKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	from := crypto.PubkeyToAddress(key.PublicKey)
	if !common.IsHexAddress(params.From) || common.HexToAddress(params.From) != from {
		return "", fmt.Errorf("%w: %w: key controls %s", ErrSendFailed, ErrKeyMismatch, from.Hex())
	}

	if !common.IsHexAddress(params.To) {
		return "", fmt.Errorf("%w: invalid recipient %q", ErrSendFailed, params.To)
	}
	to := common.HexToAddress(params.To)

	ctx = logger.Derive(ctx, "from", from.Hex(), "to", to.Hex())
	node := s.dial(endpoint)

	chainID, err := node.ChainID(ctx)
	if err != nil {
		return "", fmt.Errorf("%w: chain id: %w", ErrSendFailed, err)
	}

	var data types.TxData
	if params.Dynamic() {
		data = &types.DynamicFeeTx{
			ChainID:   chainID,
			Nonce:     params.Nonce,
			GasTipCap: params.MaxPriorityFeePerGas,
			GasFeeCap: params.MaxFeePerGas,
			Gas:       params.Gas,
			To:        &to,
			Value:     params.Value,
		}
	} else {
		data = &types.LegacyTx{
			Nonce:    params.Nonce,
			GasPrice: params.GasPrice,
			Gas:      params.Gas,
			To:       &to,
			Value:    params.Value,
		}
	}

	tx, err := types.SignNewTx(key, types.LatestSignerForChainID(chainID), data)
	if err != nil {
		return "", fmt.Errorf("%w: sign: %w", ErrSendFailed, err)
	}

	raw, err := tx.MarshalBinary()
	if err != nil {
		return "", fmt.Errorf("%w: encode: %w", ErrSendFailed, err)
	}

	hash, err := node.SendRawTransaction(ctx, raw)
	if err != nil {
		logger.Error(ctx, "transaction rejected", zap.Error(err))
		return "", fmt.Errorf("%w: %w", ErrSendFailed, err)
	}

	logger.Info(ctx, "transaction submitted", zap.String("hash", hash), zap.Uint64("nonce", params.Nonce))
	return hash, nil
}
