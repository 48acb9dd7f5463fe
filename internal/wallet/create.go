package wallet

import (
	"context"
	"fmt"

	"github.com/gabapcia/aiowallet/internal/pkg/logger"
	"github.com/gabapcia/aiowallet/internal/pkg/validator"

	"go.uber.org/zap"
)

// MaxBatchSize bounds the number of keypairs generated by one CreateBatch call.
const MaxBatchSize = 1000

type createBatchInput struct {
	Group string `validate:"required"`
	Count int    `validate:"min=1,max=1000"`
}

func (s *service) keyring(chain Chain) (Keyring, error) {
	kr, ok := s.keyrings[chain]
	if !ok || kr == nil {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedChain, string(chain))
	}
	return kr, nil
}

// CreateBatch implements Service.
func (s *service) CreateBatch(ctx context.Context, group string, count int, chain Chain) ([]Record, error) {
	if err := validator.Validate(createBatchInput{Group: group, Count: count}); err != nil {
		return nil, err
	}

	kr, err := s.keyring(chain)
	if err != nil {
		return nil, err
	}

	records := make([]Record, 0, count)
	for range count {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		address, privateKey, err := kr.Generate()
		if err != nil {
			logger.Error(ctx, "failed to generate keypair", zap.Stringer("chain", chain), zap.Error(err))
			return nil, fmt.Errorf("generate %s keypair: %w", chain, err)
		}

		records = append(records, Record{
			Group:      group,
			Address:    address,
			PrivateKey: privateKey,
		})
	}

	logger.Debug(ctx, "generated wallets", zap.Stringer("chain", chain), zap.String("group", group), zap.Int("count", count))
	return records, nil
}

// DeriveAddress implements Service.
func (s *service) DeriveAddress(chain Chain, privateKey string) (address string, err error) {
	kr, err := s.keyring(chain)
	if err != nil {
		return "", err
	}

	defer func() {
		if r := recover(); r != nil {
			address, err = "", fmt.Errorf("%w: %v", ErrMalformedKey, r)
		}
	}()

	address, err = kr.Derive(privateKey)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrMalformedKey, err)
	}

	return address, nil
}
