package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/gabapcia/aiowallet/internal/pkg/logger"

	"github.com/ethereum/go-ethereum/accounts"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"
)

// LoginMessage returns the message signed when logging in at unixMilli.
func LoginMessage(unixMilli int64) string {
	return "Welcome to aiowallet! Sign in at " + strconv.FormatInt(unixMilli, 10)
}

// VerifySignature reports whether signature is a personal_sign signature
// of message made by address.
func VerifySignature(message, signature, address string) error {
	sig, err := hexutil.Decode(signature)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSignatureMismatch, err)
	}
	if len(sig) != crypto.SignatureLength {
		return fmt.Errorf("%w: signature is %d bytes", ErrSignatureMismatch, len(sig))
	}

	// Wallets return V as 27/28, SigToPub expects 0/1.
	if sig[crypto.RecoveryIDOffset] >= 27 {
		sig[crypto.RecoveryIDOffset] -= 27
	}

	pub, err := crypto.SigToPub(accounts.TextHash([]byte(message)), sig)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrSignatureMismatch, err)
	}

	if !common.IsHexAddress(address) || crypto.PubkeyToAddress(*pub) != common.HexToAddress(address) {
		return ErrSignatureMismatch
	}
	return nil
}

// Connect implements Service.
func (s *service) Connect(ctx context.Context) ([]string, error) {
	if s.provider == nil {
		return nil, ErrProviderMissing
	}

	addresses, err := s.provider.RequestAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("request accounts: %w", err)
	}
	if len(addresses) == 0 {
		return nil, ErrNoAccounts
	}

	ctx = logger.Derive(ctx, "account", addresses[0])

	message := LoginMessage(s.now().UnixMilli())
	signature, err := s.provider.PersonalSign(ctx, message, addresses[0])
	if err != nil {
		return nil, fmt.Errorf("sign login message: %w", err)
	}

	if err := VerifySignature(message, signature, addresses[0]); err != nil {
		logger.Warn(ctx, "login signature rejected", zap.Error(err))
		return nil, err
	}

	data, err := json.Marshal(addresses)
	if err != nil {
		return nil, err
	}

	if err := s.storage.SavePreference(ctx, AddressKey, string(data)); err != nil {
		return nil, err
	}

	logger.Info(ctx, "wallet connected", zap.Int("accounts", len(addresses)))
	return addresses, nil
}

// Addresses implements Service.
func (s *service) Addresses(ctx context.Context) ([]string, error) {
	raw, err := s.storage.LoadPreference(ctx, AddressKey)
	if errors.Is(err, ErrPreferenceNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, err
	}

	var addresses []string
	if err := json.Unmarshal([]byte(raw), &addresses); err != nil {
		logger.Warn(ctx, "stored wallet addresses are malformed, resetting", zap.Error(err))
		if err := s.storage.DeletePreference(ctx, AddressKey); err != nil {
			return nil, err
		}
		return []string{}, nil
	}

	if addresses == nil {
		addresses = []string{}
	}
	return addresses, nil
}

// Disconnect implements Service.
func (s *service) Disconnect(ctx context.Context) error {
	return s.storage.DeletePreference(ctx, AddressKey)
}
