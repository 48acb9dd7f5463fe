// Package txsender prepares and submits native-coin transfers on EVM chains.
//
// Build sizes a transfer so that amount minus the estimated fee is sent,
// Send signs the prepared parameters locally and broadcasts them.
package txsender

import (
	"context"
	"errors"
	"math/big"
)

var (
	// ErrBuildFailed wraps every node failure while preparing a transaction.
	ErrBuildFailed = errors.New("failed to build transaction")

	// ErrSendFailed wraps every failure while signing or submitting a transaction.
	ErrSendFailed = errors.New("failed to send transaction")

	// ErrKeyMismatch is returned when the private key does not control the sender.
	ErrKeyMismatch = errors.New("private key does not match sender address")

	// ErrAmountBelowFee is returned when the amount cannot cover the estimated fee.
	ErrAmountBelowFee = errors.New("amount does not cover the network fee")
)

// Node is the part of an EVM JSON-RPC node used to build and send transfers.
type Node interface {
	GasPrice(ctx context.Context) (*big.Int, error)
	PendingNonce(ctx context.Context, address string) (uint64, error)
	EstimateGas(ctx context.Context, from, to string, value *big.Int) (uint64, error)
	ChainID(ctx context.Context) (*big.Int, error)
	SendRawTransaction(ctx context.Context, raw []byte) (string, error)
}

// Dialer returns a Node for endpoint.
type Dialer func(endpoint string) Node

// BuildRequest describes a transfer of Amount ether from From to To.
type BuildRequest struct {
	From     string `validate:"required,eth_addr"`
	To       string `validate:"required,eth_addr"`
	Endpoint string `validate:"required,url"`

	// Amount is a decimal ether amount, e.g. "0.25". The estimated fee is
	// taken out of it.
	Amount string `validate:"required"`

	// FeeMultiplier scales the estimated gas limit.
	FeeMultiplier uint64 `validate:"min=1"`

	// MaxFeePerGas and MaxPriorityFeePerGas, in wei, select an EIP-1559
	// transaction when both are set.
	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
}

// TransactionParams are the unsigned fields of a prepared transfer.
type TransactionParams struct {
	From     string
	To       string
	Value    *big.Int
	Gas      uint64
	GasPrice *big.Int
	Nonce    uint64

	MaxFeePerGas         *big.Int
	MaxPriorityFeePerGas *big.Int
}

// Dynamic reports whether the params describe an EIP-1559 transaction.
func (p TransactionParams) Dynamic() bool {
	return p.MaxFeePerGas != nil && p.MaxPriorityFeePerGas != nil
}

// Service builds and sends transfers.
type Service interface {
	Build(ctx context.Context, req BuildRequest) (TransactionParams, error)
	Send(ctx context.Context, params TransactionParams, privateKey, endpoint string) (string, error)
}

type service struct {
	dial Dialer
}

var _ Service = (*service)(nil)

// New returns a Service reaching nodes through dial.
func New(dial Dialer) *service {
	return &service{
		dial: dial,
	}
}
