package token

import (
	"context"
	"log/slog"

	"github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
)

// LoggerMinter logs mint requests instead of submitting them. It stands in
// for the chain when no RPC endpoint is configured.
type LoggerMinter struct {
	logger *slog.Logger
}

// NewLoggerMinter builds a minter that only logs.
func NewLoggerMinter(logger *slog.Logger) *LoggerMinter {
	return &LoggerMinter{logger: logger}
}

// Mint validates inputs, logs the request, and returns a placeholder hash.
func (m *LoggerMinter) Mint(_ context.Context, recipient string, amount int64) (string, error) {
	if !common.IsHexAddress(recipient) {
		return "", ErrBadRecipient
	}
	if amount <= 0 {
		return "", ErrBadAmount
	}

	hash := "dev-" + uuid.NewString()
	m.logger.Info("mint request (not submitted)",
		slog.String("recipient", recipient),
		slog.Int64("amount", amount),
		slog.String("tx_hash", hash),
	)
	return hash, nil
}
