// Package token submits mint calls for the campus token contract. The
// contract itself is external and fixed; this is only the client-side call.
package token

import (
	"context"
	"errors"
	"math/big"
)

var (
	// ErrBadRecipient indicates the recipient is not a valid ledger address.
	ErrBadRecipient = errors.New("invalid recipient address")
	// ErrBadAmount indicates a non-positive mint amount.
	ErrBadAmount = errors.New("amount must be positive")
)

// tokenDecimals scales whole-token amounts to the contract's base unit.
var tokenDecimals = new(big.Int).Exp(big.NewInt(10), big.NewInt(18), nil)

// Minter submits a mint of whole tokens to the recipient and returns the
// transaction hash.
type Minter interface {
	Mint(ctx context.Context, recipient string, amount int64) (string, error)
}
