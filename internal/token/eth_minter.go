package token

import (
	"context"
	"crypto/ecdsa"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/accounts/abi/bind"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
)

// Minimal ABI for the fixed mint entrypoint.
const mintABI = `[{"type":"function","name":"mint","stateMutability":"nonpayable","inputs":[{"name":"to","type":"address"},{"name":"amount","type":"uint256"}],"outputs":[]}]`

// EthMinter submits mint transactions to the token contract over JSON-RPC,
// signing with the configured server key.
type EthMinter struct {
	contract *bind.BoundContract
	key      *ecdsa.PrivateKey
	chainID  *big.Int
}

// NewEthMinter dials the RPC endpoint and binds the token contract.
func NewEthMinter(ctx context.Context, rpcURL, contractAddr, signerKeyHex string) (*EthMinter, error) {
	if !common.IsHexAddress(contractAddr) {
		return nil, fmt.Errorf("invalid token contract address %q", contractAddr)
	}

	key, err := crypto.HexToECDSA(strings.TrimPrefix(signerKeyHex, "0x"))
	if err != nil {
		return nil, fmt.Errorf("parse signer key: %w", err)
	}

	client, err := ethclient.DialContext(ctx, rpcURL)
	if err != nil {
		return nil, fmt.Errorf("dial rpc: %w", err)
	}

	chainID, err := client.ChainID(ctx)
	if err != nil {
		return nil, fmt.Errorf("chain id: %w", err)
	}

	parsed, err := abi.JSON(strings.NewReader(mintABI))
	if err != nil {
		return nil, fmt.Errorf("parse abi: %w", err)
	}

	contract := bind.NewBoundContract(common.HexToAddress(contractAddr), parsed, client, client, client)

	return &EthMinter{contract: contract, key: key, chainID: chainID}, nil
}

// Mint calls mint(recipient, amount) with 18-decimal scaling.
func (m *EthMinter) Mint(ctx context.Context, recipient string, amount int64) (string, error) {
	if !common.IsHexAddress(recipient) {
		return "", ErrBadRecipient
	}
	if amount <= 0 {
		return "", ErrBadAmount
	}

	opts, err := bind.NewKeyedTransactorWithChainID(m.key, m.chainID)
	if err != nil {
		return "", err
	}
	opts.Context = ctx

	scaled := new(big.Int).Mul(big.NewInt(amount), tokenDecimals)
	tx, err := m.contract.Transact(opts, "mint", common.HexToAddress(recipient), scaled)
	if err != nil {
		return "", fmt.Errorf("submit mint: %w", err)
	}

	return tx.Hash().Hex(), nil
}
