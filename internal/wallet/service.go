package wallet

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrNoOwner indicates provisioning was attempted without an authenticated owner.
var ErrNoOwner = errors.New("owner id is required")

// Service provisions custodial wallets, one per owner.
type Service struct {
	repo Repository
}

// NewService builds a wallet service instance.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Provision returns the owner's wallet, generating and persisting a fresh
// keypair on first call. Repeat calls return the existing record unchanged.
func (s *Service) Provision(ctx context.Context, ownerID string) (Wallet, error) {
	if ownerID == "" {
		return Wallet{}, ErrNoOwner
	}

	if w, err := s.repo.GetByOwner(ctx, ownerID); err == nil {
		return w, nil
	} else if !errors.Is(err, ErrNotFound) {
		return Wallet{}, err
	}

	pub, priv, err := newKeypair()
	if err != nil {
		return Wallet{}, err
	}

	w := Wallet{
		ID:         uuid.NewString(),
		OwnerID:    ownerID,
		PublicKey:  pub,
		PrivateKey: priv,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, w); err != nil {
		// A concurrent call won the insert; the generated keypair is discarded.
		if errors.Is(err, ErrOwnerExists) {
			return s.repo.GetByOwner(ctx, ownerID)
		}
		return Wallet{}, err
	}

	return w, nil
}

// GetByOwner retrieves the wallet provisioned for an owner.
func (s *Service) GetByOwner(ctx context.Context, ownerID string) (Wallet, error) {
	return s.repo.GetByOwner(ctx, ownerID)
}
