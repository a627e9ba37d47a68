package profile

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/ezrapay/ezrapay/internal/identity"
	"github.com/ezrapay/ezrapay/internal/password"
)

// Fallback display name when the provider holds none for a lazily created profile.
const fallbackName = "Unknown"

// ErrInvariant indicates an unexpected duplicate profile during explicit
// registration, which provider-side uniqueness should make impossible.
var ErrInvariant = errors.New("profile already exists for newly registered account")

// PolicyError reports a password that failed the local policy, carrying the
// per-predicate breakdown for the client.
type PolicyError struct {
	Result password.Result
}

func (e *PolicyError) Error() string { return "password does not meet requirements" }

// Service keeps the local profile store consistent with the externally
// authenticated identity. Every store write is gated by a successful
// provider call in the same request.
type Service struct {
	provider      identity.Provider
	repo          Repository
	defaultSchool string
}

// NewService builds the profile sync service.
func NewService(provider identity.Provider, repo Repository, defaultSchool string) *Service {
	return &Service{provider: provider, repo: repo, defaultSchool: defaultSchool}
}

// Register validates the password locally, creates the provider account, and
// synchronously creates the profile with the caller-supplied fields.
func (s *Service) Register(ctx context.Context, input RegisterInput) (Profile, error) {
	if res := password.Validate(input.Password); !res.Valid {
		return Profile{}, &PolicyError{Result: res}
	}

	acct, err := s.provider.SignUp(ctx, input.Email, input.Password)
	if err != nil {
		return Profile{}, err
	}

	now := time.Now().UTC()
	p := Profile{
		UserID:    acct.ID,
		Name:      input.Name,
		Email:     input.Email,
		School:    input.School,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			return Profile{}, fmt.Errorf("%w: user %s", ErrInvariant, acct.ID)
		}
		return Profile{}, err
	}

	return p, nil
}

// Login authenticates against the provider and lazily creates a profile with
// best-effort defaults on first sight. An existing profile is left untouched,
// so repeated logins are idempotent.
func (s *Service) Login(ctx context.Context, email, pass string) (Profile, error) {
	acct, err := s.provider.SignIn(ctx, email, pass)
	if err != nil {
		return Profile{}, err
	}

	p, err := s.repo.Get(ctx, acct.ID)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return Profile{}, err
	}

	name := acct.DisplayName
	if name == "" {
		name = fallbackName
	}
	now := time.Now().UTC()
	p = Profile{
		UserID:    acct.ID,
		Name:      name,
		Email:     acct.Email,
		School:    s.defaultSchool,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := s.repo.Create(ctx, p); err != nil {
		// A concurrent first login won the insert; its row is authoritative.
		if errors.Is(err, ErrAlreadyExists) {
			return s.repo.Get(ctx, acct.ID)
		}
		return Profile{}, err
	}

	return p, nil
}

// Update applies a partial update to an existing profile.
func (s *Service) Update(ctx context.Context, userID string, input UpdateInput) error {
	return s.repo.Update(ctx, userID, input)
}

// Fetch returns the profile for the given external user id.
func (s *Service) Fetch(ctx context.Context, userID string) (Profile, error) {
	return s.repo.Get(ctx, userID)
}
