package identity

import (
	"context"
	"strings"
	"sync"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Provider-side minimum, independent of the local password policy.
const providerMinPassword = 6

type memoryAccount struct {
	id           string
	email        string
	displayName  string
	passwordHash []byte
}

type memoryProvider struct {
	mu       sync.RWMutex
	accounts map[string]memoryAccount
}

// NewMemoryProvider builds an in-process identity provider for development and
// tests. It mirrors the external provider's contract: opaque stable ids,
// duplicate-email rejection, and its own (weaker) password rule.
func NewMemoryProvider() Provider {
	return &memoryProvider{accounts: make(map[string]memoryAccount)}
}

func (p *memoryProvider) SignUp(_ context.Context, email, password string) (Account, error) {
	if !strings.Contains(email, "@") {
		return Account{}, ErrInvalidEmail
	}
	if len(password) < providerMinPassword {
		return Account{}, ErrWeakPassword
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return Account{}, err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	if _, exists := p.accounts[email]; exists {
		return Account{}, ErrEmailExists
	}

	acct := memoryAccount{id: uuid.NewString(), email: email, passwordHash: hash}
	p.accounts[email] = acct

	return Account{ID: acct.id, Email: acct.email}, nil
}

func (p *memoryProvider) SignIn(_ context.Context, email, password string) (Account, error) {
	p.mu.RLock()
	acct, ok := p.accounts[email]
	p.mu.RUnlock()
	if !ok {
		return Account{}, ErrInvalidCredentials
	}
	if err := bcrypt.CompareHashAndPassword(acct.passwordHash, []byte(password)); err != nil {
		return Account{}, ErrInvalidCredentials
	}
	return Account{ID: acct.id, Email: acct.email, DisplayName: acct.displayName}, nil
}
