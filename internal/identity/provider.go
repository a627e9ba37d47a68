// Package identity wraps the external identity provider that owns account
// creation and credential verification. The provider assigns the stable
// external identifier used as the profile primary key; nothing in this
// package touches local storage.
package identity

import "context"

// Account is the provider's view of an authenticated user.
type Account struct {
	// ID is the opaque stable identifier assigned by the provider.
	ID          string
	Email       string
	DisplayName string
}

// Closed set of gateway errors. Raw provider messages are mapped onto these
// and never forwarded to clients.
var (
	ErrEmailExists        = Error("account with this email already exists")
	ErrInvalidCredentials = Error("invalid email or password")
	ErrWeakPassword       = Error("password rejected by identity provider")
	ErrInvalidEmail       = Error("malformed email address")
	ErrUnavailable        = Error("identity provider unavailable")
)

// Error is a sentinel gateway error.
type Error string

func (e Error) Error() string { return string(e) }

// Provider performs account operations against the identity service. Both
// calls round-trip to the provider; neither touches the profile store.
type Provider interface {
	// SignUp creates an account and returns its stable identifier.
	SignUp(ctx context.Context, email, password string) (Account, error)
	// SignIn verifies credentials and returns the same identifier SignUp
	// produced for the account.
	SignIn(ctx context.Context, email, password string) (Account, error)
}
