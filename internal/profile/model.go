package profile

import (
	"time"

	"github.com/google/uuid"
)

// Profile is the locally stored record for an externally authenticated user.
// UserID is the identifier assigned by the identity provider; there is at
// most one profile per UserID.
type Profile struct {
	UserID    string
	Name      string
	Email     string
	School    string
	NetID     string
	PhotoID   *uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// RegisterInput captures caller-supplied fields for explicit registration.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	School   string
}

// UpdateInput is a partial profile update; nil fields are left untouched.
type UpdateInput struct {
	Name    *string
	Email   *string
	School  *string
	NetID   *string
	PhotoID *uuid.UUID
}
