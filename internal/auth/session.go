// Package auth issues and verifies the session tokens that replace raw
// caller-identifier headers on authenticated endpoints.
package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const revokedKeyPrefix = "session:revoked:"

var (
	// ErrNoSession indicates the presented token is absent, invalid, expired,
	// or already revoked.
	ErrNoSession = errors.New("no active session")
)

// Service mints HS256 session tokens and tracks revocations in Redis.
type Service struct {
	secret []byte
	ttl    time.Duration
	cache  *redis.Client
}

// NewService builds a session service. A nil cache disables revocation
// tracking (logout still fails closed for invalid tokens, but revoked
// tokens cannot be remembered), which is only acceptable in tests.
func NewService(secret string, ttl time.Duration, cache *redis.Client) *Service {
	return &Service{secret: []byte(secret), ttl: ttl, cache: cache}
}

// Issue mints a session token for the given external user id.
func (s *Service) Issue(userID string) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Subject:   userID,
		ID:        uuid.NewString(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// Verify checks signature, expiry, and the revocation denylist, returning the
// authenticated user id.
func (s *Service) Verify(ctx context.Context, tokenStr string) (string, error) {
	claims, err := s.parse(ctx, tokenStr)
	if err != nil {
		return "", err
	}
	return claims.Subject, nil
}

// Revoke invalidates the presented session token until its natural expiry.
func (s *Service) Revoke(ctx context.Context, tokenStr string) error {
	claims, err := s.parse(ctx, tokenStr)
	if err != nil {
		return err
	}

	remaining := time.Until(claims.ExpiresAt.Time)
	if remaining <= 0 {
		return ErrNoSession
	}

	if s.cache == nil {
		return nil
	}
	if err := s.cache.Set(ctx, revokedKeyPrefix+claims.ID, "1", remaining).Err(); err != nil {
		return fmt.Errorf("record revocation: %w", err)
	}
	return nil
}

func (s *Service) parse(ctx context.Context, tokenStr string) (*jwt.RegisteredClaims, error) {
	if tokenStr == "" {
		return nil, ErrNoSession
	}

	claims := &jwt.RegisteredClaims{}
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, ErrNoSession
	}
	if claims.Subject == "" || claims.ExpiresAt == nil {
		return nil, ErrNoSession
	}

	if s.cache != nil {
		revoked, err := s.cache.Exists(ctx, revokedKeyPrefix+claims.ID).Result()
		if err != nil {
			return nil, fmt.Errorf("check revocation: %w", err)
		}
		if revoked > 0 {
			return nil, ErrNoSession
		}
	}

	return claims, nil
}
