package middleware

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/ezrapay/ezrapay/internal/auth"
)

// RequireSession returns a middleware that verifies the bearer session token
// and stores the authenticated user id in request locals. It replaces the
// unverified caller-identifier header the original design trusted.
func RequireSession(sessions *auth.Service) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := auth.BearerToken(c.Get(fiber.HeaderAuthorization))
		if token == "" {
			return fiber.NewError(http.StatusUnauthorized, "missing bearer token")
		}

		uid, err := sessions.Verify(c.UserContext(), token)
		if err != nil {
			if errors.Is(err, auth.ErrNoSession) {
				return fiber.NewError(http.StatusUnauthorized, "invalid or expired session")
			}
			return fiber.NewError(http.StatusInternalServerError, "session verification failed")
		}

		c.Locals("user_id", uid)
		return c.Next()
	}
}
