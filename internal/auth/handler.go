package auth

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// BearerToken extracts the token from an Authorization header value, or ""
// when the header does not carry one.
func BearerToken(authz string) string {
	if !strings.HasPrefix(strings.ToLower(authz), "bearer ") {
		return ""
	}
	return strings.TrimSpace(authz[len("Bearer "):])
}

// Handler exposes session endpoints.
type Handler struct {
	sessions *Service
}

// NewHandler constructs a session HTTP handler.
func NewHandler(sessions *Service) *Handler {
	return &Handler{sessions: sessions}
}

// Logout revokes the presented session token.
func (h *Handler) Logout(c *fiber.Ctx) error {
	token := BearerToken(c.Get(fiber.HeaderAuthorization))

	if err := h.sessions.Revoke(c.UserContext(), token); err != nil {
		if errors.Is(err, ErrNoSession) {
			return fiber.NewError(http.StatusBadRequest, ErrNoSession.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, "failed to end session")
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "signed out successfully",
	})
}
