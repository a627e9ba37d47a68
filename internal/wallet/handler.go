package wallet

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes wallet endpoints.
type Handler struct {
	svc *Service
}

// NewHandler constructs a wallet HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Create provisions (or returns) the authenticated user's wallet. Only the
// public key is serialized.
func (h *Handler) Create(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)

	w, err := h.svc.Provision(c.UserContext(), uid)
	if err != nil {
		if errors.Is(err, ErrNoOwner) {
			return fiber.NewError(http.StatusUnauthorized, "authentication required")
		}
		return fiber.NewError(http.StatusInternalServerError, "wallet provisioning failed")
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"wallet":  fiber.Map{"publicKey": w.PublicKey},
	})
}
