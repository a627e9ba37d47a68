package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ezrapay/ezrapay/internal/token"
)

// RegisterTokenRoutes wires token minting behind session auth; the mint call
// spends the server's signing key.
func RegisterTokenRoutes(r fiber.Router, h *token.Handler, sessionGuard fiber.Handler) {
	r.Post("/mint", sessionGuard, h.Mint)
}
