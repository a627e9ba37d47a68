package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ezrapay/ezrapay/internal/wallet"
)

// RegisterWalletRoutes wires wallet provisioning behind session auth.
func RegisterWalletRoutes(r fiber.Router, h *wallet.Handler, sessionGuard fiber.Handler) {
	r.Post("/wallet", sessionGuard, h.Create)
}
