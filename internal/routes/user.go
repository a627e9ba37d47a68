package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ezrapay/ezrapay/internal/profile"
)

// RegisterUserRoutes wires profile read/update endpoints behind session auth.
func RegisterUserRoutes(r fiber.Router, h *profile.Handler, sessionGuard fiber.Handler) {
	r.Post("/userinfo", sessionGuard, h.Userinfo)
	r.Post("/update-user", sessionGuard, h.UpdateUser)
}
