package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ezrapay/ezrapay/internal/auth"
	"github.com/ezrapay/ezrapay/internal/profile"
)

// RegisterAuthRoutes wires registration, login, and logout. Logout handles
// its own session check so a dead session reports a session error rather
// than a generic unauthorized.
func RegisterAuthRoutes(r fiber.Router, ph *profile.Handler, ah *auth.Handler, rateLimiter fiber.Handler) {
	r.Post("/register", ph.Register)
	if rateLimiter != nil {
		r.Post("/login", rateLimiter, ph.Login)
	} else {
		r.Post("/login", ph.Login)
	}
	r.Post("/logout", ah.Logout)
}
