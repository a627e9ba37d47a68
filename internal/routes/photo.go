package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/ezrapay/ezrapay/internal/photo"
)

// RegisterPhotoRoutes wires photo upload (session-guarded) and retrieval.
// Retrieval requires only possession of the photo id.
func RegisterPhotoRoutes(r fiber.Router, h *photo.Handler, sessionGuard fiber.Handler) {
	r.Post("/upload", sessionGuard, h.Upload)
	r.Get("/photo/:id", h.Fetch)
}
