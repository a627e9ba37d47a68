package photo

import (
	"errors"
	"io"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Handler exposes photo upload and retrieval endpoints.
type Handler struct {
	svc *Service
}

// NewHandler constructs a photo HTTP handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// Upload stores the multipart "file" part for the authenticated user.
func (h *Handler) Upload(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return fiber.NewError(http.StatusUnauthorized, "authentication required")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, ErrEmptyData.Error())
	}

	f, err := fileHeader.Open()
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "unreadable file upload")
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, "unreadable file upload")
	}

	id, err := h.svc.Upload(c.UserContext(), uid, data, fileHeader.Header.Get("Content-Type"))
	if err != nil {
		switch {
		case errors.Is(err, ErrEmptyData):
			return fiber.NewError(http.StatusBadRequest, err.Error())
		case errors.Is(err, ErrNoOwner):
			return fiber.NewError(http.StatusUnauthorized, "authentication required")
		default:
			return fiber.NewError(http.StatusInternalServerError, "failed to store photo")
		}
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"success": true, "photoId": id})
}

// Fetch streams a stored photo with its original content type. Possession of
// the identifier is the only requirement.
func (h *Handler) Fetch(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(http.StatusNotFound, ErrNotFound.Error())
	}

	p, err := h.svc.Fetch(c.UserContext(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, "failed to fetch photo")
	}

	c.Set(fiber.HeaderContentType, p.ContentType)
	return c.Status(http.StatusOK).Send(p.Data)
}
