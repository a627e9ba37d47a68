package profile

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ezrapay/ezrapay/internal/auth"
	"github.com/ezrapay/ezrapay/internal/identity"
)

// Handler exposes registration, login, and profile endpoints.
type Handler struct {
	svc      *Service
	sessions *auth.Service
}

// NewHandler constructs a profile HTTP handler.
func NewHandler(svc *Service, sessions *auth.Service) *Handler {
	return &Handler{svc: svc, sessions: sessions}
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	School   string `json:"school"`
}

// Register validates the password, creates the provider account, and stores
// the profile, returning the new user id with a session token.
func (h *Handler) Register(c *fiber.Ctx) error {
	var req registerRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	p, err := h.svc.Register(c.UserContext(), RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		Name:     req.Name,
		School:   req.School,
	})
	if err != nil {
		var policyErr *PolicyError
		if errors.As(err, &policyErr) {
			return c.Status(http.StatusBadRequest).JSON(fiber.Map{
				"success":      false,
				"error":        policyErr.Error(),
				"requirements": policyErr.Result.Requirements,
			})
		}
		return providerError(err)
	}

	token, err := h.sessions.Issue(p.UserID)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "failed to start session")
	}

	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"success": true,
		"userId":  p.UserID,
		"token":   token,
	})
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login authenticates against the provider, lazily creating the profile, and
// returns a session token.
func (h *Handler) Login(c *fiber.Ctx) error {
	var req loginRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	p, err := h.svc.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return providerError(err)
	}

	token, err := h.sessions.Issue(p.UserID)
	if err != nil {
		return fiber.NewError(http.StatusInternalServerError, "failed to start session")
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"user":    p.UserID,
		"token":   token,
	})
}

// Userinfo returns the authenticated user's stored profile.
func (h *Handler) Userinfo(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}

	p, err := h.svc.Fetch(c.UserContext(), uid)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, "user not found")
		}
		return fiber.NewError(http.StatusInternalServerError, "failed to fetch profile")
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{
		"success": true,
		"name":    p.Name,
		"email":   p.Email,
		"school":  p.School,
		"netId":   p.NetID,
		"photo":   p.PhotoID,
	})
}

type updateRequest struct {
	Name   *string    `json:"name"`
	Email  *string    `json:"email"`
	School *string    `json:"school"`
	NetID  *string    `json:"netId"`
	Photo  *uuid.UUID `json:"photo"`
}

// UpdateUser applies a partial update to the authenticated user's profile.
func (h *Handler) UpdateUser(c *fiber.Ctx) error {
	uid, _ := c.Locals("user_id").(string)
	if uid == "" {
		return fiber.NewError(http.StatusUnauthorized, "unauthorized")
	}

	var req updateRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	err := h.svc.Update(c.UserContext(), uid, UpdateInput{
		Name:    req.Name,
		Email:   req.Email,
		School:  req.School,
		NetID:   req.NetID,
		PhotoID: req.Photo,
	})
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return fiber.NewError(http.StatusNotFound, "user not found")
		}
		return fiber.NewError(http.StatusInternalServerError, "failed to update profile")
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"success": true})
}

// providerError maps gateway and sync errors to HTTP statuses without leaking
// provider internals.
func providerError(err error) error {
	switch {
	case errors.Is(err, identity.ErrEmailExists),
		errors.Is(err, identity.ErrWeakPassword),
		errors.Is(err, identity.ErrInvalidEmail),
		errors.Is(err, identity.ErrInvalidCredentials):
		return fiber.NewError(http.StatusBadRequest, err.Error())
	case errors.Is(err, identity.ErrUnavailable):
		return fiber.NewError(http.StatusServiceUnavailable, err.Error())
	case errors.Is(err, ErrInvariant):
		return fiber.NewError(http.StatusInternalServerError, "account state conflict")
	default:
		return fiber.NewError(http.StatusInternalServerError, "request failed")
	}
}
