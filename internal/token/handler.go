package token

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
)

// Handler exposes the mint endpoint.
type Handler struct {
	minter Minter
}

// NewHandler constructs a token HTTP handler.
func NewHandler(minter Minter) *Handler {
	return &Handler{minter: minter}
}

type mintRequest struct {
	Recipient string `json:"recipient"`
	Amount    int64  `json:"amount"`
}

// Mint submits a mint for the requested recipient and amount.
func (h *Handler) Mint(c *fiber.Ctx) error {
	var req mintRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}
	if req.Recipient == "" || req.Amount == 0 {
		return fiber.NewError(http.StatusBadRequest, "recipient address and amount are required")
	}

	hash, err := h.minter.Mint(c.UserContext(), req.Recipient, req.Amount)
	if err != nil {
		if errors.Is(err, ErrBadRecipient) || errors.Is(err, ErrBadAmount) {
			return fiber.NewError(http.StatusBadRequest, err.Error())
		}
		return fiber.NewError(http.StatusInternalServerError, "failed to mint tokens")
	}

	return c.Status(http.StatusOK).JSON(fiber.Map{"success": true, "txHash": hash})
}
