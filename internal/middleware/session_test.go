package middleware

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/ezrapay/ezrapay/internal/auth"
)

func TestRequireSession(t *testing.T) {
	sessions := auth.NewService("test-secret", time.Hour, nil)
	app := fiber.New()
	app.Use(RequireSession(sessions))
	app.Post("/private", func(c *fiber.Ctx) error {
		uid, _ := c.Locals("user_id").(string)
		return c.SendString(uid)
	})

	// No token.
	req := httptest.NewRequest(fiber.MethodPost, "/private", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 without token, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Garbage token.
	req = httptest.NewRequest(fiber.MethodPost, "/private", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer nonsense")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusUnauthorized {
		t.Fatalf("expected 401 with bad token, got %d", resp.StatusCode)
	}
	resp.Body.Close()

	// Valid token.
	token, err := sessions.Issue("uid-1")
	if err != nil {
		t.Fatalf("issue: %v", err)
	}
	req = httptest.NewRequest(fiber.MethodPost, "/private", nil)
	req.Header.Set(fiber.HeaderAuthorization, "Bearer "+token)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("app.Test: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200 with valid token, got %d", resp.StatusCode)
	}
	resp.Body.Close()
}
