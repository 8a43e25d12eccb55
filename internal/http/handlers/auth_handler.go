package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "alwanstore/internal/log"
	"alwanstore/internal/session"
	"alwanstore/internal/validate"
)

type AuthHandler struct {
	Auth *session.Store
}

// POST /api/v1/auth/login
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var body struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}
	email, ok := validate.Email(body.Email)
	if !ok || body.Password == "" {
		return c.Status(400).JSON(fiber.Map{"error": "missing required fields"})
	}
	if !h.Auth.Login(c.UserContext(), email, body.Password) {
		applog.Security(c, "auth.login.reject", map[string]any{"email": email})
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "invalid email or password"})
	}
	applog.Audit(c, "auth.login", map[string]any{"email": email})
	return c.JSON(fiber.Map{"ok": true, "isAdmin": h.Auth.IsAdmin()})
}

// POST /api/v1/auth/logout
func (h *AuthHandler) Logout(c *fiber.Ctx) error {
	h.Auth.Logout(c.UserContext())
	applog.Audit(c, "auth.logout", nil)
	return c.JSON(fiber.Map{"ok": true})
}

// GET /api/v1/auth/session
func (h *AuthHandler) Session(c *fiber.Ctx) error {
	cur := h.Auth.Current()
	if cur == nil {
		return c.JSON(fiber.Map{"authenticated": false})
	}
	return c.JSON(fiber.Map{
		"authenticated": true,
		"email":         cur.Email,
		"isAdmin":       cur.IsAdmin,
	})
}
