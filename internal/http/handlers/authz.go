package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "alwanstore/internal/log"
	"alwanstore/internal/session"
)

// RequireAdmin gates the back-office routes on the active session's admin
// flag.
func RequireAdmin(auth *session.Store) fiber.Handler {
	return func(c *fiber.Ctx) error {
		cur := auth.Current()
		if cur == nil {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
		}
		if !cur.IsAdmin {
			applog.Security(c, "access.denied.admin", map[string]any{"email": cur.Email})
			return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "access denied"})
		}
		return c.Next()
	}
}
