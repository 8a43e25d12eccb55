package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	applog "alwanstore/internal/log"
	"alwanstore/internal/remote"
	"alwanstore/internal/services"
	"alwanstore/internal/session"
)

// fail maps service errors onto a uniform JSON error surface. Internal
// details never leak; the full error goes to the log.
func fail(c *fiber.Ctx, action string, err error) error {
	switch {
	case errors.Is(err, session.ErrAuthRequired):
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{"error": "authentication required"})
	case errors.Is(err, services.ErrValidation):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "missing required fields"})
	case remote.IsNotFound(err):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "not found"})
	case remote.IsRLSPolicyError(err):
		// Writes cannot degrade to sample data; suggest the one known fix.
		applog.Error(c, action, err, nil)
		return c.Status(fiber.StatusForbidden).JSON(fiber.Map{"error": "permission check failed, log out and retry"})
	default:
		applog.Error(c, action, err, nil)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "something went wrong, please try again"})
	}
}
