package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alwanstore/internal/calc"
)

type CalcHandler struct{}

// POST /api/v1/calc/paint
func (h *CalcHandler) PaintQuantity(c *fiber.Ctx) error {
	var in calc.PaintInput
	if err := c.BodyParser(&in); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}
	res, err := calc.PaintQuantity(in)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(res)
}

// POST /api/v1/calc/visualize
func (h *CalcHandler) Visualize(c *fiber.Ctx) error {
	var body struct {
		Base    string   `json:"base"`
		Paint   string   `json:"paint"`
		Opacity *float64 `json:"opacity"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}
	// Absent means full coverage; an explicit 0 keeps the base color.
	opacity := 1.0
	if body.Opacity != nil {
		opacity = *body.Opacity
	}
	hex, err := calc.VisualizeWall(body.Base, body.Paint, opacity)
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": err.Error()})
	}
	return c.JSON(fiber.Map{"color": hex})
}
