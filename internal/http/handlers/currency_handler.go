package handlers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"alwanstore/internal/currency"
	applog "alwanstore/internal/log"
)

type CurrencyHandler struct {
	Currency *currency.Manager
}

// GET /api/v1/currency
func (h *CurrencyHandler) Get(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"currency":     h.Currency.Code(),
		"exchangeRate": h.Currency.Rate(),
	})
}

// POST /api/v1/currency: switch display currency and/or exchange rate.
func (h *CurrencyHandler) Set(c *fiber.Ctx) error {
	var body struct {
		Currency     string  `json:"currency"`
		ExchangeRate float64 `json:"exchangeRate"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}
	if body.Currency != "" {
		if err := h.Currency.SetCurrency(body.Currency); err != nil {
			if errors.Is(err, currency.ErrUnknownCurrency) {
				return c.Status(400).JSON(fiber.Map{"error": "unknown currency code"})
			}
			return fail(c, "currency.set.fail", err)
		}
	}
	if body.ExchangeRate > 0 {
		if err := h.Currency.SetExchangeRate(body.ExchangeRate); err != nil {
			return fail(c, "currency.rate.fail", err)
		}
	}
	applog.Info(c, "currency.set", map[string]any{"currency": h.Currency.Code(), "rate": h.Currency.Rate()})
	return h.Get(c)
}

// POST /api/v1/currency/format: render a base price for display.
func (h *CurrencyHandler) Format(c *fiber.Ctx) error {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}
	return c.JSON(fiber.Map{
		"formatted": h.Currency.FormatPrice(body.Price),
		"converted": h.Currency.ConvertPrice(body.Price),
	})
}
