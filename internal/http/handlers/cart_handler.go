package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alwanstore/internal/cart"
	"alwanstore/internal/domain"
	"alwanstore/internal/services"
	"alwanstore/internal/validate"
)

type CartHandler struct {
	Cart     *cart.Manager
	Products *services.ProductService
}

type cartView struct {
	Items      []domain.CartItem `json:"items"`
	TotalItems int               `json:"totalItems"`
	TotalPrice float64           `json:"totalPrice"`
}

func (h *CartHandler) view() cartView {
	return cartView{
		Items:      h.Cart.Items(),
		TotalItems: h.Cart.TotalItems(),
		TotalPrice: h.Cart.TotalPrice(),
	}
}

// GET /api/v1/cart
func (h *CartHandler) View(c *fiber.Ctx) error {
	return c.JSON(h.view())
}

// POST /api/v1/cart: price and name are resolved server-side so the cart
// never trusts a client-provided price.
func (h *CartHandler) Add(c *fiber.Ctx) error {
	var body struct {
		ProductID string `json:"productId"`
		Qty       int    `json:"qty"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}
	id, ok := validate.ID(body.ProductID)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "missing productId"})
	}
	p, err := h.Products.FetchProductByID(c.UserContext(), id)
	if err != nil {
		return fail(c, "cart.add.fail", err)
	}
	if p == nil {
		return c.Status(404).JSON(fiber.Map{"error": "not found"})
	}
	qty := body.Qty
	if qty < 1 {
		qty = 1
	}
	h.Cart.Add(domain.CartItem{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  qty,
	})
	return c.JSON(h.view())
}

// POST /api/v1/cart/quantity: quantities below 1 are ignored.
func (h *CartHandler) UpdateQuantity(c *fiber.Ctx) error {
	var body struct {
		ProductID string `json:"productId"`
		Qty       int    `json:"qty"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}
	h.Cart.UpdateQuantity(body.ProductID, body.Qty)
	return c.JSON(h.view())
}

// POST /api/v1/cart/remove
func (h *CartHandler) Remove(c *fiber.Ctx) error {
	var body struct {
		ProductID string `json:"productId"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}
	h.Cart.Remove(body.ProductID)
	return c.JSON(h.view())
}

// POST /api/v1/cart/clear
func (h *CartHandler) Clear(c *fiber.Ctx) error {
	h.Cart.Clear()
	return c.JSON(h.view())
}
