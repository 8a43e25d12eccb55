package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alwanstore/internal/cart"
	"alwanstore/internal/currency"
	applog "alwanstore/internal/log"
	"alwanstore/internal/services"
	"alwanstore/internal/validate"
)

type CheckoutHandler struct {
	Cart     *cart.Manager
	Sales    *services.SalesService
	Currency *currency.Manager
	Company  *services.CompanyService
}

// POST /api/v1/checkout: records the sale from the current cart. The cart
// is cleared only after the sale and its items are fully written, so a
// failed checkout can simply be retried.
func (h *CheckoutHandler) Place(c *fiber.Ctx) error {
	var body struct {
		Name    string `json:"name"`
		Phone   string `json:"phone"`
		Address string `json:"address"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}
	name, ok := validate.Name(body.Name)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "missing required fields"})
	}

	items := h.Cart.Items()
	if len(items) == 0 {
		return c.Status(400).JSON(fiber.Map{"error": "cart is empty"})
	}

	sale, err := h.Sales.CreateSale(c.UserContext(), services.Customer{
		Name:    name,
		Phone:   body.Phone,
		Address: body.Address,
	}, items)
	if err != nil {
		return fail(c, "checkout.fail", err)
	}

	h.Cart.Clear()
	applog.Audit(c, "checkout.placed", map[string]any{"sale_id": sale.ID, "total": sale.Total})
	return c.Status(201).JSON(fiber.Map{
		"sale":       sale,
		"receiptUrl": "/receipt/" + sale.ID,
	})
}

// GET /receipt/:id: printable HTML receipt for a completed sale.
func (h *CheckoutHandler) Receipt(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Receipt not found"})
	}
	sale, err := h.Sales.FetchSaleByID(c.UserContext(), id)
	if err != nil {
		applog.Error(c, "receipt.fetch.fail", err, map[string]any{"sale_id": id})
		return c.Status(500).Render("notfound", fiber.Map{"Message": "Could not load receipt"})
	}
	if sale == nil {
		return c.Status(404).Render("notfound", fiber.Map{"Message": "Receipt not found"})
	}

	company, err := h.Company.FetchCompanyInfo(c.UserContext())
	if err != nil {
		applog.Error(c, "receipt.company.fail", err, nil)
	}

	lines := make([]fiber.Map, 0, len(sale.Items))
	for _, it := range sale.Items {
		lines = append(lines, fiber.Map{
			"Name":     it.ProductName,
			"Qty":      it.Quantity,
			"Unit":     h.Currency.FormatPrice(it.UnitPrice),
			"Subtotal": h.Currency.FormatPrice(it.TotalPrice),
		})
	}
	return c.Render("receipt", fiber.Map{
		"Company":  company,
		"Sale":     sale,
		"Lines":    lines,
		"Total":    h.Currency.FormatPrice(sale.Total),
		"Currency": h.Currency.Code(),
	})
}
