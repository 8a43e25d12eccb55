package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alwanstore/internal/domain"
	applog "alwanstore/internal/log"
	"alwanstore/internal/services"
	"alwanstore/internal/validate"
)

// AdminHandler is the back-office CRUD surface. Every route behind it is
// wrapped by RequireAdmin; the services re-check the session anyway.
type AdminHandler struct {
	Products   *services.ProductService
	Categories *services.CategoryService
	Company    *services.CompanyService
	Banners    *services.BannerService
	Reviews    *services.ReviewService
	Stock      *services.StockService
	Sales      *services.SalesService
	Media      *services.MediaService
	Dashboard  *services.DashboardService
}

// GET /api/v1/admin/stats
func (h *AdminHandler) Stats(c *fiber.Ctx) error {
	stats, err := h.Dashboard.Stats(c.UserContext())
	if err != nil {
		return fail(c, "admin.stats.fail", err)
	}
	return c.JSON(stats)
}

// ---------- Products ----------

// POST /api/v1/admin/products
func (h *AdminHandler) CreateProduct(c *fiber.Ctx) error {
	var patch domain.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}
	p, err := h.Products.CreateProduct(c.UserContext(), patch)
	if err != nil {
		return fail(c, "admin.products.create.fail", err)
	}
	applog.Audit(c, "admin.products.create", map[string]any{"product_id": p.ID})
	return c.Status(201).JSON(p)
}

// PATCH /api/v1/admin/products/:id
func (h *AdminHandler) UpdateProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}
	var patch domain.ProductPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}
	p, err := h.Products.UpdateProduct(c.UserContext(), id, patch)
	if err != nil {
		return fail(c, "admin.products.update.fail", err)
	}
	applog.Audit(c, "admin.products.update", map[string]any{"product_id": id})
	return c.JSON(p)
}

// DELETE /api/v1/admin/products/:id
func (h *AdminHandler) DeleteProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}
	if err := h.Products.DeleteProduct(c.UserContext(), id); err != nil {
		return fail(c, "admin.products.delete.fail", err)
	}
	applog.Audit(c, "admin.products.delete", map[string]any{"product_id": id})
	return c.JSON(fiber.Map{"ok": true})
}

// ---------- Categories ----------

// POST /api/v1/admin/categories
func (h *AdminHandler) CreateCategory(c *fiber.Ctx) error {
	var patch domain.CategoryPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}
	cat, err := h.Categories.CreateCategory(c.UserContext(), patch)
	if err != nil {
		return fail(c, "admin.categories.create.fail", err)
	}
	applog.Audit(c, "admin.categories.create", map[string]any{"category_id": cat.ID})
	return c.Status(201).JSON(cat)
}

// PATCH /api/v1/admin/categories/:id
func (h *AdminHandler) UpdateCategory(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}
	var patch domain.CategoryPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}
	cat, err := h.Categories.UpdateCategory(c.UserContext(), id, patch)
	if err != nil {
		return fail(c, "admin.categories.update.fail", err)
	}
	applog.Audit(c, "admin.categories.update", map[string]any{"category_id": id})
	return c.JSON(cat)
}

// DELETE /api/v1/admin/categories/:id
func (h *AdminHandler) DeleteCategory(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}
	if err := h.Categories.DeleteCategory(c.UserContext(), id); err != nil {
		return fail(c, "admin.categories.delete.fail", err)
	}
	applog.Audit(c, "admin.categories.delete", map[string]any{"category_id": id})
	return c.JSON(fiber.Map{"ok": true})
}

// ---------- Company ----------

// PATCH /api/v1/admin/company/:id
func (h *AdminHandler) UpdateCompany(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}
	var patch domain.CompanyInfoPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}
	info, err := h.Company.UpdateCompanyInfo(c.UserContext(), id, patch)
	if err != nil {
		return fail(c, "admin.company.update.fail", err)
	}
	applog.Audit(c, "admin.company.update", map[string]any{"company_id": id})
	return c.JSON(info)
}

// ---------- Banners ----------

// POST /api/v1/admin/banners
func (h *AdminHandler) CreateBanner(c *fiber.Ctx) error {
	var patch domain.BannerPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}
	b, err := h.Banners.CreateBanner(c.UserContext(), patch)
	if err != nil {
		return fail(c, "admin.banners.create.fail", err)
	}
	applog.Audit(c, "admin.banners.create", map[string]any{"banner_id": b.ID})
	return c.Status(201).JSON(b)
}

// PATCH /api/v1/admin/banners/:id
func (h *AdminHandler) UpdateBanner(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}
	var patch domain.BannerPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}
	b, err := h.Banners.UpdateBanner(c.UserContext(), id, patch)
	if err != nil {
		return fail(c, "admin.banners.update.fail", err)
	}
	applog.Audit(c, "admin.banners.update", map[string]any{"banner_id": id})
	return c.JSON(b)
}

// DELETE /api/v1/admin/banners/:id
func (h *AdminHandler) DeleteBanner(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}
	if err := h.Banners.DeleteBanner(c.UserContext(), id); err != nil {
		return fail(c, "admin.banners.delete.fail", err)
	}
	applog.Audit(c, "admin.banners.delete", map[string]any{"banner_id": id})
	return c.JSON(fiber.Map{"ok": true})
}

// ---------- Reviews ----------

// GET /api/v1/admin/reviews
func (h *AdminHandler) ListReviews(c *fiber.Ctx) error {
	reviews, err := h.Reviews.FetchAllReviews(c.UserContext())
	if err != nil {
		return fail(c, "admin.reviews.list.fail", err)
	}
	return c.JSON(reviews)
}

// PATCH /api/v1/admin/reviews/:id
func (h *AdminHandler) UpdateReview(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}
	var patch domain.ReviewPatch
	if err := c.BodyParser(&patch); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}
	r, err := h.Reviews.UpdateReview(c.UserContext(), id, patch)
	if err != nil {
		return fail(c, "admin.reviews.update.fail", err)
	}
	applog.Audit(c, "admin.reviews.update", map[string]any{"review_id": id})
	return c.JSON(r)
}

// DELETE /api/v1/admin/reviews/:id
func (h *AdminHandler) DeleteReview(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "invalid id"})
	}
	if err := h.Reviews.DeleteReview(c.UserContext(), id); err != nil {
		return fail(c, "admin.reviews.delete.fail", err)
	}
	applog.Audit(c, "admin.reviews.delete", map[string]any{"review_id": id})
	return c.JSON(fiber.Map{"ok": true})
}

// ---------- Stock ----------

// GET /api/v1/admin/stock?product=<id>
func (h *AdminHandler) ListStock(c *fiber.Ctx) error {
	if pid := c.Query("product"); pid != "" {
		id, ok := validate.ID(pid)
		if !ok {
			return c.Status(400).JSON(fiber.Map{"error": "invalid product id"})
		}
		txs, err := h.Stock.FetchTransactionsByProduct(c.UserContext(), id)
		if err != nil {
			return fail(c, "admin.stock.list.fail", err)
		}
		return c.JSON(fiber.Map{"transactions": txs, "quantity": services.RunningStock(txs)})
	}
	txs, err := h.Stock.FetchTransactions(c.UserContext())
	if err != nil {
		return fail(c, "admin.stock.list.fail", err)
	}
	return c.JSON(fiber.Map{"transactions": txs, "levels": services.StockLevels(txs)})
}

// POST /api/v1/admin/stock
func (h *AdminHandler) RecordStock(c *fiber.Ctx) error {
	var body struct {
		ProductID string `json:"productId"`
		Type      string `json:"type"`
		Qty       int    `json:"qty"`
		Notes     string `json:"notes"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}
	txType, ok := validate.TxType(body.Type)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "type must be in or out"})
	}
	tx, err := h.Stock.RecordTransaction(c.UserContext(), body.ProductID, txType, body.Qty, body.Notes)
	if err != nil {
		return fail(c, "admin.stock.record.fail", err)
	}
	applog.Audit(c, "admin.stock.record", map[string]any{"product_id": body.ProductID, "type": txType, "qty": body.Qty})
	return c.Status(201).JSON(tx)
}

// ---------- Sales ----------

// GET /api/v1/admin/sales
func (h *AdminHandler) ListSales(c *fiber.Ctx) error {
	sales, err := h.Sales.FetchSales(c.UserContext())
	if err != nil {
		return fail(c, "admin.sales.list.fail", err)
	}
	return c.JSON(sales)
}

// ---------- Media ----------

// POST /api/v1/admin/media: multipart upload, optional ?bucket=banners|reviews.
func (h *AdminHandler) UploadMedia(c *fiber.Ctx) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "missing file"})
	}
	f, err := fh.Open()
	if err != nil {
		return fail(c, "admin.media.open.fail", err)
	}
	defer f.Close()

	contentType := fh.Header.Get("Content-Type")
	var url string
	if bucket := c.Query("bucket"); bucket != "" {
		url, err = h.Media.UploadTo(c.UserContext(), bucket, fh.Filename, contentType, f)
	} else {
		url, err = h.Media.Upload(c.UserContext(), fh.Filename, contentType, f)
	}
	if err != nil {
		return fail(c, "admin.media.upload.fail", err)
	}
	applog.Audit(c, "admin.media.upload", map[string]any{"file": fh.Filename, "url": url})
	return c.Status(201).JSON(fiber.Map{"url": url})
}
