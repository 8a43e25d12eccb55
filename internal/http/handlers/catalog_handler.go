package handlers

import (
	"github.com/gofiber/fiber/v2"

	applog "alwanstore/internal/log"
	"alwanstore/internal/services"
	"alwanstore/internal/validate"
)

// CatalogHandler serves the public storefront data: products, categories,
// company info, banners and approved reviews.
type CatalogHandler struct {
	Products   *services.ProductService
	Categories *services.CategoryService
	Company    *services.CompanyService
	Banners    *services.BannerService
	Reviews    *services.ReviewService
}

// GET /api/v1/products?category=<id>
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	if cat := c.Query("category"); cat != "" {
		id, ok := validate.ID(cat)
		if !ok {
			return c.Status(400).JSON(fiber.Map{"error": "invalid category id"})
		}
		products, err := h.Products.FetchProductsByCategory(c.UserContext(), id)
		if err != nil {
			return fail(c, "products.list.fail", err)
		}
		return c.JSON(products)
	}
	products, err := h.Products.FetchProducts(c.UserContext())
	if err != nil {
		return fail(c, "products.list.fail", err)
	}
	return c.JSON(products)
}

// GET /api/v1/products/:id
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		applog.Security(c, "validation.fail", map[string]any{"field": "product"})
		return c.Status(404).JSON(fiber.Map{"error": "not found"})
	}
	p, err := h.Products.FetchProductByID(c.UserContext(), id)
	if err != nil {
		return fail(c, "products.get.fail", err)
	}
	if p == nil {
		return c.Status(404).JSON(fiber.Map{"error": "not found"})
	}
	return c.JSON(p)
}

// GET /api/v1/categories
func (h *CatalogHandler) ListCategories(c *fiber.Ctx) error {
	cats, err := h.Categories.FetchCategories(c.UserContext())
	if err != nil {
		return fail(c, "categories.list.fail", err)
	}
	return c.JSON(cats)
}

// GET /api/v1/company
func (h *CatalogHandler) GetCompany(c *fiber.Ctx) error {
	info, err := h.Company.FetchCompanyInfo(c.UserContext())
	if err != nil {
		return fail(c, "company.get.fail", err)
	}
	return c.JSON(info)
}

// GET /api/v1/banners
func (h *CatalogHandler) ListBanners(c *fiber.Ctx) error {
	banners, err := h.Banners.FetchBanners(c.UserContext())
	if err != nil {
		return fail(c, "banners.list.fail", err)
	}
	return c.JSON(banners)
}

// GET /api/v1/products/:id/reviews
func (h *CatalogHandler) ListProductReviews(c *fiber.Ctx) error {
	id, ok := validate.ID(c.Params("id"))
	if !ok {
		return c.Status(404).JSON(fiber.Map{"error": "not found"})
	}
	reviews, err := h.Reviews.FetchReviewsByProduct(c.UserContext(), id)
	if err != nil {
		return fail(c, "reviews.list.fail", err)
	}
	return c.JSON(reviews)
}

// POST /api/v1/reviews: public, new reviews start unapproved.
func (h *CatalogHandler) SubmitReview(c *fiber.Ctx) error {
	var body struct {
		ProductID    string `json:"productId"`
		CustomerName string `json:"customerName"`
		Rating       int    `json:"rating"`
		Comment      string `json:"comment"`
	}
	if err := c.BodyParser(&body); err != nil {
		return c.Status(400).JSON(fiber.Map{"error": "invalid body"})
	}
	name, ok := validate.Name(body.CustomerName)
	if !ok {
		return c.Status(400).JSON(fiber.Map{"error": "missing required fields"})
	}
	review, err := h.Reviews.CreateReview(c.UserContext(), body.ProductID, name, body.Rating, body.Comment)
	if err != nil {
		return fail(c, "reviews.create.fail", err)
	}
	applog.Info(c, "reviews.create", map[string]any{"review_id": review.ID})
	return c.Status(201).JSON(review)
}
