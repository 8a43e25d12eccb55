package main

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/helmet"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	html "github.com/gofiber/template/html/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"alwanstore/internal/config"
	"alwanstore/internal/http/handlers"
	"alwanstore/internal/localstore"
	applog "alwanstore/internal/log"
	"alwanstore/internal/remote"
	"alwanstore/internal/session"
)

func main() {
	cfg := config.Load()
	if err := applog.Init(cfg.LogLevel); err != nil {
		log.Fatal(err)
	}

	ls, err := localstore.Open(cfg.LocalDB)
	if err != nil {
		log.Fatal(err)
	}
	defer ls.Close()

	rc := remote.New(cfg.RemoteURL, cfg.RemoteAnonKey)

	// Without a remote URL the session store runs in local-admin mode.
	authRC := rc
	if cfg.RemoteURL == "" {
		authRC = nil
		log.Println("[auth] no REMOTE_URL configured, local admin credential only")
	}
	auth := session.NewStore(authRC, ls, cfg.AdminEmail, cfg.AdminPasswordHash)
	auth.Resolve(context.Background())

	deps, err := handlers.NewDeps(cfg, rc, ls, auth)
	if err != nil {
		log.Fatal(err)
	}

	engine := html.New("./web/templates", ".html")

	app := fiber.New(fiber.Config{
		Views: engine,
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			applog.Error(c, "server.error", err, nil)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "something went wrong, please try again",
			})
		},
	})
	app.Server().MaxRequestBodySize = 20 << 20 // media uploads

	// ---------- Middlewares ----------
	app.Use(requestid.New())
	app.Use(logger.New())
	app.Use(helmet.New())
	app.Use(limiter.New(limiter.Config{
		Max:        120,
		Expiration: time.Minute,
		Next: func(c *fiber.Ctx) bool {
			return strings.HasPrefix(c.Path(), "/metrics")
		},
	}))

	// ---------- Public storefront ----------
	api := app.Group("/api/v1")
	api.Get("/products", deps.CatalogHandler.ListProducts)
	api.Get("/products/:id", deps.CatalogHandler.GetProduct)
	api.Get("/products/:id/reviews", deps.CatalogHandler.ListProductReviews)
	api.Get("/categories", deps.CatalogHandler.ListCategories)
	api.Get("/company", deps.CatalogHandler.GetCompany)
	api.Get("/banners", deps.CatalogHandler.ListBanners)
	api.Post("/reviews", deps.CatalogHandler.SubmitReview)

	// Cart & checkout
	api.Get("/cart", deps.CartHandler.View)
	api.Post("/cart", deps.CartHandler.Add)
	api.Post("/cart/quantity", deps.CartHandler.UpdateQuantity)
	api.Post("/cart/remove", deps.CartHandler.Remove)
	api.Post("/cart/clear", deps.CartHandler.Clear)
	api.Post("/checkout", deps.CheckoutHandler.Place)
	app.Get("/receipt/:id", deps.CheckoutHandler.Receipt)

	// Tools
	api.Post("/calc/paint", deps.CalcHandler.PaintQuantity)
	api.Post("/calc/visualize", deps.CalcHandler.Visualize)
	api.Get("/currency", deps.CurrencyHandler.Get)
	api.Post("/currency", deps.CurrencyHandler.Set)
	api.Post("/currency/format", deps.CurrencyHandler.Format)

	// Auth (login throttled)
	api.Post("/auth/login", limiter.New(limiter.Config{
		Max:        5,
		Expiration: 10 * time.Minute,
		LimitReached: func(c *fiber.Ctx) error {
			applog.Security(c, "rate.login.hit", nil)
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{"error": "too many attempts, try again later"})
		},
	}), deps.AuthHandler.Login)
	api.Post("/auth/logout", deps.AuthHandler.Logout)
	api.Get("/auth/session", deps.AuthHandler.Session)

	// ---------- Admin ----------
	admin := api.Group("/admin", handlers.RequireAdmin(auth))
	admin.Get("/stats", deps.AdminHandler.Stats)
	admin.Post("/products", deps.AdminHandler.CreateProduct)
	admin.Patch("/products/:id", deps.AdminHandler.UpdateProduct)
	admin.Delete("/products/:id", deps.AdminHandler.DeleteProduct)
	admin.Post("/categories", deps.AdminHandler.CreateCategory)
	admin.Patch("/categories/:id", deps.AdminHandler.UpdateCategory)
	admin.Delete("/categories/:id", deps.AdminHandler.DeleteCategory)
	admin.Patch("/company/:id", deps.AdminHandler.UpdateCompany)
	admin.Post("/banners", deps.AdminHandler.CreateBanner)
	admin.Patch("/banners/:id", deps.AdminHandler.UpdateBanner)
	admin.Delete("/banners/:id", deps.AdminHandler.DeleteBanner)
	admin.Get("/reviews", deps.AdminHandler.ListReviews)
	admin.Patch("/reviews/:id", deps.AdminHandler.UpdateReview)
	admin.Delete("/reviews/:id", deps.AdminHandler.DeleteReview)
	admin.Get("/stock", deps.AdminHandler.ListStock)
	admin.Post("/stock", deps.AdminHandler.RecordStock)
	admin.Get("/sales", deps.AdminHandler.ListSales)
	admin.Post("/media", deps.AdminHandler.UploadMedia)

	// Health & metrics
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.JSON(fiber.Map{"ok": true}) })
	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))

	app.Use(func(c *fiber.Ctx) error {
		return c.Status(404).JSON(fiber.Map{"error": "not found"})
	})

	log.Fatal(app.Listen(":" + cfg.Port))
}
