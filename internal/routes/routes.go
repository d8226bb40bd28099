package routes

import (
	"time"

	"github.com/clefio/clefs-backend/internal/config"
	"github.com/clefio/clefs-backend/internal/handlers"
	"github.com/clefio/clefs-backend/internal/middleware"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/limiter"
)

type Handlers struct {
	Auth       *handlers.AuthHandler
	Health     *handlers.HealthHandler
	Property   *handlers.PropertyHandler
	Supplier   *handlers.SupplierHandler
	Key        *handlers.KeyHandler
	KeyHistory *handlers.KeyHistoryHandler
	Alert      *handlers.AlertHandler
	Dashboard  *handlers.DashboardHandler
	Profile    *handlers.ProfileHandler
}

func Setup(app *fiber.App, cfg *config.Config, h Handlers) {
	// Uploaded blobs (key photos, signatures, profile pictures).
	app.Static("/uploads", cfg.UploadDir)

	api := app.Group("/api")

	// General API rate limiter: 60 req/min per IP
	api.Use(limiter.New(limiter.Config{
		Max:               60,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))

	api.Get("/health", h.Health.Check)

	// Auth endpoints are public but carry a stricter limit: 10 req/min per IP
	auth := api.Group("/auth")
	auth.Use(limiter.New(limiter.Config{
		Max:               10,
		Expiration:        1 * time.Minute,
		LimiterMiddleware: limiter.SlidingWindow{},
		KeyGenerator:      func(c *fiber.Ctx) string { return c.IP() },
	}))
	auth.Post("/register", h.Auth.Register)
	auth.Post("/login", h.Auth.Login)
	auth.Post("/refresh", h.Auth.Refresh)

	api.Post("/auth/logout", middleware.JWTProtected(cfg), h.Auth.Logout)

	// Everything below requires a valid access token.
	protected := api.Group("/p", middleware.JWTProtected(cfg))

	protected.Get("/properties", h.Property.List)
	protected.Post("/properties", h.Property.Create)
	protected.Get("/properties/:id", h.Property.Get)
	protected.Put("/properties/:id", h.Property.Update)
	protected.Delete("/properties/:id", h.Property.Delete)

	protected.Get("/suppliers", h.Supplier.List)
	protected.Post("/suppliers", h.Supplier.Create)
	protected.Get("/suppliers/:id", h.Supplier.Get)
	protected.Put("/suppliers/:id", h.Supplier.Update)
	protected.Delete("/suppliers/:id", h.Supplier.Delete)

	protected.Get("/keys", h.Key.List)
	protected.Post("/keys", h.Key.Create)
	protected.Get("/keys/:id", h.Key.Get)
	protected.Put("/keys/:id", h.Key.Update)
	protected.Delete("/keys/:id", h.Key.Delete)
	protected.Get("/keys/:id/histories", h.KeyHistory.ListForKey)
	protected.Post("/keys/:id/histories", h.KeyHistory.Add)

	protected.Get("/alerts", h.Alert.List)
	protected.Post("/alerts", h.Alert.Create)
	protected.Get("/alerts/:id", h.Alert.Get)
	protected.Put("/alerts/:id", h.Alert.Update)
	protected.Delete("/alerts/:id", h.Alert.Delete)

	protected.Get("/dashboard", h.Dashboard.Overview)
	protected.Get("/dashboard/calendar", h.Dashboard.Calendar)

	protected.Get("/profile", h.Profile.Get)
	protected.Put("/profile", h.Profile.Update)
	protected.Put("/profile/email", h.Profile.UpdateEmail)
	protected.Put("/profile/password", h.Profile.UpdatePassword)
}
