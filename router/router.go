package router

import (
	"github.com/gofiber/adaptor/v2"
	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"booking-api/config"
	"booking-api/handlers"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Services *handlers.ServiceHandler
	Bookings *handlers.BookingHandler
	Health   *handlers.HealthHandler
}

// SetupRoutes registers all endpoints under the configured API prefix.
func SetupRoutes(app *fiber.App, cfg config.Config, h Handlers) {
	api := app.Group(cfg.APIPrefix)

	api.Get("/health", h.Health.Health)
	api.Get("/status", h.Health.Status)

	services := api.Group("/services")
	services.Get("/", h.Services.List)
	services.Post("/", h.Services.Create)
	services.Get("/:id", h.Services.Get)
	services.Put("/:id", h.Services.Update)
	services.Delete("/:id", h.Services.Delete)
	services.Get("/:id/bookings", h.Bookings.ListByService)

	bookings := api.Group("/bookings")
	bookings.Get("/", h.Bookings.List)
	bookings.Post("/", h.Bookings.Create)
	bookings.Get("/:id", h.Bookings.Get)
	bookings.Put("/:id", h.Bookings.Update)
	bookings.Patch("/:id/status", h.Bookings.UpdateStatus)
	bookings.Delete("/:id", h.Bookings.Delete)

	app.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}
