package handlers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"booking-api/config"
)

// HealthHandler serves liveness and dependency checks.
type HealthHandler struct {
	db  *mongo.Database
	cfg config.Config
}

func NewHealthHandler(db *mongo.Database, cfg config.Config) *HealthHandler {
	return &HealthHandler{db: db, cfg: cfg}
}

// Health reports process liveness without touching dependencies.
func (h *HealthHandler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{
		"status":  "healthy",
		"version": config.Version,
	})
}

// Status probes the store and reports degraded state without failing
// the request.
func (h *HealthHandler) Status(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.Context(), 2*time.Second)
	defer cancel()

	dbStatus := "connected"
	if err := h.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		dbStatus = "disconnected"
	}

	return c.JSON(fiber.Map{
		"status":      "online",
		"environment": h.cfg.Env,
		"database":    dbStatus,
		"version":     config.Version,
	})
}
