package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"booking-api/metrics"
)

const requestIDKey = "request_id"

// RequestID assigns each request an id, honoring one supplied by the
// client, and echoes it in the response header.
func RequestID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id := c.Get(fiber.HeaderXRequestID)
		if id == "" {
			id = uuid.NewString()
		}
		c.Locals(requestIDKey, id)
		c.Set(fiber.HeaderXRequestID, id)
		return c.Next()
	}
}

// resolveError runs the app error handler so the response carries the
// final status before it is observed. Errors resolved here must not be
// returned up the chain again.
func resolveError(c *fiber.Ctx, err error) {
	if err == nil {
		return
	}
	if herr := c.App().Config().ErrorHandler(c, err); herr != nil {
		_ = c.SendStatus(fiber.StatusInternalServerError)
	}
}

// Logger logs one line per finished request.
func Logger(log zerolog.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		resolveError(c, c.Next())

		requestID, _ := c.Locals(requestIDKey).(string)
		log.Info().
			Str("method", c.Method()).
			Str("path", c.Path()).
			Int("status", c.Response().StatusCode()).
			Dur("duration", time.Since(start)).
			Str("request_id", requestID).
			Msg("request")

		return nil
	}
}

// Metrics records request counts and latency per route pattern.
func Metrics() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		resolveError(c, c.Next())

		route := c.Route().Path
		metrics.ObserveHTTP(c.Method(), route, c.Response().StatusCode(), time.Since(start))

		return nil
	}
}
