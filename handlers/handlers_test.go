package handlers_test

import (
	"encoding/json"
	"io"
	"net/http"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/mongo/integration/mtest"

	"booking-api/config"
	"booking-api/handlers"
	"booking-api/repository"
	"booking-api/router"
)

// newTestApp wires the full route table over a mock store deployment.
func newTestApp(mt *mtest.T) *fiber.App {
	cfg := config.Config{Env: "test", APIPrefix: "/api"}
	log := zerolog.Nop()

	app := fiber.New()
	router.SetupRoutes(app, cfg, router.Handlers{
		Services: handlers.NewServiceHandler(repository.NewServiceRepository(mt.DB, log)),
		Bookings: handlers.NewBookingHandler(repository.NewBookingRepository(mt.DB, log)),
		Health:   handlers.NewHealthHandler(mt.DB, cfg),
	})
	return app
}

func decodeBody(t *testing.T, res *http.Response) map[string]any {
	t.Helper()
	raw, err := io.ReadAll(res.Body)
	require.NoError(t, err)

	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))
	return body
}
