package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"booking-api/config"
	"booking-api/database"
	"booking-api/handlers"
	"booking-api/logging"
	"booking-api/metrics"
	"booking-api/middleware"
	"booking-api/repository"
	"booking-api/router"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	client, db, err := database.Connect(ctx, cfg)
	cancel()
	if err != nil {
		log.Fatal().Err(err).Msg("cannot connect to the database")
	}

	serviceRepo := repository.NewServiceRepository(db, log)
	bookingRepo := repository.NewBookingRepository(db, log)

	// Indexes are created once, before traffic is served.
	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	if err := serviceRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot create service indexes")
	}
	if err := bookingRepo.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("cannot create booking indexes")
	}
	cancel()

	metrics.Register()

	app := fiber.New()
	app.Use(recover.New())
	app.Use(cors.New())
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(log))
	app.Use(middleware.Metrics())

	router.SetupRoutes(app, cfg, router.Handlers{
		Services: handlers.NewServiceHandler(serviceRepo),
		Bookings: handlers.NewBookingHandler(bookingRepo),
		Health:   handlers.NewHealthHandler(db, cfg),
	})

	go func() {
		if err := app.Listen(cfg.ListenAddr); err != nil {
			log.Fatal().Err(err).Msg("http server stopped")
		}
	}()
	log.Info().Str("addr", cfg.ListenAddr).Str("prefix", cfg.APIPrefix).Msg("booking api listening")

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("shutting down")
	if err := app.Shutdown(); err != nil {
		log.Error().Err(err).Msg("http server shutdown failed")
	}

	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		log.Error().Err(err).Msg("database disconnect failed")
	}
}
