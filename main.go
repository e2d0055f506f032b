// File: mentorly/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mentorly/config"
	"mentorly/cron"
	"mentorly/database"
	availabilityRepoPkg "mentorly/database/repository/availability"
	bookingRepoPkg "mentorly/database/repository/booking"
	"mentorly/handlers"
	"mentorly/middleware"
	"mentorly/routes"
	"mentorly/services/availability"
	"mentorly/services/booking"
	"mentorly/services/expert"
	"mentorly/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitRedis()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	availRepo := availabilityRepoPkg.NewMongoAvailabilityRepo()
	bookRepo := bookingRepoPkg.NewMongoBookingRepo()

	// services.
	availService := &availability.DefaultService{
		AvailabilityRepo: availRepo,
		BookingRepo:      bookRepo,
		Cache:            utils.GetCacheClient(),
		CacheTTL:         time.Duration(config.AppConfig.HorizonCacheTTLSeconds) * time.Second,
		HorizonDays:      config.AppConfig.HorizonDays,
		Durations:        config.AppConfig.SessionDurations,
		Opts:             availability.Options{DeduplicateSlots: config.AppConfig.DeduplicateSlots},
	}

	taskClient := cron.NewTaskClient()
	defer taskClient.Close()

	bookingService := &booking.DefaultService{
		Repo:  bookRepo,
		Avail: availService,
		Tasks: taskClient,
	}

	expertService := &expert.DefaultService{
		Repo:  availRepo,
		Avail: availService,
		Tasks: taskClient,
	}

	// Background worker that recomputes cached horizons after writes.
	cron.InitHorizonWorker(availService)

	availabilityHandler := handlers.NewAvailabilityHandler(availService)
	bookingHandler := handlers.NewBookingHandler(bookingService)
	expertHandler := handlers.NewExpertHandler(expertService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Public availability reads.
		GetSlotsHandler:          availabilityHandler.GetSlotsHandler,
		GetAvailableDatesHandler: availabilityHandler.GetAvailableDatesHandler,

		// Booking endpoints.
		ReserveHandler: bookingHandler.ReserveHandler,

		// Expert endpoints.
		SetupAvailabilityHandler:  expertHandler.SetupAvailabilityHandler,
		GetAvailabilityHandler:    expertHandler.GetAvailabilityHandler,
		ToggleWindowHandler:       expertHandler.ToggleWindowHandler,
		DeleteWindowHandler:       expertHandler.DeleteWindowHandler,
		ListExpertBookingsHandler: bookingHandler.ListExpertBookingsHandler,
		CancelBookingHandler:      bookingHandler.CancelBookingHandler,
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
