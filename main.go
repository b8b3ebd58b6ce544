// File: shoba/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"shoba/catalog"
	"shoba/config"
	"shoba/handlers"
	"shoba/middleware"
	"shoba/routes"
	ai "shoba/services/intelligence"
	"shoba/services/status"
	"shoba/services/wizard"
	"shoba/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if err := catalog.Validate(); err != nil {
		logger.Sugar().Fatalf("main: catalog validation failed: %v", err)
	}

	utils.InitRedis()
	utils.StartHealthMonitor([]*redis.Client{
		utils.GetSessionCacheClient(),
		utils.GetChatCacheClient(),
		utils.GetRecordsCacheClient(),
	})

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// services.
	statusService := &status.DefaultStatusService{
		Cache: utils.GetRecordsCacheClient(),
		Demo:  config.AppConfig.DemoMode,
	}

	wizardService := &wizard.DefaultWizardService{
		Cache:   utils.GetSessionCacheClient(),
		Records: statusService,
	}

	var generator ai.ContentGenerator = ai.OfflineGenerator{}
	if key := config.AppConfig.GeminiAPIKey; key != "" {
		gemini, err := ai.NewGeminiClient(key)
		if err != nil {
			logger.Sugar().Warnf("main: Gemini unavailable, chat will serve offline replies: %v", err)
		} else {
			generator = gemini
		}
	} else {
		logger.Sugar().Warn("main: no GEMINI_API_KEY set, chat will serve offline replies")
	}
	ctxStore := ai.NewRedisContextStore(utils.GetChatCacheClient(), 30*time.Minute)
	chatService := ai.NewDefaultChatService(
		generator,
		ctxStore,
		time.Duration(config.AppConfig.ChatTimeoutSeconds)*time.Second,
	)

	bookingHandler := handlers.NewBookingHandler(wizardService, logger)
	chatHandler := handlers.NewChatHandler(chatService)
	statusHandler := handlers.NewStatusHandler(statusService)

	// Assemble the handler bundle.
	handlerBundle := &handlers.HandlerBundle{
		// Catalog endpoints.
		ListServicesHandler:     handlers.ListServicesHandler,
		GetServiceHandler:       handlers.GetServiceHandler,
		ListLocationsHandler:    handlers.ListLocationsHandler,
		GetLocationHandler:      handlers.GetLocationHandler,
		ListAddonsHandler:       handlers.ListAddonsHandler,
		ListTimeSlotsHandler:    handlers.ListTimeSlotsHandler,
		ListTestimonialsHandler: handlers.ListTestimonialsHandler,

		// Booking wizard endpoints.
		StartSession:   bookingHandler.StartSession,
		GetSession:     bookingHandler.GetSession,
		UpdateSession:  bookingHandler.UpdateSession,
		NextStep:       bookingHandler.NextStep,
		PreviousStep:   bookingHandler.PreviousStep,
		ConfirmBooking: bookingHandler.ConfirmBooking,
		CancelSession:  bookingHandler.CancelSession,
		GetSlots:       bookingHandler.GetSlots,
		GetDates:       bookingHandler.GetDates,

		// Chat endpoints.
		ChatGreetingHandler: chatHandler.ChatGreetingHandler,
		ChatMessageHandler:  chatHandler.ChatMessageHandler,

		// Status endpoint.
		StatusLookupHandler: statusHandler.StatusLookupHandler,
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
