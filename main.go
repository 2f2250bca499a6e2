package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dahabiyat/config"
	"dahabiyat/cron"
	"dahabiyat/database"
	blockedRepoPkg "dahabiyat/database/repository/blocked"
	bookingRepoPkg "dahabiyat/database/repository/booking"
	catalogRepoPkg "dahabiyat/database/repository/catalog"
	userRepoPkg "dahabiyat/database/repository/user"
	"dahabiyat/handlers"
	"dahabiyat/middleware"
	"dahabiyat/routes"
	"dahabiyat/services/booking"
	"dahabiyat/services/notification"
	"dahabiyat/utils"

	"github.com/gin-gonic/gin"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	bookingRepo := bookingRepoPkg.NewMongoBookingRepo()
	catalogRepo := catalogRepoPkg.NewMongoCatalogRepo()
	blockedRepo := blockedRepoPkg.NewMongoBlockedRepo()
	userRepo := userRepoPkg.NewMongoUserRepo()

	// async queue client for outbound email tasks.
	queueClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer queueClient.Close()

	// services.
	notificationService := &notification.DefaultNotificationService{
		Users: userRepo,
		Queue: queueClient,
	}

	availabilityEngine := &booking.DefaultAvailabilityEngine{
		Catalog:  catalogRepo,
		Bookings: bookingRepo,
		Blocked:  blockedRepo,
	}

	reservationService := &booking.DefaultReservationService{
		Engine:   availabilityEngine,
		Bookings: bookingRepo,
		Users:    userRepo,
		Notifier: notificationService,
	}

	// background email worker consuming the queue.
	cron.InitEmailWorker(userRepo, notification.LogEmailSender{})

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Assemble the handler bundle and register routes.
	handlerBundle := &routes.HandlerBundle{
		Availability: handlers.NewAvailabilityHandler(availabilityEngine, utils.GetCacheClient(), logger),
		Booking:      handlers.NewBookingHandler(reservationService, logger),
		Admin:        handlers.NewAdminHandler(reservationService, blockedRepo, logger),
	}
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
