// File: clinicbook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"clinicbook/config"
	"clinicbook/database"
	appointmentRepo "clinicbook/database/repository/appointment"
	"clinicbook/handlers"
	"clinicbook/middleware"
	"clinicbook/routes"
	"clinicbook/services/notification"
	"clinicbook/services/payment"
	"clinicbook/utils"
	"clinicbook/worker"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"github.com/hibiken/asynq"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	if err := config.AppConfig.Validate(); err != nil {
		logger.Sugar().Fatalf("main: invalid configuration: %v", err)
	}

	database.InitDB()
	utils.InitCache()
	utils.InitQueueCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()

	// task queue client for confirmation emails.
	asynqClient := asynq.NewClient(asynq.RedisClientOpt{
		Addr:     config.AppConfig.RedisAddr,
		Password: config.AppConfig.RedisPassword,
		DB:       config.AppConfig.RedisQueueDB,
	})
	defer asynqClient.Close()

	notificationService, err := notification.NewAsynqNotificationService(asynqClient, logger)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	// services.
	slipClient := payment.NewOpenSlipClient(
		config.AppConfig.SlipVerifyURL,
		config.AppConfig.SlipVerifyToken,
		time.Duration(config.AppConfig.SlipVerifyTimeoutMS)*time.Millisecond,
		payment.NewRetryPolicy(config.AppConfig.SlipVerifyAttempts),
		logger,
	)
	verificationService := &payment.DefaultSlipVerificationService{
		Repo:         apptRepo,
		Verifier:     slipClient,
		Notifier:     notificationService,
		ReceiverName: config.AppConfig.ReceiverName,
		Logger:       logger,
	}

	// handlers.
	paymentHandler := handlers.NewPaymentHandler(verificationService, logger)
	appointmentHandler := handlers.NewAppointmentHandler(apptRepo, logger)

	routes.RegisterRoutes(router, paymentHandler, appointmentHandler)

	// Background email worker and health monitor.
	mailer := notification.NewSMTPClient(config.AppConfig)
	worker.InitConfirmationWorker(mailer)
	utils.StartHealthMonitor([]*redis.Client{utils.GetCacheClient(), utils.GetQueueClient()}, database.MongoClient)

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
