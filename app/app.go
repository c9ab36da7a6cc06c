// File: app/app.go
package app

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"card-wallet-api/config"
	"card-wallet-api/db"
	"card-wallet-api/handler"
	"card-wallet-api/logger"
	"card-wallet-api/repository"
	"card-wallet-api/router"
	"card-wallet-api/service"
)

func Run() {
	config.LoadConfig(".")
	logger.Init()
	logger.Log.Info("Logger initialized")
	logger.Log.Info("Configuration loaded successfully")

	database, err := db.Connect()
	if err != nil {
		logger.Log.Fatalf("Error connecting to the database: %v", err)
	}
	defer database.Close()

	if err := db.RunMigrations("db/migrations"); err != nil {
		logger.Log.Fatalf("Error running migrations: %v", err)
	}

	redisClient, err := db.ConnectRedis()
	if err != nil {
		logger.Log.Fatalf("Error connecting to Redis: %v", err)
	}
	defer redisClient.Close()

	// Wire repositories, services and handlers together.
	userRepo := repository.NewUserRepository(database)
	authService := service.NewAuthService(userRepo)
	authHandler := handler.NewAuthHandler(authService)

	cardRepo := repository.NewCardRepository(database)
	cardService := service.NewCardService(cardRepo, redisClient)
	cardHandler := handler.NewCardHandler(cardService)

	transactionRepo := repository.NewTransactionRepository(database)
	transactionService := service.NewTransactionService(database, cardRepo, transactionRepo, redisClient)
	transactionHandler := handler.NewTransactionHandler(transactionService)

	r := router.NewRouter(authHandler, cardHandler, transactionHandler)

	port := config.AppConfig.Server.Port
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      r,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	go func() {
		logger.Log.Infof("Server starting on port :%s", port)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Fatalf("Failed to start server: %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Warn("Shutdown signal received. Starting graceful shutdown...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Log.Info("Server exited properly")
}
