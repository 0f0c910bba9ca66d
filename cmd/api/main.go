package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"user-directory/config"
	_ "user-directory/docs" // Important for Swagger
	v1 "user-directory/internal/delivery/http/v1"
	"user-directory/internal/repository/rest"
	"user-directory/internal/usecase"
	"user-directory/pkg/logger"

	"github.com/go-playground/validator/v10"
)

// @title           User Directory API
// @version         1.0
// @description     Contact form and user list backed by the users REST service.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting user directory", "port", cfg.Port, "users_api", cfg.UsersAPIBaseURL)

	// 3. Setup Users Backend Client
	httpClient := &http.Client{Timeout: cfg.UsersAPITimeout}
	directory := rest.NewUserDirectory(httpClient, cfg.UsersAPIBaseURL)

	// 4. Setup UseCases
	validate := validator.New()
	contactUC := usecase.NewContactUsecase(directory, validate)
	userListUC := usecase.NewUserListUsecase(directory)

	// 5. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC:  contactUC,
		UserListUC: userListUC,
		Config:     cfg,
	})

	// 6. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
			os.Exit(1)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
