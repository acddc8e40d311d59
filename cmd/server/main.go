package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/fundlens/backoffice/internal/api"
	"github.com/fundlens/backoffice/internal/api/response"
	"github.com/fundlens/backoffice/internal/auth"
	"github.com/fundlens/backoffice/internal/config"
	"github.com/fundlens/backoffice/internal/database"
	"github.com/fundlens/backoffice/internal/repository"
	"github.com/fundlens/backoffice/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	response.SetDevelopment(cfg.Environment == "development")

	// Open database connection
	ctx := context.Background()
	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply pending migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// Create repositories
	fundRepo := repository.NewFundRepository(db)
	investmentRepo := repository.NewInvestmentRepository(db)
	transactionRepo := repository.NewTransactionRepository(db)
	userRepo := repository.NewUserRepository(db)

	// Create services
	tokens := auth.NewTokenManager(cfg.JWT.Secret, cfg.JWT.ExpiresIn)

	services := api.Services{
		System: service.NewSystemService(db),
		Fund:   service.NewFundService(fundRepo),
		Investment: service.NewInvestmentService(
			investmentRepo,
			fundRepo,
		),
		Transaction: service.NewTransactionService(
			transactionRepo,
			fundRepo,
		),
		User: service.NewUserService(userRepo),
		Auth: service.NewAuthService(userRepo, tokens),
	}

	// Create router
	router := api.NewRouter(services, tokens, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
