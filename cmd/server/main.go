package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"learnbuddy-backend/internal/config"
	"learnbuddy-backend/internal/database"
	"learnbuddy-backend/internal/handlers"
	"learnbuddy-backend/internal/middleware"
	"learnbuddy-backend/internal/modelbackend"
	"learnbuddy-backend/internal/repository"
	"learnbuddy-backend/internal/router"
	"learnbuddy-backend/internal/services"
)

func main() {
	log.Println("🚀 Starting LearnBuddy Backend...")

	// ──── Step 1: Load Environment Variables ────
	cfg := config.Load()
	log.Println("✓ Environment variables loaded")

	// ──── Step 2: Initialize PostgreSQL Connection Pool ────
	pool, err := database.NewPostgresPool(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("✗ PostgreSQL connection failed: %v", err)
	}
	defer pool.Close()
	log.Println("✓ PostgreSQL connected")

	// ──── Step 3: Initialize Redis Client ────
	redisClient, err := database.NewRedisClient(cfg.RedisURL)
	if err != nil {
		log.Fatalf("✗ Redis connection failed: %v", err)
	}
	defer redisClient.Close()
	log.Println("✓ Redis connected")

	// ──── Step 4: Run Database Migrations ────
	if err := database.RunMigrations(pool, "migrations"); err != nil {
		log.Fatalf("✗ Database migration failed: %v", err)
	}
	log.Println("✓ Database migrations applied")

	// ──── Initialize Repositories ────
	userRepo := repository.NewUserRepo(pool)
	signupRepo := repository.NewSignupRepo(pool)
	scoreRepo := repository.NewScoreRepo(pool)

	// ──── Step 5: Startup Maintenance ────
	maintenance := services.NewMaintenanceService(signupRepo)
	if err := maintenance.ClearPendingSignups(context.Background()); err != nil {
		log.Fatalf("✗ Pending signup cleanup failed: %v", err)
	}

	// ──── Initialize Services ────
	jwtAuth := middleware.NewJWTAuth(cfg.JWTSecret)
	emailService := services.NewEmailService(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.SMTPFrom)
	authService := services.NewAuthService(userRepo, signupRepo, redisClient, jwtAuth, emailService)

	backend := modelbackend.NewClient(cfg.ModelBackendURL, time.Duration(cfg.ModelBackendTimeout)*time.Second)
	quizService := services.NewQuizService(userRepo, scoreRepo, backend)

	// ──── Initialize Handlers ────
	authHandler := handlers.NewAuthHandler(authService)
	userHandler := handlers.NewUserHandler(userRepo)
	quizHandler := handlers.NewQuizHandler(quizService)

	// ──── Step 6: Start HTTP Server ────
	r := router.New(jwtAuth, authHandler, userHandler, quizHandler, cfg.FrontendURL)

	// Write timeout must outlast the model backend call, which can run for
	// minutes on slow inference.
	server := &http.Server{
		Addr:         fmt.Sprintf(":%s", cfg.Port),
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: time.Duration(cfg.ModelBackendTimeout+15) * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown
	go func() {
		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		<-sigChan

		log.Println("Shutting down...")
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		server.Shutdown(ctx)
	}()

	log.Printf("✓ LearnBuddy Backend ready on http://localhost:%s", cfg.Port)

	if err := server.ListenAndServe(); err != http.ErrServerClosed {
		log.Fatalf("Server error: %v", err)
	}
}
