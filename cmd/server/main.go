// @title         user-service API
// @version       1.0
// @description   Minimal user-account service: registration, JWT login and user CRUD behind a bearer-token gate.
// @BasePath      /api
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Authorization header, format: "Bearer <JWT>".
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	swagger "github.com/gofiber/swagger"

	_ "github.com/nurbekov/user-service/docs"

	apihttp "github.com/nurbekov/user-service/api/http"
	"github.com/nurbekov/user-service/api/http/handlers"
	"github.com/nurbekov/user-service/migrations"
	"github.com/nurbekov/user-service/pkg/config"
	"github.com/nurbekov/user-service/pkg/health"
	healthpg "github.com/nurbekov/user-service/pkg/health/checkers"
	pgrepo "github.com/nurbekov/user-service/pkg/repository/postgres"
	"github.com/nurbekov/user-service/pkg/security/jwt"
	"github.com/nurbekov/user-service/pkg/storage/postgres"
	"github.com/nurbekov/user-service/pkg/user"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	// Load configuration from env/.env; missing secret or DSN is fatal here,
	// never at first request.
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	// Connect to PostgreSQL
	pool, err := postgres.Connect(context.Background(), cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("postgres connect: %v", err)
	}
	defer pool.Close()

	// Apply schema migrations (users table with UNIQUE email)
	if err := migrations.Up(context.Background(), cfg.DatabaseURL); err != nil {
		log.Fatalf("migrations: %v", err)
	}

	// Wire dependencies (Clean Architecture)
	userRepo := pgrepo.NewUserRepository(pool)
	jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, time.Duration(cfg.JWTTTLMinutes)*time.Minute)
	userUC := user.NewService(userRepo, jwtGen)

	authHandler := handlers.NewAuthHandler(userUC, logger)
	userHandler := handlers.NewUserHandler(userUC, logger)

	// Health service: compose checkers
	readiness := health.NewService(healthpg.NewPostgresChecker(pool))
	healthHandler := handlers.NewHealthHandler(readiness)

	// JWT auth middleware for protected routes
	authMW := jwt.NewAuthMiddleware(jwtGen)

	app := fiber.New()
	app.Use(cors.New())

	// Register routes
	apihttp.Register(app, authHandler, userHandler, healthHandler, authMW)

	// Swagger UI
	app.Get("/swagger/*", swagger.HandlerDefault)

	// Start server
	logger.Info("HTTP server listening", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
