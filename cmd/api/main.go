// @title Quiz Brain API
// @version 1.0
// @description Generates multiple-choice quizzes that avoid repeating earlier questions, and diagnoses quiz mistakes.
// @contact.name API Support
// @license.name Apache 2.0
// @license.url http://www.apache.org/licenses/LICENSE-2.0.html
// @host localhost:8080
// @BasePath /
// @schemes http https
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	_ "quiz-brain/cmd/api/docs"
	"quiz-brain/internal/bootstrap"
	"quiz-brain/internal/config"
	"quiz-brain/internal/handler"
	"quiz-brain/internal/logger"
	"quiz-brain/internal/metrics"
	"quiz-brain/internal/middleware"
	"quiz-brain/internal/validation"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialize logger
	if err := logger.Initialize(cfg.Logger); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	appLogger := logger.Get()
	defer logger.Sync()

	ctx := context.Background()

	// Question store and model provider stay nil when their credentials are
	// missing; the generation routes then answer SERVICE_UNAVAILABLE.
	store, err := bootstrap.OpenStore(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize question store", zap.Error(err))
	}
	defer func() {
		if err := store.Close(); err != nil {
			appLogger.Warn("Failed to close question store", zap.Error(err))
		}
	}()

	provider, err := bootstrap.OpenProvider(ctx, cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize model provider", zap.Error(err))
	}

	// Initialize services and handlers
	services := bootstrap.NewServices(cfg, store, provider, appLogger)
	quizHandler := handler.NewQuizHandler(services.Quiz, services.Analysis)
	healthHandler := handler.NewHealthHandler(store != nil, provider != nil)
	validationMiddleware := middleware.NewValidationMiddleware(validation.NewValidator(cfg.Generation.MaxQuestions))

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "quiz-brain",
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.ReadTimeout,
		BodyLimit:    1 * 1024 * 1024,
		ErrorHandler: middleware.ErrorHandler(),
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,OPTIONS",
		AllowHeaders: "Origin,Content-Type,Accept,X-Request-ID",
		MaxAge:       300,
	}))
	app.Use(middleware.RequestLogger())
	app.Use(metrics.Middleware())
	app.Use(recover.New())

	// Swagger handler
	app.Get("/swagger/*", swagger.HandlerDefault)

	handler.RegisterRoutes(app, quizHandler, healthHandler, validationMiddleware)

	// Start server
	go func() {
		appLogger.Info("Starting server",
			zap.Int("port", cfg.Server.Port),
			zap.String("env", cfg.Logger.Env),
			zap.Bool("store_configured", store != nil),
			zap.Bool("model_configured", provider != nil),
		)
		if err := app.Listen(":" + strconv.Itoa(cfg.Server.Port)); err != nil {
			appLogger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := app.ShutdownWithContext(shutdownCtx); err != nil {
		appLogger.Error("Server forced to shutdown", zap.Error(err))
	}
	appLogger.Info("Server exited gracefully")
}
