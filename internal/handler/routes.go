package handler

import (
	"quiz-brain/internal/metrics"
	"quiz-brain/internal/middleware"

	"github.com/gofiber/fiber/v2"
)

// RegisterRoutes mounts every public route on app.
func RegisterRoutes(app *fiber.App, quiz *QuizHandler, health *HealthHandler, vm *middleware.ValidationMiddleware) {
	app.Get("/", health.Root)
	app.Get("/health", health.Health)
	app.Get("/metrics", metrics.Handler())

	app.Post("/generate-quiz", vm.ValidateGenerateQuiz(), quiz.GenerateQuiz)
	app.Post("/analyze-performance", vm.ValidateAnalyzePerformance(), quiz.AnalyzePerformance)
}
