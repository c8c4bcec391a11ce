package handler

import (
	"quiz-brain/internal/domain"
	"quiz-brain/internal/dto"
	"quiz-brain/internal/middleware"
	"quiz-brain/internal/service"

	"github.com/gofiber/fiber/v2"
)

// QuizHandler handles quiz-related HTTP requests
type QuizHandler struct {
	quizService     service.QuizService
	analysisService service.AnalysisService
}

// NewQuizHandler creates a new QuizHandler instance
func NewQuizHandler(quizService service.QuizService, analysisService service.AnalysisService) *QuizHandler {
	return &QuizHandler{
		quizService:     quizService,
		analysisService: analysisService,
	}
}

// GenerateQuiz godoc
// @Summary Generate a quiz
// @Description Generates new multiple-choice questions on a topic, avoiding the ones already asked
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.GenerateQuizRequest true "Topic and number of questions"
// @Success 200 {object} dto.GenerateQuizResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /generate-quiz [post]
func (h *QuizHandler) GenerateQuiz(c *fiber.Ctx) error {
	req, ok := c.Locals(middleware.LocalQuizRequest).(*domain.QuizRequest)
	if !ok {
		return domain.NewInternalError("generate-quiz route is missing request validation", nil)
	}

	quiz, err := h.quizService.GenerateQuiz(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewGenerateQuizResponse(quiz))
}

// AnalyzePerformance godoc
// @Summary Analyze quiz performance
// @Description Diagnoses the likely cause of each wrong answer and recommends what to study
// @Tags quiz
// @Accept json
// @Produce json
// @Param request body dto.AnalyzePerformanceRequest true "Topic and answered questions"
// @Success 200 {object} dto.AnalyzePerformanceResponse
// @Failure 400 {object} dto.ErrorResponse
// @Failure 500 {object} dto.ErrorResponse
// @Router /analyze-performance [post]
func (h *QuizHandler) AnalyzePerformance(c *fiber.Ctx) error {
	req, ok := c.Locals(middleware.LocalAnalysisRequest).(*domain.AnalysisRequest)
	if !ok {
		return domain.NewInternalError("analyze-performance route is missing request validation", nil)
	}

	report, err := h.analysisService.AnalyzePerformance(c.UserContext(), req)
	if err != nil {
		return err
	}

	return c.JSON(dto.NewAnalyzePerformanceResponse(report))
}
