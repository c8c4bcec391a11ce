package middleware

import (
	"encoding/json"

	"quiz-brain/internal/domain"
	"quiz-brain/internal/dto"
	"quiz-brain/internal/validation"

	"github.com/gofiber/fiber/v2"
)

const (
	// LocalQuizRequest holds the validated *domain.QuizRequest.
	LocalQuizRequest = "validated_quiz_request"
	// LocalAnalysisRequest holds the validated *domain.AnalysisRequest.
	LocalAnalysisRequest = "validated_analysis_request"
)

// ValidationMiddleware provides request validation middleware
type ValidationMiddleware struct {
	validator *validation.Validator
}

// NewValidationMiddleware creates a new validation middleware instance
func NewValidationMiddleware(validator *validation.Validator) *ValidationMiddleware {
	return &ValidationMiddleware{
		validator: validator,
	}
}

// ValidateGenerateQuiz parses and validates the POST /generate-quiz body
func (vm *ValidationMiddleware) ValidateGenerateQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.GenerateQuizRequest
		if err := decodeBody(c, &req); err != nil {
			return err
		}

		validated, errors := vm.validator.ValidateGenerateQuizRequest(&req)
		if len(errors) > 0 {
			return errors // This will be handled by ErrorHandler middleware
		}

		c.Locals(LocalQuizRequest, validated)
		return c.Next()
	}
}

// ValidateAnalyzePerformance parses and validates the POST
// /analyze-performance body
func (vm *ValidationMiddleware) ValidateAnalyzePerformance() fiber.Handler {
	return func(c *fiber.Ctx) error {
		var req dto.AnalyzePerformanceRequest
		if err := decodeBody(c, &req); err != nil {
			return err
		}

		validated, errors := vm.validator.ValidateAnalyzePerformanceRequest(&req)
		if len(errors) > 0 {
			return errors
		}

		c.Locals(LocalAnalysisRequest, validated)
		return c.Next()
	}
}

// decodeBody reads a JSON body regardless of the Content-Type header.
func decodeBody(c *fiber.Ctx, out any) error {
	if err := json.Unmarshal(c.Body(), out); err != nil {
		return domain.NewInvalidRequestError("request body must be a JSON object", err)
	}
	return nil
}
