package validation

import (
	"fmt"
	"strings"

	"quiz-brain/internal/domain"
	"quiz-brain/internal/dto"
)

// Validator turns wire requests into validated domain requests
type Validator struct {
	maxQuestions int
}

// NewValidator creates a new validator instance
func NewValidator(maxQuestions int) *Validator {
	return &Validator{maxQuestions: maxQuestions}
}

// ValidateGenerateQuizRequest validates the generate quiz request
func (v *Validator) ValidateGenerateQuizRequest(req *dto.GenerateQuizRequest) (*domain.QuizRequest, domain.ValidationErrors) {
	var errors domain.ValidationErrors

	if err := domain.ValidateTopic("topic", req.Topic); err != nil {
		errors = append(errors, *err)
	}

	count := 0
	if req.Count == nil {
		errors = append(errors, domain.NewMissingFieldError("count"))
	} else if count = *req.Count; count <= 0 || count > v.maxQuestions {
		errors = append(errors, domain.NewOutOfRangeError("count", count, 1, v.maxQuestions))
	}

	if len(errors) > 0 {
		return nil, errors
	}
	return &domain.QuizRequest{Topic: strings.TrimSpace(req.Topic), Count: count}, nil
}

// ValidateAnalyzePerformanceRequest validates the analyze performance request
func (v *Validator) ValidateAnalyzePerformanceRequest(req *dto.AnalyzePerformanceRequest) (*domain.AnalysisRequest, domain.ValidationErrors) {
	var errors domain.ValidationErrors

	if err := domain.ValidateTopic("topic", req.Topic); err != nil {
		errors = append(errors, *err)
	}

	if req.Results == nil {
		errors = append(errors, domain.NewMissingFieldError("results"))
	}

	results := make([]domain.AnswerResult, 0, len(req.Results))
	for i, r := range req.Results {
		if strings.TrimSpace(r.Pergunta) == "" {
			errors = append(errors, domain.NewMissingFieldError(fmt.Sprintf("results[%d].pergunta", i)))
		}
		if r.Acertou == nil {
			errors = append(errors, domain.NewMissingFieldError(fmt.Sprintf("results[%d].acertou", i)))
			continue
		}
		results = append(results, domain.AnswerResult{
			QuestionText: r.Pergunta,
			GivenAnswer:  r.RespostaDada,
			WasCorrect:   *r.Acertou,
		})
	}

	if len(errors) > 0 {
		return nil, errors
	}
	return &domain.AnalysisRequest{Topic: strings.TrimSpace(req.Topic), Results: results}, nil
}
