package dto

import "quiz-brain/internal/domain"

// GenerateQuizRequest is the body of POST /generate-quiz
// @Description Request body for generating a quiz
type GenerateQuizRequest struct {
	Topic string `json:"topic" example:"Photosynthesis"`
	Count *int   `json:"count" example:"5"`
}

// AnswerResultRequest is one answered question of a finished quiz
type AnswerResultRequest struct {
	Pergunta     string `json:"pergunta"`
	RespostaDada string `json:"respostaDada"`
	Acertou      *bool  `json:"acertou"`
}

// AnalyzePerformanceRequest is the body of POST /analyze-performance.
// A missing results field stays nil; an empty array does not.
// @Description Request body for analyzing quiz performance
type AnalyzePerformanceRequest struct {
	Topic   string                `json:"topic" example:"Photosynthesis"`
	Results []AnswerResultRequest `json:"results"`
}

// QuestionResponse represents a generated question in the API response
// @Description Multiple-choice question
type QuestionResponse struct {
	Pergunta        string   `json:"pergunta"`
	Opcoes          []string `json:"opcoes"`
	RespostaCorreta string   `json:"respostaCorreta"`
	Explicacao      string   `json:"explicacao"`
}

// GenerateQuizResponse wraps the generated questions
type GenerateQuizResponse struct {
	Quiz []QuestionResponse `json:"quiz"`
}

// ErrorAnalysisResponse explains one wrong answer
type ErrorAnalysisResponse struct {
	Pergunta      string `json:"pergunta"`
	CausaProvavel string `json:"causaProvavel"`
	Recomendacao  string `json:"recomendacao"`
}

// AnalysisResponse is the diagnosis of a finished quiz
type AnalysisResponse struct {
	DiagnosticoGeral string                  `json:"diagnosticoGeral"`
	AnaliseDosErros  []ErrorAnalysisResponse `json:"analiseDosErros"`
}

// AnalyzePerformanceResponse wraps the analysis
type AnalyzePerformanceResponse struct {
	Analise AnalysisResponse `json:"analise"`
}

// HealthResponse reports which collaborators were configured at startup
type HealthResponse struct {
	Status string `json:"status" example:"ok"`
	Store  string `json:"store" example:"configured"`
	Model  string `json:"model" example:"missing"`
}

// ErrorResponse represents an error in the API response
type ErrorResponse struct {
	Error   string                   `json:"error"`
	Code    string                   `json:"code"`
	Details []domain.ValidationError `json:"details,omitempty"`
}

// NewGenerateQuizResponse converts a domain quiz. An empty quiz renders as
// an empty array.
func NewGenerateQuizResponse(quiz *domain.Quiz) GenerateQuizResponse {
	resp := GenerateQuizResponse{Quiz: make([]QuestionResponse, 0, len(quiz.Questions))}
	for _, q := range quiz.Questions {
		resp.Quiz = append(resp.Quiz, QuestionResponse{
			Pergunta:        q.Text,
			Opcoes:          q.Options,
			RespostaCorreta: q.CorrectAnswer,
			Explicacao:      q.Explanation,
		})
	}
	return resp
}

// NewAnalyzePerformanceResponse converts a domain report.
func NewAnalyzePerformanceResponse(report *domain.AnalysisReport) AnalyzePerformanceResponse {
	errs := make([]ErrorAnalysisResponse, 0, len(report.Errors))
	for _, e := range report.Errors {
		errs = append(errs, ErrorAnalysisResponse{
			Pergunta:      e.QuestionText,
			CausaProvavel: e.LikelyCause,
			Recomendacao:  e.Recommendation,
		})
	}
	return AnalyzePerformanceResponse{
		Analise: AnalysisResponse{
			DiagnosticoGeral: report.OverallDiagnosis,
			AnaliseDosErros:  errs,
		},
	}
}
