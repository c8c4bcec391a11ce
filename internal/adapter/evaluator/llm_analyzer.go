package evaluator

import (
	"context"
	"encoding/json"

	"quiz-brain/internal/domain"
	"quiz-brain/internal/llm"

	"go.uber.org/zap"
)

// Options tune the analysis request.
type Options struct {
	Language    string
	LearnerName string
	Temperature float64
	MaxTokens   int
}

// llmAnalyzer implements domain.PerformanceAnalyzer
type llmAnalyzer struct {
	provider llm.Provider
	opts     Options
	logger   *zap.Logger
}

// NewLLMAnalyzer creates a new instance of llmAnalyzer
func NewLLMAnalyzer(provider llm.Provider, opts Options, logger *zap.Logger) domain.PerformanceAnalyzer {
	if opts.Language == "" {
		opts.Language = "English"
	}
	return &llmAnalyzer{
		provider: provider,
		opts:     opts,
		logger:   logger,
	}
}

// AnalyzePerformance implements domain.PerformanceAnalyzer. Schema
// violations are returned as errors; nothing is dropped.
func (a *llmAnalyzer) AnalyzePerformance(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisReport, error) {
	a.logger.Info("Analyzing quiz performance",
		zap.String("topic", req.Topic),
		zap.Int("answers", len(req.Results)),
		zap.Int("wrong_answers", req.WrongAnswers()),
	)

	resp, err := a.provider.Generate(ctx, llm.Request{
		Prompt:      BuildAnalysisPrompt(req, a.opts.LearnerName, a.opts.Language),
		Schema:      AnalysisSchema,
		MaxTokens:   a.opts.MaxTokens,
		Temperature: a.opts.Temperature,
	})
	if err != nil {
		a.logger.Error("Performance analysis failed", zap.String("topic", req.Topic), zap.Error(err))
		return nil, llm.AsDomainError(err)
	}

	var out analysisOutput
	if err := json.Unmarshal(resp.Content, &out); err != nil {
		return nil, domain.NewLLMMalformedOutputError(err)
	}

	report := &domain.AnalysisReport{
		OverallDiagnosis: out.Analise.DiagnosticoGeral,
		Errors:           make([]domain.ErrorAnalysis, 0, len(out.Analise.AnaliseDosErros)),
	}
	for _, e := range out.Analise.AnaliseDosErros {
		report.Errors = append(report.Errors, domain.ErrorAnalysis{
			QuestionText:   e.Pergunta,
			LikelyCause:    e.CausaProvavel,
			Recommendation: e.Recomendacao,
		})
	}
	return report, nil
}
