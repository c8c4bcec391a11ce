package service

import (
	"context"

	"quiz-brain/internal/domain"

	"go.uber.org/zap"
)

// AnalysisService diagnoses a finished quiz.
type AnalysisService interface {
	AnalyzePerformance(ctx context.Context, req *domain.AnalysisRequest) (*domain.AnalysisReport, error)
}

type analysisService struct {
	analyzer domain.PerformanceAnalyzer
	logger   *zap.Logger
}

// NewAnalysisService creates a new instance of analysisService. A nil
// analyzer makes every request fail with SERVICE_UNAVAILABLE.
func NewAnalysisService(analyzer domain.PerformanceAnalyzer, logger *zap.Logger) AnalysisService {
	return &analysisService{analyzer: analyzer, logger: logger}
}

// AnalyzePerformance implements AnalysisService. Model failures are
// returned as is; nothing in the report is dropped.
func (s *analysisService) AnalyzePerformance(ctx context.Context, req *domain.AnalysisRequest) (*domain.AnalysisReport, error) {
	if req == nil {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("topic"), domain.NewMissingFieldError("results")}
	}
	if errs := req.Validate(); len(errs) > 0 {
		return nil, errs
	}
	if s.analyzer == nil {
		return nil, domain.NewServiceUnavailableError()
	}

	report, err := s.analyzer.AnalyzePerformance(ctx, *req)
	if err != nil {
		s.logger.Error("Performance analysis failed",
			zap.String("topic", req.Topic),
			zap.Int("results", len(req.Results)),
			zap.Error(err),
		)
		return nil, err
	}

	s.logger.Info("Performance analyzed",
		zap.String("topic", req.Topic),
		zap.Int("results", len(req.Results)),
		zap.Int("wrong_answers", req.WrongAnswers()),
		zap.Int("errors_explained", len(report.Errors)),
	)
	return report, nil
}
