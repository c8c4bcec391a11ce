package service

import (
	"context"
	"time"

	"quiz-brain/internal/config"
	"quiz-brain/internal/domain"
	"quiz-brain/internal/metrics"

	"go.uber.org/zap"
)

// QuizService defines the interface for quiz generation
type QuizService interface {
	GenerateQuiz(ctx context.Context, req *domain.QuizRequest) (*domain.Quiz, error)
}

// quizService implements QuizService
type quizService struct {
	store        domain.QuestionStore
	generator    domain.QuizGenerationService
	cfg          config.GenerationConfig
	storeTimeout time.Duration
	logger       *zap.Logger
}

// NewQuizService creates a new instance of quizService. store and generator
// may be nil, in which case every request fails with SERVICE_UNAVAILABLE.
func NewQuizService(
	store domain.QuestionStore,
	generator domain.QuizGenerationService,
	cfg config.GenerationConfig,
	storeTimeout time.Duration,
	logger *zap.Logger,
) QuizService {
	return &quizService{
		store:        store,
		generator:    generator,
		cfg:          cfg,
		storeTimeout: storeTimeout,
		logger:       logger,
	}
}

// GenerateQuiz implements QuizService
func (s *quizService) GenerateQuiz(ctx context.Context, req *domain.QuizRequest) (*domain.Quiz, error) {
	if req == nil {
		return nil, domain.ValidationErrors{domain.NewMissingFieldError("topic"), domain.NewMissingFieldError("count")}
	}
	if errs := req.Validate(s.cfg.MaxQuestions); len(errs) > 0 {
		return nil, errs
	}
	if s.store == nil || s.generator == nil {
		return nil, domain.NewServiceUnavailableError()
	}

	existing, err := s.listQuestions(ctx, req.Topic)
	if err != nil {
		return nil, err
	}
	exclusions := domain.QuestionTexts(existing)

	candidates, err := s.generator.GenerateQuizCandidates(ctx, req.Topic, exclusions, req.Count)
	if err != nil {
		s.logger.Error("Failed to generate quiz candidates",
			zap.String("topic", req.Topic),
			zap.Error(err),
		)
		return nil, err
	}

	valid, dropped := s.filterCandidates(req.Topic, candidates)
	if len(valid) > req.Count {
		valid = valid[:req.Count]
	}

	if err := s.appendQuestions(ctx, req.Topic, valid); err != nil {
		return nil, err
	}
	metrics.QuestionsGenerated.Add(float64(len(valid)))

	s.logger.Info("Quiz generated",
		zap.String("topic", req.Topic),
		zap.Int("requested", req.Count),
		zap.Int("returned", len(valid)),
		zap.Int("dropped", dropped),
		zap.Int("exclusions", len(exclusions)),
	)

	return &domain.Quiz{
		Topic:     req.Topic,
		Questions: valid,
		Requested: req.Count,
		Dropped:   dropped,
	}, nil
}

func (s *quizService) listQuestions(ctx context.Context, topic string) ([]domain.Question, error) {
	ctx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	questions, err := s.store.ListQuestions(ctx, topic)
	if err != nil {
		s.logger.Error("Failed to list stored questions", zap.String("topic", topic), zap.Error(err))
		return nil, asStoreError("failed to list stored questions", err)
	}
	return questions, nil
}

func (s *quizService) appendQuestions(ctx context.Context, topic string, questions []domain.Question) error {
	if len(questions) == 0 {
		return nil
	}

	ctx, cancel := s.withStoreTimeout(ctx)
	defer cancel()

	if err := s.store.AppendQuestions(ctx, topic, questions); err != nil {
		s.logger.Error("Failed to persist generated questions",
			zap.String("topic", topic),
			zap.Int("count", len(questions)),
			zap.Error(err),
		)
		return asStoreError("failed to persist generated questions", err)
	}
	return nil
}

// filterCandidates keeps the candidates that satisfy Question.Validate,
// in model order.
func (s *quizService) filterCandidates(topic string, candidates []domain.Question) ([]domain.Question, int) {
	valid := make([]domain.Question, 0, len(candidates))
	dropped := 0
	for i, q := range candidates {
		if err := q.Validate(); err != nil {
			dropped++
			metrics.QuestionsDropped.Inc()
			s.logger.Warn("Dropping invalid question candidate",
				zap.String("topic", topic),
				zap.Int("index", i),
				zap.String("question", q.Text),
				zap.Error(err),
			)
			continue
		}
		valid = append(valid, q)
	}
	return valid, dropped
}

func (s *quizService) withStoreTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.storeTimeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, s.storeTimeout)
}
