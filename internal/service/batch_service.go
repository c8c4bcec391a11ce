package service

import (
	"context"
	"time"

	"quiz-brain/internal/domain"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// BatchResult is the outcome for one topic of a batch run.
type BatchResult struct {
	Topic     string
	Generated int
	Dropped   int
	Err       error
}

// BatchSummary aggregates a batch run. Results keep the order of the input
// topics.
type BatchSummary struct {
	Results   []BatchResult
	Generated int
	Failed    int
}

// BatchService pre-generates questions for many topics.
type BatchService interface {
	GenerateForTopics(ctx context.Context, topics []string, count int) (*BatchSummary, error)
}

type batchService struct {
	quizService QuizService
	concurrency int
	logger      *zap.Logger
}

// NewBatchService creates a new instance of batchService.
func NewBatchService(quizService QuizService, concurrency int, logger *zap.Logger) BatchService {
	if concurrency <= 0 {
		concurrency = 1
	}
	return &batchService{
		quizService: quizService,
		concurrency: concurrency,
		logger:      logger,
	}
}

// GenerateForTopics runs GenerateQuiz once per topic. A failing topic is
// recorded in its result and does not stop the others. The returned error
// is only set when ctx is cancelled before the run completes.
func (s *batchService) GenerateForTopics(ctx context.Context, topics []string, count int) (*BatchSummary, error) {
	start := time.Now()
	s.logger.Info("Starting batch quiz generation",
		zap.Int("topics", len(topics)),
		zap.Int("questions_per_topic", count),
		zap.Int("concurrency", s.concurrency),
	)

	results := make([]BatchResult, len(topics))
	g := new(errgroup.Group)
	g.SetLimit(s.concurrency)

	for i, topic := range topics {
		g.Go(func() error {
			results[i] = s.generateTopic(ctx, topic, count)
			return nil
		})
	}
	_ = g.Wait()

	summary := &BatchSummary{Results: results}
	for _, r := range results {
		if r.Err != nil {
			summary.Failed++
			continue
		}
		summary.Generated += r.Generated
	}

	s.logger.Info("Batch quiz generation finished",
		zap.Int("generated", summary.Generated),
		zap.Int("failed_topics", summary.Failed),
		zap.Duration("elapsed", time.Since(start)),
	)
	return summary, ctx.Err()
}

func (s *batchService) generateTopic(ctx context.Context, topic string, count int) BatchResult {
	if err := ctx.Err(); err != nil {
		return BatchResult{Topic: topic, Err: err}
	}

	quiz, err := s.quizService.GenerateQuiz(ctx, &domain.QuizRequest{Topic: topic, Count: count})
	if err != nil {
		s.logger.Error("Batch generation failed for topic", zap.String("topic", topic), zap.Error(err))
		return BatchResult{Topic: topic, Err: err}
	}
	return BatchResult{
		Topic:     topic,
		Generated: len(quiz.Questions),
		Dropped:   quiz.Dropped,
	}
}
