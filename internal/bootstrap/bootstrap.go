// Package bootstrap builds the long-lived collaborators shared by the
// executables under cmd/.
package bootstrap

import (
	"context"
	"errors"
	"fmt"

	"quiz-brain/internal/adapter"
	"quiz-brain/internal/adapter/evaluator"
	"quiz-brain/internal/adapter/quizgen"
	"quiz-brain/internal/cache"
	"quiz-brain/internal/config"
	"quiz-brain/internal/database"
	"quiz-brain/internal/domain"
	"quiz-brain/internal/llm"
	"quiz-brain/internal/repository"
	"quiz-brain/internal/service"

	"go.uber.org/zap"
)

// Store is an opened question store together with its cleanup.
type Store struct {
	domain.QuestionStore
	close func() error
}

// Close releases the backend connection. It is safe on a nil Store.
func (s *Store) Close() error {
	if s == nil || s.close == nil {
		return nil
	}
	return s.close()
}

// OpenStore connects the backend selected by store.backend. Missing
// credentials yield (nil, nil) so callers can run degraded. An unreachable
// server is logged and the store is still returned: each call then fails
// with STORE_UNAVAILABLE until the server comes back.
func OpenStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Store, error) {
	store, err := openStore(ctx, cfg, logger)
	if errors.Is(err, domain.ErrStoreNotConfigured) {
		logger.Warn("Question store is not configured, generation is disabled",
			zap.String("backend", cfg.Store.Backend))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	logger.Info("Question store initialized", zap.String("backend", cfg.Store.Backend))
	return store, nil
}

func openStore(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*Store, error) {
	switch cfg.Store.Backend {
	case config.StoreFirestore:
		client, err := adapter.NewFirestoreClient(ctx, cfg.Store.Firestore)
		if err != nil {
			return nil, err
		}
		fs := adapter.NewFirestoreQuestionStore(client, cfg.Store.Firestore, logger)
		return &Store{QuestionStore: fs, close: fs.Close}, nil

	case config.StoreOracle:
		if cfg.DB.Host == "" {
			return nil, domain.ErrStoreNotConfigured
		}
		db, err := database.OpenOracleDB(cfg.GetDSN())
		if err != nil {
			return nil, err
		}
		if err := database.Ping(ctx, db); err != nil {
			logger.Warn("Oracle is unreachable, store calls fail until it recovers",
				zap.Bool("auto_migrate_skipped", cfg.DB.AutoMigrate), zap.Error(err))
		} else if cfg.DB.AutoMigrate {
			if err := database.RunMigrations(ctx, db, database.Migrations, logger); err != nil {
				db.Close()
				return nil, err
			}
		}
		txManager := repository.NewTransactionManagerAdapter(db, logger)
		return &Store{QuestionStore: repository.NewQuestionDatabaseAdapter(db, txManager), close: db.Close}, nil

	case config.StoreRedis:
		if cfg.Redis.Address == "" {
			return nil, domain.ErrStoreNotConfigured
		}
		client, err := cache.NewRedisClient(cfg.Redis)
		if err != nil {
			return nil, err
		}
		if err := cache.Ping(ctx, client); err != nil {
			logger.Warn("Redis is unreachable, store calls fail until it recovers",
				zap.String("address", cfg.Redis.Address), zap.Error(err))
		}
		return &Store{QuestionStore: adapter.NewRedisQuestionStore(client, logger), close: client.Close}, nil
	}
	return nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
}

// OpenProvider builds the configured model provider. A missing API key
// yields (nil, nil).
func OpenProvider(ctx context.Context, cfg *config.Config, logger *zap.Logger) (llm.Provider, error) {
	provider, err := llm.NewProvider(ctx, cfg.LLM, logger)
	if errors.Is(err, llm.ErrNotConfigured) {
		logger.Warn("Model provider is not configured, generation is disabled",
			zap.String("provider", cfg.LLM.Provider), zap.Error(err))
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	logger.Info("Model provider initialized",
		zap.String("provider", cfg.LLM.Provider),
		zap.String("model", provider.ModelID()))
	return provider, nil
}

// Services groups the orchestrators built on top of the store and provider.
type Services struct {
	Quiz     service.QuizService
	Analysis service.AnalysisService
	Batch    service.BatchService
}

// NewServices wires the orchestrators. store and provider may be nil.
func NewServices(cfg *config.Config, store *Store, provider llm.Provider, logger *zap.Logger) *Services {
	var (
		questions domain.QuestionStore
		generator domain.QuizGenerationService
		analyzer  domain.PerformanceAnalyzer
	)
	if store != nil {
		questions = store
	}
	if provider != nil {
		generator = quizgen.NewLLMQuizGenerator(provider, quizgen.Options{
			Language:    cfg.Generation.Language,
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
		}, logger)
		analyzer = evaluator.NewLLMAnalyzer(provider, evaluator.Options{
			Language:    cfg.Generation.Language,
			LearnerName: cfg.Generation.LearnerName,
			Temperature: cfg.LLM.Temperature,
			MaxTokens:   cfg.LLM.MaxTokens,
		}, logger)
	}

	quiz := service.NewQuizService(questions, generator, cfg.Generation, cfg.Store.Timeout, logger)
	return &Services{
		Quiz:     quiz,
		Analysis: service.NewAnalysisService(analyzer, logger),
		Batch:    service.NewBatchService(quiz, cfg.Batch.Concurrency, logger),
	}
}
