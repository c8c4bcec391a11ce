package bootstrap

import (
	"context"
	"errors"
	"testing"

	"quiz-brain/internal/config"
	"quiz-brain/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *config.Config {
	return &config.Config{
		LLM:        config.LLMConfig{Provider: config.ProviderGemini},
		Store:      config.StoreConfig{Backend: config.StoreFirestore},
		Generation: config.GenerationConfig{MaxQuestions: 50},
		Batch:      config.BatchConfig{Concurrency: 2},
	}
}

func TestOpenStore_NotConfigured(t *testing.T) {
	t.Setenv("FIRESTORE_EMULATOR_HOST", "")

	for _, backend := range []string{config.StoreFirestore, config.StoreOracle, config.StoreRedis} {
		t.Run(backend, func(t *testing.T) {
			cfg := testConfig()
			cfg.Store.Backend = backend

			store, err := OpenStore(context.Background(), cfg, zap.NewNop())
			require.NoError(t, err)
			assert.Nil(t, store)
			assert.NoError(t, store.Close())
		})
	}
}

func TestOpenStore_UnreachableServerStaysUp(t *testing.T) {
	t.Run("redis", func(t *testing.T) {
		cfg := testConfig()
		cfg.Store.Backend = config.StoreRedis
		cfg.Redis.Address = "127.0.0.1:1"

		store, err := OpenStore(context.Background(), cfg, zap.NewNop())
		require.NoError(t, err)
		require.NotNil(t, store)
		defer store.Close()

		_, err = store.ListQuestions(context.Background(), "Optics")
		var de *domain.DomainError
		require.True(t, errors.As(err, &de))
		assert.Equal(t, domain.CodeStoreUnavailable, de.Code)
	})

	t.Run("oracle", func(t *testing.T) {
		cfg := testConfig()
		cfg.Store.Backend = config.StoreOracle
		cfg.DB = config.DBConfig{Host: "127.0.0.1", Port: 1, User: "quizbrain", Password: "secret", DBName: "FREEPDB1", AutoMigrate: true}

		store, err := OpenStore(context.Background(), cfg, zap.NewNop())
		require.NoError(t, err)
		require.NotNil(t, store)
		assert.NoError(t, store.Close())
	})
}

func TestOpenStore_UnknownBackend(t *testing.T) {
	cfg := testConfig()
	cfg.Store.Backend = "mongodb"

	_, err := OpenStore(context.Background(), cfg, zap.NewNop())
	assert.ErrorContains(t, err, `unknown store backend "mongodb"`)
}

func TestOpenProvider(t *testing.T) {
	t.Run("MissingKey", func(t *testing.T) {
		provider, err := OpenProvider(context.Background(), testConfig(), zap.NewNop())
		require.NoError(t, err)
		assert.Nil(t, provider)
	})

	t.Run("Mock", func(t *testing.T) {
		cfg := testConfig()
		cfg.LLM.Provider = config.ProviderMock
		provider, err := OpenProvider(context.Background(), cfg, zap.NewNop())
		require.NoError(t, err)
		assert.Equal(t, "mock", provider.ModelID())
	})
}

func TestNewServices_Degraded(t *testing.T) {
	services := NewServices(testConfig(), nil, nil, zap.NewNop())

	_, err := services.Quiz.GenerateQuiz(context.Background(), &domain.QuizRequest{Topic: "Optics", Count: 1})
	var de *domain.DomainError
	require.True(t, errors.As(err, &de))
	assert.Equal(t, domain.CodeServiceUnavailable, de.Code)

	_, err = services.Analysis.AnalyzePerformance(context.Background(), &domain.AnalysisRequest{Topic: "Optics"})
	require.True(t, errors.As(err, &de))
	assert.Equal(t, domain.CodeServiceUnavailable, de.Code)
}
