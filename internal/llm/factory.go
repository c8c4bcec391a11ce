package llm

import (
	"context"
	"fmt"
	"net/http"

	"quiz-brain/internal/config"

	"go.uber.org/zap"
)

// NewProvider builds the provider selected by cfg, wrapped with the
// configured timeout and instrumentation. It returns an error wrapping
// ErrNotConfigured when credentials are missing.
func NewProvider(ctx context.Context, cfg config.LLMConfig, logger *zap.Logger) (Provider, error) {
	var (
		p   Provider
		err error
	)

	switch cfg.Provider {
	case config.ProviderGemini:
		p, err = NewGeminiProvider(ctx, GeminiConfig{
			APIKey:  cfg.Gemini.APIKey,
			Model:   cfg.Gemini.Model,
			BaseURL: cfg.Gemini.BaseURL,
		})
	case config.ProviderOllama:
		p, err = NewOllamaProvider(OllamaConfig{
			ServerURL:  cfg.Ollama.ServerURL,
			Model:      cfg.Ollama.Model,
			HTTPClient: &http.Client{Timeout: cfg.Timeout},
		})
	case config.ProviderOpenAI:
		p, err = NewOpenAIProvider(OpenAIConfig{
			APIKey:  cfg.OpenAI.APIKey,
			Model:   cfg.OpenAI.Model,
			BaseURL: cfg.OpenAI.BaseURL,
		})
	case config.ProviderMock:
		p = NewMockProvider()
	default:
		return nil, fmt.Errorf("unknown llm provider %q", cfg.Provider)
	}
	if err != nil {
		return nil, err
	}

	p = WithTimeout(p, cfg.Timeout)
	return WithInstrumentation(p, cfg.Provider, logger), nil
}
