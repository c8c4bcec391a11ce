package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/ollama"
	"github.com/tmc/langchaingo/llms/openai"
)

// OllamaConfig configures a local Ollama server.
type OllamaConfig struct {
	ServerURL  string
	Model      string
	HTTPClient *http.Client
}

// OpenAIConfig configures an OpenAI-compatible endpoint.
type OpenAIConfig struct {
	APIKey  string
	Model   string
	BaseURL string
}

// LangChainProvider implements Provider on top of a langchaingo model.
// These backends only offer a JSON mode, so the schema travels inside the
// prompt and is enforced by validation afterwards.
type LangChainProvider struct {
	model   llms.Model
	modelID string
}

// NewLangChainProvider wraps an already constructed langchaingo model.
func NewLangChainProvider(model llms.Model, modelID string) *LangChainProvider {
	return &LangChainProvider{model: model, modelID: modelID}
}

// NewOllamaProvider creates a provider backed by an Ollama server.
func NewOllamaProvider(cfg OllamaConfig) (*LangChainProvider, error) {
	if cfg.ServerURL == "" {
		return nil, fmt.Errorf("ollama server URL is required: %w", ErrNotConfigured)
	}
	opts := []ollama.Option{
		ollama.WithServerURL(cfg.ServerURL),
		ollama.WithModel(cfg.Model),
		ollama.WithFormat("json"),
	}
	if cfg.HTTPClient != nil {
		opts = append(opts, ollama.WithHTTPClient(cfg.HTTPClient))
	}
	model, err := ollama.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create Ollama client: %w", err)
	}
	return NewLangChainProvider(model, cfg.Model), nil
}

// NewOpenAIProvider creates a provider backed by the OpenAI chat API.
func NewOpenAIProvider(cfg OpenAIConfig) (*LangChainProvider, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("openai API key is required: %w", ErrNotConfigured)
	}
	opts := []openai.Option{
		openai.WithToken(cfg.APIKey),
		openai.WithModel(cfg.Model),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}
	model, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create OpenAI client: %w", err)
	}
	return NewLangChainProvider(model, cfg.Model), nil
}

func (p *LangChainProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := checkRequest(req); err != nil {
		return nil, err
	}

	opts := []llms.CallOption{llms.WithJSONMode()}
	if req.MaxTokens > 0 {
		opts = append(opts, llms.WithMaxTokens(req.MaxTokens))
	}
	if req.Temperature > 0 {
		opts = append(opts, llms.WithTemperature(req.Temperature))
	}

	text, err := llms.GenerateFromSinglePrompt(ctx, p.model, schemaPrompt(req), opts...)
	if err != nil {
		return nil, &ErrUpstream{Err: err}
	}

	content := json.RawMessage(strings.TrimSpace(text))
	if err := validateContent(req.Schema, content); err != nil {
		return nil, err
	}
	return &Response{Content: content, Model: p.modelID}, nil
}

func (p *LangChainProvider) ModelID() string {
	return p.modelID
}

// schemaPrompt folds the system instruction and the output schema into the
// single prompt these backends accept.
func schemaPrompt(req Request) string {
	var b strings.Builder
	if req.System != "" {
		b.WriteString(req.System)
		b.WriteString("\n\n")
	}
	b.WriteString(req.Prompt)
	b.WriteString("\n\nRespond with a single JSON document and nothing else. It must satisfy this JSON Schema:\n")
	b.WriteString(SchemaJSON(req.Schema))
	return b.String()
}
