package llm

import (
	"context"
	"encoding/json"
)

// Provider sends a prompt plus an output schema to a generative model and
// returns JSON that satisfies the schema.
type Provider interface {
	// Generate never retries. Failures are one of *ErrUpstream,
	// *ErrMalformedOutput or *ErrSchemaViolation.
	Generate(ctx context.Context, req Request) (*Response, error)

	// ModelID returns the model identifier this provider is configured to use.
	ModelID() string
}

// Request is a single-turn structured generation call.
type Request struct {
	// Prompt is the user prompt and must not be empty.
	Prompt string

	// System is an optional system instruction.
	System string

	// Schema is the JSON Schema the response must conform to. Required.
	Schema *Schema

	// MaxTokens caps the response length. Zero leaves the provider default.
	MaxTokens int

	// Temperature controls randomness. Zero leaves the provider default.
	Temperature float64
}

// Schema defines the JSON structure expected from the model.
type Schema struct {
	// Name identifies the schema and keys the compiled-schema cache.
	Name string

	Description string

	// Definition is a JSON Schema document as a map.
	Definition map[string]any
}

// Response holds validated model output.
type Response struct {
	Content json.RawMessage
	Usage   Usage
	Model   string
}

// Usage tracks token consumption for a single request.
type Usage struct {
	InputTokens  int
	OutputTokens int
	TotalTokens  int
}
