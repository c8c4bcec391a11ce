package llm

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/genai"
)

func TestBuildGeminiSchema(t *testing.T) {
	def := map[string]any{
		"type": "object",
		"properties": map[string]any{
			"name":  map[string]any{"type": "string"},
			"age":   map[string]any{"type": "integer"},
			"grade": map[string]any{"type": "string", "enum": []any{"A", "B", "C"}},
			"scores": map[string]any{
				"type":  "array",
				"items": map[string]any{"type": "number"},
			},
		},
		"required": []string{"name", "age"},
	}

	schema := buildGeminiSchema(def)

	assert.Equal(t, genai.TypeObject, schema.Type)
	require.Len(t, schema.Properties, 4)
	assert.Equal(t, genai.TypeString, schema.Properties["name"].Type)
	assert.Equal(t, genai.TypeInteger, schema.Properties["age"].Type)
	assert.Len(t, schema.Properties["grade"].Enum, 3)
	assert.Equal(t, genai.TypeArray, schema.Properties["scores"].Type)
	assert.Equal(t, genai.TypeNumber, schema.Properties["scores"].Items.Type)
	assert.Equal(t, []string{"name", "age"}, schema.Required)
}

func TestNewGeminiProvider_MissingKey(t *testing.T) {
	_, err := NewGeminiProvider(context.Background(), GeminiConfig{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}

func newGeminiTestServer(t *testing.T, status int, body string) (*httptest.Server, *[]byte) {
	t.Helper()
	var captured []byte
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured, _ = io.ReadAll(r.Body)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &captured
}

func TestGeminiProvider_Generate(t *testing.T) {
	srv, captured := newGeminiTestServer(t, http.StatusOK, `{
		"candidates": [{
			"content": {"role": "model", "parts": [{"text": "{\"name\":\"Ana\",\"age\":12}"}]},
			"finishReason": "STOP"
		}],
		"usageMetadata": {"promptTokenCount": 10, "candidatesTokenCount": 5, "totalTokenCount": 15}
	}`)

	p, err := NewGeminiProvider(context.Background(), GeminiConfig{APIKey: "test", Model: "gemini-test", BaseURL: srv.URL})
	require.NoError(t, err)

	resp, err := p.Generate(context.Background(), Request{Prompt: "describe a student", Schema: testSchema()})
	require.NoError(t, err)

	assert.JSONEq(t, `{"name":"Ana","age":12}`, string(resp.Content))
	assert.Equal(t, "gemini-test", resp.Model)
	assert.Equal(t, 15, resp.Usage.TotalTokens)
	assert.Contains(t, string(*captured), "describe a student")
	assert.Contains(t, string(*captured), "application/json")
}

func TestGeminiProvider_SchemaViolation(t *testing.T) {
	srv, _ := newGeminiTestServer(t, http.StatusOK, `{
		"candidates": [{"content": {"role": "model", "parts": [{"text": "{\"name\":\"Ana\"}"}]}}]
	}`)

	p, err := NewGeminiProvider(context.Background(), GeminiConfig{APIKey: "test", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), Request{Prompt: "describe a student", Schema: testSchema()})
	var violation *ErrSchemaViolation
	assert.True(t, errors.As(err, &violation), "got %v", err)
}

func TestGeminiProvider_Upstream(t *testing.T) {
	srv, _ := newGeminiTestServer(t, http.StatusBadRequest,
		`{"error": {"code": 400, "message": "API key not valid", "status": "INVALID_ARGUMENT"}}`)

	p, err := NewGeminiProvider(context.Background(), GeminiConfig{APIKey: "bad", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), Request{Prompt: "describe a student", Schema: testSchema()})
	var upstream *ErrUpstream
	assert.True(t, errors.As(err, &upstream), "got %v", err)
}
