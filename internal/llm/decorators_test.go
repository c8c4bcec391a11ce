package llm

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"quiz-brain/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// blockingProvider waits for its context to end.
type blockingProvider struct{}

func (blockingProvider) Generate(ctx context.Context, _ Request) (*Response, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func (blockingProvider) ModelID() string { return "blocking" }

func TestWithTimeout_ConvertsDeadlineToUpstream(t *testing.T) {
	p := WithTimeout(blockingProvider{}, 20*time.Millisecond)

	_, err := p.Generate(context.Background(), Request{Prompt: "x", Schema: testSchema()})

	var upstream *ErrUpstream
	require.True(t, errors.As(err, &upstream), "got %T", err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Equal(t, "blocking", p.ModelID())
}

func TestWithTimeout_NonPositiveIsNoop(t *testing.T) {
	mock := NewMockProvider()
	assert.Same(t, mock, WithTimeout(mock, 0))
}

func TestInstrumentedProvider_PassesThrough(t *testing.T) {
	mock := NewMockProvider(
		MockResponse{Content: json.RawMessage(`{"name":"Ana","age":1}`)},
		MockResponse{Content: json.RawMessage(`not json`)},
	)
	p := WithInstrumentation(mock, "mock", zap.NewNop())
	req := Request{Prompt: "x", Schema: testSchema()}

	resp, err := p.Generate(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, "mock", resp.Model)

	_, err = p.Generate(context.Background(), req)
	assert.Equal(t, "malformed_output", Outcome(err))
	assert.Equal(t, 2, mock.CallCount())
	assert.Equal(t, "x", mock.LastPrompt())
}

func TestOutcome(t *testing.T) {
	assert.Equal(t, "ok", Outcome(nil))
	assert.Equal(t, "upstream", Outcome(&ErrUpstream{}))
	assert.Equal(t, "schema_violation", Outcome(&ErrSchemaViolation{}))
	assert.Equal(t, "error", Outcome(errors.New("other")))
}

func TestMockProvider_EmptyQueue(t *testing.T) {
	_, err := NewMockProvider().Generate(context.Background(), Request{Prompt: "x", Schema: testSchema()})
	var upstream *ErrUpstream
	assert.True(t, errors.As(err, &upstream))
}

func TestAsDomainError(t *testing.T) {
	cases := []struct {
		err  error
		code domain.ErrorCode
	}{
		{&ErrUpstream{Err: errors.New("503")}, domain.CodeLLMUpstream},
		{&ErrMalformedOutput{Err: errors.New("eof")}, domain.CodeLLMMalformedOutput},
		{&ErrSchemaViolation{Err: errors.New("missing quiz")}, domain.CodeLLMSchemaViolation},
		{errors.New("boom"), domain.CodeInternal},
	}
	for _, tc := range cases {
		var de *domain.DomainError
		require.True(t, errors.As(AsDomainError(tc.err), &de))
		assert.Equal(t, tc.code, de.Code)
	}
	assert.NoError(t, AsDomainError(nil))
}
