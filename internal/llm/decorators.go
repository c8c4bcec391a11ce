package llm

import (
	"context"
	"errors"
	"time"

	"quiz-brain/internal/metrics"

	"go.uber.org/zap"
)

// TimeoutProvider bounds every call of the wrapped provider.
type TimeoutProvider struct {
	inner   Provider
	timeout time.Duration
}

// WithTimeout wraps p so each Generate call gets at most timeout. A
// non-positive timeout returns p unchanged.
func WithTimeout(p Provider, timeout time.Duration) Provider {
	if timeout <= 0 {
		return p
	}
	return &TimeoutProvider{inner: p, timeout: timeout}
}

func (t *TimeoutProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	ctx, cancel := context.WithTimeout(ctx, t.timeout)
	defer cancel()

	resp, err := t.inner.Generate(ctx, req)
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		var upstream *ErrUpstream
		if !errors.As(err, &upstream) {
			return nil, &ErrUpstream{Err: err}
		}
	}
	return resp, err
}

func (t *TimeoutProvider) ModelID() string {
	return t.inner.ModelID()
}

// InstrumentedProvider logs every call and records its latency.
type InstrumentedProvider struct {
	inner  Provider
	name   string
	logger *zap.Logger
}

// WithInstrumentation wraps p with zap logging and Prometheus metrics.
func WithInstrumentation(p Provider, name string, logger *zap.Logger) Provider {
	return &InstrumentedProvider{inner: p, name: name, logger: logger}
}

func (i *InstrumentedProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	start := time.Now()
	resp, err := i.inner.Generate(ctx, req)
	elapsed := time.Since(start)

	outcome := Outcome(err)
	metrics.LLMRequestDuration.WithLabelValues(i.name, outcome).Observe(elapsed.Seconds())

	fields := []zap.Field{
		zap.String("provider", i.name),
		zap.String("model", i.inner.ModelID()),
		zap.String("schema", schemaName(req.Schema)),
		zap.Duration("latency", elapsed),
		zap.String("outcome", outcome),
	}
	if err != nil {
		i.logger.Warn("Structured generation failed", append(fields, zap.Error(err))...)
		return nil, err
	}
	if resp != nil {
		fields = append(fields,
			zap.Int("input_tokens", resp.Usage.InputTokens),
			zap.Int("output_tokens", resp.Usage.OutputTokens),
		)
	}
	i.logger.Debug("Structured generation succeeded", fields...)
	return resp, nil
}

func (i *InstrumentedProvider) ModelID() string {
	return i.inner.ModelID()
}

// Outcome classifies err into a short metrics label.
func Outcome(err error) string {
	var (
		upstream  *ErrUpstream
		malformed *ErrMalformedOutput
		violation *ErrSchemaViolation
	)
	switch {
	case err == nil:
		return "ok"
	case errors.As(err, &upstream):
		return "upstream"
	case errors.As(err, &malformed):
		return "malformed_output"
	case errors.As(err, &violation):
		return "schema_violation"
	default:
		return "error"
	}
}

func schemaName(s *Schema) string {
	if s == nil {
		return ""
	}
	return s.Name
}
