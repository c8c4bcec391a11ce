package llm

import (
	"errors"

	"quiz-brain/internal/domain"
)

// AsDomainError maps a Generate failure onto the domain error taxonomy so
// the HTTP layer can render it.
func AsDomainError(err error) error {
	if err == nil {
		return nil
	}
	var (
		upstream  *ErrUpstream
		malformed *ErrMalformedOutput
		violation *ErrSchemaViolation
	)
	switch {
	case errors.As(err, &upstream):
		return domain.NewLLMUpstreamError(err)
	case errors.As(err, &malformed):
		return domain.NewLLMMalformedOutputError(err)
	case errors.As(err, &violation):
		return domain.NewLLMSchemaViolationError(err)
	default:
		return domain.NewInternalError("structured generation failed", err)
	}
}
