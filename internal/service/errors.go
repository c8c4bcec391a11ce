package service

import (
	"errors"

	"quiz-brain/internal/domain"
)

// asStoreError keeps domain errors raised by the store adapters and wraps
// anything else as STORE_UNAVAILABLE.
func asStoreError(message string, err error) error {
	var de *domain.DomainError
	if errors.As(err, &de) {
		return de
	}
	return domain.NewStoreUnavailableError(message, err)
}
