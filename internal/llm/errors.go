package llm

import (
	"encoding/json"
	"errors"
	"fmt"
)

// ErrNotConfigured is returned by NewProvider when the selected provider
// lacks credentials. Callers keep running without a model.
var ErrNotConfigured = errors.New("llm provider is not configured")

// ErrUpstream indicates the model endpoint failed or could not be reached.
type ErrUpstream struct {
	Err error
}

func (e *ErrUpstream) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("model endpoint failed: %v", e.Err)
	}
	return "model endpoint failed"
}

func (e *ErrUpstream) Unwrap() error { return e.Err }

// ErrMalformedOutput indicates the model returned text that is not JSON.
type ErrMalformedOutput struct {
	Content json.RawMessage
	Err     error
}

func (e *ErrMalformedOutput) Error() string {
	return fmt.Sprintf("model output is not valid JSON: %v", e.Err)
}

func (e *ErrMalformedOutput) Unwrap() error { return e.Err }

// ErrSchemaViolation indicates the JSON does not satisfy the request schema.
type ErrSchemaViolation struct {
	Schema  string
	Content json.RawMessage
	Err     error
}

func (e *ErrSchemaViolation) Error() string {
	return fmt.Sprintf("model output violates schema %q: %v", e.Schema, e.Err)
}

func (e *ErrSchemaViolation) Unwrap() error { return e.Err }
