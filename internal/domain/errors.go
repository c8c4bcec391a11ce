package domain

import (
	"encoding/json"
	"fmt"
	"strings"
)

// ErrorCode represents a specific type of error in the domain
type ErrorCode string

const (
	// Common errors
	CodeInternal       ErrorCode = "INTERNAL_ERROR"
	CodeInvalidRequest ErrorCode = "INVALID_REQUEST"

	// Validation errors
	CodeValidation    ErrorCode = "VALIDATION_ERROR"
	CodeMissingField  ErrorCode = "MISSING_FIELD"
	CodeInvalidFormat ErrorCode = "INVALID_FORMAT"
	CodeOutOfRange    ErrorCode = "OUT_OF_RANGE"

	// Collaborator errors
	CodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	CodeLLMUpstream        ErrorCode = "LLM_UPSTREAM_ERROR"
	CodeLLMMalformedOutput ErrorCode = "LLM_MALFORMED_OUTPUT"
	CodeLLMSchemaViolation ErrorCode = "LLM_SCHEMA_VIOLATION"
	CodeStoreUnavailable   ErrorCode = "STORE_UNAVAILABLE"
)

// MsgServiceNotConfigured is returned verbatim whenever a required
// collaborator was not configured at startup.
const MsgServiceNotConfigured = "service is not configured: check the store credentials and model API key"

// DomainError represents a domain-specific error
type DomainError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
	Err     error     `json:"-"`
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *DomainError) Unwrap() error { return e.Err }

// MarshalJSON implements the json.Marshaler interface
func (e *DomainError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	}{
		Code:    string(e.Code),
		Message: e.Message,
	})
}

// NewError creates a new DomainError
func NewError(code ErrorCode, message string, err error) *DomainError {
	return &DomainError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

func NewInvalidRequestError(message string, err error) *DomainError {
	return NewError(CodeInvalidRequest, message, err)
}

func NewInternalError(message string, err error) *DomainError {
	return NewError(CodeInternal, message, err)
}

func NewServiceUnavailableError() *DomainError {
	return NewError(CodeServiceUnavailable, MsgServiceNotConfigured, nil)
}

func NewStoreUnavailableError(message string, err error) *DomainError {
	return NewError(CodeStoreUnavailable, message, err)
}

func NewLLMUpstreamError(err error) *DomainError {
	return NewError(CodeLLMUpstream, "model request failed", err)
}

func NewLLMMalformedOutputError(err error) *DomainError {
	return NewError(CodeLLMMalformedOutput, "model returned malformed output", err)
}

func NewLLMSchemaViolationError(err error) *DomainError {
	return NewError(CodeLLMSchemaViolation, "model output does not match the expected schema", err)
}

// ValidationError describes one rejected request field.
type ValidationError struct {
	Field   string    `json:"field"`
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e ValidationError) Error() string {
	return e.Message
}

// ValidationErrors collects every field problem of a request so callers see
// them all at once.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Message
	}
	return strings.Join(msgs, "; ")
}

func NewMissingFieldError(field string) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeMissingField,
		Message: fmt.Sprintf("%s is required", field),
	}
}

func NewInvalidFormatError(field, reason string) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeInvalidFormat,
		Message: fmt.Sprintf("%s has an invalid format: %s", field, reason),
	}
}

func NewOutOfRangeError(field string, value, min, max int) ValidationError {
	return ValidationError{
		Field:   field,
		Code:    CodeOutOfRange,
		Message: fmt.Sprintf("%s must be between %d and %d, got %d", field, min, max, value),
	}
}
