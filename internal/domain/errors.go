package domain

import (
	"errors"
	"fmt"
)

// Predefined domain errors
var (
	// ErrInvalidInput malformed or missing required field
	ErrInvalidInput = errors.New("invalid input")
	// ErrMethodNotAllowed request used a verb the endpoint does not accept
	ErrMethodNotAllowed = errors.New("method not allowed")
	// ErrUpstream the chat backend failed or returned a non-success status
	ErrUpstream = errors.New("upstream error")
	// ErrProvider the auth provider rejected the call
	ErrProvider = errors.New("auth provider error")
	// ErrInternal anything else
	ErrInternal = errors.New("internal error")
)

// DomainError carries a code, a message that is safe to show to the caller,
// and the wrapped cause for logging.
type DomainError struct {
	Code    string
	Message string
	Err     error
}

// Error implements the error interface (used for logs and internal propagation)
func (e *DomainError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// UserMessage returns the caller-facing message without internal details
func (e *DomainError) UserMessage() string {
	return e.Message
}

// Unwrap returns the wrapped error
func (e *DomainError) Unwrap() error {
	return e.Err
}

// NewInvalidInputError creates a validation error
func NewInvalidInputError(message string) error {
	return &DomainError{
		Code:    "INVALID_INPUT",
		Message: message,
		Err:     ErrInvalidInput,
	}
}

// NewMethodNotAllowedError creates an error for a rejected HTTP verb
func NewMethodNotAllowedError(method string) error {
	return &DomainError{
		Code:    "METHOD_NOT_ALLOWED",
		Message: "Method not allowed",
		Err:     fmt.Errorf("%w: %s", ErrMethodNotAllowed, method),
	}
}

// NewUpstreamError wraps a backend failure. The cause is kept for logging
// only; Message never includes it.
func NewUpstreamError(err error) error {
	return &DomainError{
		Code:    "UPSTREAM_ERROR",
		Message: "Failed to process request",
		Err:     fmt.Errorf("%w: %v", ErrUpstream, err),
	}
}

// NewProviderError wraps an auth provider rejection. Unlike upstream errors
// the provider message is relayed so the user can tell why signup failed.
func NewProviderError(message string, err error) error {
	return &DomainError{
		Code:    "PROVIDER_ERROR",
		Message: message,
		Err:     fmt.Errorf("%w: %v", ErrProvider, err),
	}
}

// NewInternalError creates an internal error
func NewInternalError(err error) error {
	return &DomainError{
		Code:    "INTERNAL_ERROR",
		Message: "an internal error occurred",
		Err:     fmt.Errorf("%w: %v", ErrInternal, err),
	}
}

// IsInvalidInput reports whether err is a validation error
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsMethodNotAllowed reports whether err is a method error
func IsMethodNotAllowed(err error) bool {
	return errors.Is(err, ErrMethodNotAllowed)
}

// IsUpstream reports whether err came from the chat backend
func IsUpstream(err error) bool {
	return errors.Is(err, ErrUpstream)
}

// IsProvider reports whether err came from the auth provider
func IsProvider(err error) bool {
	return errors.Is(err, ErrProvider)
}

// IsInternalError reports whether err is an internal error
func IsInternalError(err error) bool {
	return errors.Is(err, ErrInternal)
}

// UserMessage extracts the caller-facing message, falling back to def for
// errors that are not DomainErrors.
func UserMessage(err error, def string) string {
	var domainErr *DomainError
	if errors.As(err, &domainErr) && domainErr.Message != "" {
		return domainErr.UserMessage()
	}
	return def
}
