package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the search pipeline.
var (
	// ErrInvalidRequest marks caller-input validation failures. These are
	// rejected before any supplier is contacted.
	ErrInvalidRequest = errors.New("invalid request")

	// ErrProviderNotFound is returned by explicit single-supplier searches
	// when the named supplier is not registered.
	ErrProviderNotFound = errors.New("provider not found")

	// ErrProviderInactive is returned by explicit single-supplier searches
	// when the named supplier is registered but disabled.
	ErrProviderInactive = errors.New("provider not active")

	// ErrNoProviders means no supplier is registered and active at all.
	ErrNoProviders = errors.New("no active providers")

	// ErrAuthFailed marks a supplier authentication failure. Inside the
	// fan-out it is isolated like any other provider failure.
	ErrAuthFailed = errors.New("authentication failed")
)

// ProviderError wraps a failure from one supplier. Such failures are
// isolated: they are logged and alerted but never abort the other
// suppliers or the overall search.
type ProviderError struct {
	// Provider is the supplier that failed
	Provider string

	// Err is the underlying error
	Err error

	// Retryable hints whether a later, separate call might succeed.
	// There is no retry inside a single search.
	Retryable bool
}

// Error implements the error interface.
func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

// Unwrap returns the underlying error for errors.Is/As.
func (e *ProviderError) Unwrap() error {
	return e.Err
}

// NewProviderError creates a non-retryable provider error.
func NewProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err}
}

// NewRetryableProviderError creates a retryable provider error.
func NewRetryableProviderError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: err, Retryable: true}
}

// NewAuthError creates a provider error wrapping ErrAuthFailed.
func NewAuthError(provider string, err error) *ProviderError {
	return &ProviderError{Provider: provider, Err: fmt.Errorf("%w: %v", ErrAuthFailed, err)}
}
