// Package error defines domain-specific errors for the Ledgerboard engine.
package error

import "errors"

// Exchange-rate domain errors.
var (
	// ErrInvalidRate is returned when a blue-rate update is zero or negative.
	// The setter rejects such values so NaN or Infinity never reaches a
	// conversion.
	ErrInvalidRate = errors.New("exchange rate must be positive")
)

// RateErrorCode defines error codes for exchange-rate errors.
type RateErrorCode string

const (
	ErrCodeInvalidRate RateErrorCode = "RATE-010001"
)

// RateError represents an exchange-rate error with code and message.
type RateError struct {
	Code    RateErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RateError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RateError) Unwrap() error {
	return e.Err
}

// NewRateError creates a new RateError with the given code and message.
func NewRateError(code RateErrorCode, message string, err error) *RateError {
	return &RateError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
