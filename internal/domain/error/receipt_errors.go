// Package error defines domain-specific errors for the Ledgerboard engine.
package error

import "errors"

// Receipt domain errors.
var (
	// ErrReceiptUploadFailed is returned when a receipt upload cannot be stored.
	// Upload failures are surfaced to the caller instead of mapping to a nil URL.
	ErrReceiptUploadFailed = errors.New("receipt upload failed")

	// ErrReceiptTooLarge is returned when an uploaded file exceeds the size limit.
	ErrReceiptTooLarge = errors.New("receipt file too large")
)
