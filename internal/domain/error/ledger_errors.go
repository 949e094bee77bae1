// Package error defines domain-specific errors for the Ledgerboard engine.
package error

import "errors"

// Ledger domain errors.
var (
	// ErrItemNotFound is returned when no ledger item matches the given id and type.
	ErrItemNotFound = errors.New("ledger item not found")

	// ErrInvalidItemType is returned when an item type is not expense, debt or income.
	ErrInvalidItemType = errors.New("invalid item type")

	// ErrItemPartiallyPaid is returned when a paid toggle is refused because the
	// item has registered payments that do not yet cover its total amount. Such
	// an item must reach full payment through the payment sub-ledger.
	ErrItemPartiallyPaid = errors.New("item has unresolved partial payments")

	// ErrInvalidMonth is returned when a month selector is not in YYYY-MM form.
	ErrInvalidMonth = errors.New("invalid month format")

	// ErrMissingItemFields is returned when a write is missing required item fields.
	ErrMissingItemFields = errors.New("missing required item fields")
)

// LedgerErrorCode defines error codes for ledger errors.
// Format: LGR-XXYYYY where XX is the class and YYYY the specific error.
type LedgerErrorCode string

const (
	ErrCodeItemNotFound      LedgerErrorCode = "LGR-010001"
	ErrCodeInvalidItemType   LedgerErrorCode = "LGR-010002"
	ErrCodeItemPartiallyPaid LedgerErrorCode = "LGR-010003"
	ErrCodeInvalidMonth      LedgerErrorCode = "LGR-010004"
	ErrCodeMissingItemFields LedgerErrorCode = "LGR-010005"
)

// LedgerError represents a ledger error with code and message.
type LedgerError struct {
	Code    LedgerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *LedgerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *LedgerError) Unwrap() error {
	return e.Err
}

// NewLedgerError creates a new LedgerError with the given code and message.
func NewLedgerError(code LedgerErrorCode, message string, err error) *LedgerError {
	return &LedgerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
