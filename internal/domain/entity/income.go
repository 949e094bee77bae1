// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// IncomeStatus represents the lifecycle state of an expected income.
type IncomeStatus string

const (
	IncomeStatusExpected IncomeStatus = "expected"
	IncomeStatusReceived IncomeStatus = "received"
)

// IncomeProbability tags how certain an expected income is.
type IncomeProbability string

const (
	IncomeProbabilityHigh   IncomeProbability = "high"
	IncomeProbabilityMedium IncomeProbability = "medium"
	IncomeProbabilityLow    IncomeProbability = "low"
)

// Income represents an expected incoming amount scoped into a monthly view by
// its expected date. Its status mirrors the paid flag of the other kinds.
type Income struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Name          string
	Amount        decimal.Decimal
	Currency      Currency
	Category      string // Category name, not ID
	PaymentMethod string
	ExpectedDate  *time.Time
	Probability   IncomeProbability
	Status        IncomeStatus
	ReceivedDate  *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewIncome creates a new expected Income entity.
func NewIncome(
	ownerID uuid.UUID,
	name string,
	amount decimal.Decimal,
	currency Currency,
	category string,
	expectedDate *time.Time,
	probability IncomeProbability,
) *Income {
	now := time.Now().UTC()

	return &Income{
		ID:           uuid.New(),
		OwnerID:      ownerID,
		Name:         name,
		Amount:       amount,
		Currency:     NormalizeCurrency(currency),
		Category:     category,
		ExpectedDate: expectedDate,
		Probability:  probability,
		Status:       IncomeStatusExpected,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// Received reports whether the income has been received.
func (i *Income) Received() bool {
	return i.Status == IncomeStatusReceived
}
