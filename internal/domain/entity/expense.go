// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Expense represents a recurring or one-off outgoing obligation.
//
// An expense is never hard-deleted through the engine: setting IsActive to
// false removes it from every total and listing while keeping the record
// available to the store.
type Expense struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Name          string
	Amount        decimal.Decimal
	Currency      Currency
	Category      string // Category name, not ID
	PaymentMethod string
	IsRecurring   bool
	IsActive      bool
	DueDate       *time.Time
	Paid          bool
	PaidDate      *time.Time
	ReceiptURL    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewExpense creates a new active Expense entity.
func NewExpense(
	ownerID uuid.UUID,
	name string,
	amount decimal.Decimal,
	currency Currency,
	category string,
	paymentMethod string,
	isRecurring bool,
	dueDate *time.Time,
) *Expense {
	now := time.Now().UTC()

	return &Expense{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Name:          name,
		Amount:        amount,
		Currency:      NormalizeCurrency(currency),
		Category:      category,
		PaymentMethod: paymentMethod,
		IsRecurring:   isRecurring,
		IsActive:      true,
		DueDate:       dueDate,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}
