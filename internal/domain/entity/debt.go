// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DebtStatus represents the lifecycle state of a debt.
type DebtStatus string

const (
	DebtStatusPending DebtStatus = "pending"
	DebtStatusPaid    DebtStatus = "paid"
)

// Debt represents a point-in-time obligation with a running paid amount.
//
// A debt never becomes active or inactive; it is scoped into a monthly view by
// the month of its due date and stays pending until fully settled. AmountPaid
// mirrors the sum of its registered payments.
type Debt struct {
	ID            uuid.UUID
	OwnerID       uuid.UUID
	Name          string
	TotalAmount   decimal.Decimal
	AmountPaid    decimal.Decimal
	Currency      Currency
	Category      string // Category name, not ID
	PaymentMethod string
	DueDate       *time.Time
	Status        DebtStatus
	PaidDate      *time.Time
	ReceiptURL    string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// NewDebt creates a new pending Debt entity.
func NewDebt(
	ownerID uuid.UUID,
	name string,
	totalAmount decimal.Decimal,
	currency Currency,
	category string,
	paymentMethod string,
	dueDate *time.Time,
) *Debt {
	now := time.Now().UTC()

	return &Debt{
		ID:            uuid.New(),
		OwnerID:       ownerID,
		Name:          name,
		TotalAmount:   totalAmount,
		AmountPaid:    decimal.Zero,
		Currency:      NormalizeCurrency(currency),
		Category:      category,
		PaymentMethod: paymentMethod,
		DueDate:       dueDate,
		Status:        DebtStatusPending,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
}

// Paid reports whether the debt has reached its paid state.
func (d *Debt) Paid() bool {
	return d.Status == DebtStatusPaid
}

// Remaining returns the outstanding balance, never below zero.
func (d *Debt) Remaining() decimal.Decimal {
	remaining := d.TotalAmount.Sub(d.AmountPaid)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}
