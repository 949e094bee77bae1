// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ItemType discriminates the three record kinds behind a unified item.
type ItemType string

const (
	ItemTypeExpense ItemType = "expense"
	ItemTypeDebt    ItemType = "debt"
	ItemTypeIncome  ItemType = "income"
)

// ItemStatus is the derived temporal status of a ledger item.
type ItemStatus string

const (
	ItemStatusPaid     ItemStatus = "paid"
	ItemStatusOverdue  ItemStatus = "overdue"
	ItemStatusUpcoming ItemStatus = "upcoming"
	ItemStatusOntime   ItemStatus = "ontime"
)

// UnifiedItem is the common derived representation of an expense, debt or
// income record used for display and aggregation. It is never persisted; it is
// rebuilt from the latest fetched snapshot on every access.
//
// Amount is always the total obligation (a debt's total_amount, never the
// outstanding remainder); the remainder is derived via Remaining.
type UnifiedItem struct {
	ID            uuid.UUID
	Type          ItemType
	Description   string
	Amount        decimal.Decimal
	Currency      Currency
	DueDate       *time.Time
	PaidDate      *time.Time
	Category      string
	PaymentMethod string
	ReceiptURL    string
	Paid          bool
	Payments      []*Payment
	TotalPaid     decimal.Decimal
	Status        ItemStatus

	// Precomputed currency equivalents so the filter/sort pass and the
	// aggregator never re-convert per comparison.
	AmountARS       decimal.Decimal
	AmountConverted decimal.Decimal
}

// Remaining returns the outstanding balance of the item, never below zero.
func (u *UnifiedItem) Remaining() decimal.Decimal {
	remaining := u.Amount.Sub(u.TotalPaid)
	if remaining.IsNegative() {
		return decimal.Zero
	}
	return remaining
}
