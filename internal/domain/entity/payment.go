// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment represents a single payment event registered against a ledger item.
//
// Payments are append-only and are assumed to be in the same currency as their
// parent item; no cross-currency conversion is applied when summing them.
type Payment struct {
	ID            uuid.UUID
	ItemID        uuid.UUID
	ItemType      ItemType
	Amount        decimal.Decimal
	Currency      Currency
	PaymentDate   time.Time
	PaymentMethod string
	Notes         string
	CreatedAt     time.Time
}

// NewPayment creates a new Payment entity for the given parent item.
func NewPayment(
	itemID uuid.UUID,
	itemType ItemType,
	amount decimal.Decimal,
	currency Currency,
	paymentDate time.Time,
	paymentMethod string,
	notes string,
) *Payment {
	return &Payment{
		ID:            uuid.New(),
		ItemID:        itemID,
		ItemType:      itemType,
		Amount:        amount,
		Currency:      NormalizeCurrency(currency),
		PaymentDate:   paymentDate,
		PaymentMethod: paymentMethod,
		Notes:         notes,
		CreatedAt:     time.Now().UTC(),
	}
}
