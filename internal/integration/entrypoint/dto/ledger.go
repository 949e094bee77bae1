// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/ledgerboard/backend/internal/application/usecase/ledger"
	"github.com/ledgerboard/backend/internal/domain/entity"
)

// dateLayout is the wire format for calendar dates.
const dateLayout = "2006-01-02"

// InsertItemRequest represents the request body for inserting a ledger item.
type InsertItemRequest struct {
	Type          string          `json:"type" binding:"required,oneof=expense debt income"`
	Name          string          `json:"name" binding:"required,min=1,max=255"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Currency      string          `json:"currency,omitempty" binding:"omitempty,oneof=ARS USD"`
	Category      string          `json:"category,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	DueDate       string          `json:"due_date,omitempty"`
	IsRecurring   bool            `json:"is_recurring,omitempty"`
	Probability   string          `json:"probability,omitempty" binding:"omitempty,oneof=high medium low"`
}

// UpdateItemRequest represents the request body for updating a ledger item.
// Absent fields are left untouched; an empty due_date string clears the date.
type UpdateItemRequest struct {
	Name          *string          `json:"name,omitempty" binding:"omitempty,min=1,max=255"`
	Amount        *decimal.Decimal `json:"amount,omitempty"`
	Currency      *string          `json:"currency,omitempty" binding:"omitempty,oneof=ARS USD"`
	Category      *string          `json:"category,omitempty"`
	PaymentMethod *string          `json:"payment_method,omitempty"`
	DueDate       *string          `json:"due_date,omitempty"`
	IsRecurring   *bool            `json:"is_recurring,omitempty"`
	IsActive      *bool            `json:"is_active,omitempty"`
	Probability   *string          `json:"probability,omitempty" binding:"omitempty,oneof=high medium low"`
	ReceiptURL    *string          `json:"receipt_url,omitempty"`
}

// AddPaymentRequest represents the request body for registering a payment.
type AddPaymentRequest struct {
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Currency      string          `json:"currency,omitempty" binding:"omitempty,oneof=ARS USD"`
	PaymentDate   string          `json:"payment_date,omitempty"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// PaymentResponse represents a single payment in API responses.
type PaymentResponse struct {
	ID            string          `json:"id"`
	Amount        decimal.Decimal `json:"amount"`
	Currency      string          `json:"currency"`
	PaymentDate   string          `json:"payment_date"`
	PaymentMethod string          `json:"payment_method,omitempty"`
	Notes         string          `json:"notes,omitempty"`
}

// UnifiedItemResponse represents a single unified ledger item in API responses.
type UnifiedItemResponse struct {
	ID              string            `json:"id"`
	Type            string            `json:"type"`
	Description     string            `json:"description"`
	Amount          decimal.Decimal   `json:"amount"`
	Currency        string            `json:"currency"`
	DueDate         *string           `json:"due_date,omitempty"`
	PaidDate        *string           `json:"paid_date,omitempty"`
	Category        string            `json:"category,omitempty"`
	PaymentMethod   string            `json:"payment_method,omitempty"`
	ReceiptURL      string            `json:"receipt_url,omitempty"`
	Paid            bool              `json:"paid"`
	Status          string            `json:"status"`
	TotalPaid       decimal.Decimal   `json:"total_paid"`
	Remaining       decimal.Decimal   `json:"remaining"`
	AmountARS       decimal.Decimal   `json:"amount_ars"`
	AmountConverted decimal.Decimal   `json:"amount_converted"`
	Payments        []PaymentResponse `json:"payments,omitempty"`
}

// LedgerItemsResponse represents the response for the unified ledger view.
type LedgerItemsResponse struct {
	Items []UnifiedItemResponse `json:"items"`
	Month string                `json:"month"`
	Rate  decimal.Decimal       `json:"rate"`
}

// InsertItemResponse represents the response for an item insert.
type InsertItemResponse struct {
	ID    string                `json:"id"`
	Items []UnifiedItemResponse `json:"items,omitempty"`
}

// UpdateItemResponse represents the response for an item update.
type UpdateItemResponse struct {
	Items []UnifiedItemResponse `json:"items,omitempty"`
}

// TogglePaidResponse represents the response for a paid toggle.
type TogglePaidResponse struct {
	Paid  bool                  `json:"paid"`
	Items []UnifiedItemResponse `json:"items,omitempty"`
}

// AddPaymentResponse represents the response for a payment append.
type AddPaymentResponse struct {
	Payment   PaymentResponse       `json:"payment"`
	TotalPaid decimal.Decimal       `json:"total_paid"`
	Remaining decimal.Decimal       `json:"remaining"`
	Progress  decimal.Decimal       `json:"progress"`
	Completed bool                  `json:"completed"`
	Items     []UnifiedItemResponse `json:"items,omitempty"`
}

// ParseDate parses a wire-format calendar date.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(dateLayout, value)
}

// formatDate formats an optional time as a wire-format calendar date.
func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	formatted := t.Format(dateLayout)
	return &formatted
}

// ToPaymentResponse converts a domain Payment entity to a PaymentResponse DTO.
func ToPaymentResponse(p *entity.Payment) PaymentResponse {
	return PaymentResponse{
		ID:            p.ID.String(),
		Amount:        p.Amount,
		Currency:      string(p.Currency),
		PaymentDate:   p.PaymentDate.Format(dateLayout),
		PaymentMethod: p.PaymentMethod,
		Notes:         p.Notes,
	}
}

// ToUnifiedItemResponse converts a UnifiedItem to its API representation.
func ToUnifiedItemResponse(item *entity.UnifiedItem) UnifiedItemResponse {
	payments := make([]PaymentResponse, len(item.Payments))
	for i, p := range item.Payments {
		payments[i] = ToPaymentResponse(p)
	}

	return UnifiedItemResponse{
		ID:              item.ID.String(),
		Type:            string(item.Type),
		Description:     item.Description,
		Amount:          item.Amount,
		Currency:        string(item.Currency),
		DueDate:         formatDate(item.DueDate),
		PaidDate:        formatDate(item.PaidDate),
		Category:        item.Category,
		PaymentMethod:   item.PaymentMethod,
		ReceiptURL:      item.ReceiptURL,
		Paid:            item.Paid,
		Status:          string(item.Status),
		TotalPaid:       item.TotalPaid,
		Remaining:       item.Remaining(),
		AmountARS:       item.AmountARS,
		AmountConverted: item.AmountConverted,
		Payments:        payments,
	}
}

// ToUnifiedItemResponses converts a slice of unified items.
func ToUnifiedItemResponses(items []*entity.UnifiedItem) []UnifiedItemResponse {
	responses := make([]UnifiedItemResponse, len(items))
	for i, item := range items {
		responses[i] = ToUnifiedItemResponse(item)
	}
	return responses
}

// ToLedgerItemsResponse converts a GetItemsOutput to its API representation.
func ToLedgerItemsResponse(output *ledger.GetItemsOutput) LedgerItemsResponse {
	return LedgerItemsResponse{
		Items: ToUnifiedItemResponses(output.Items),
		Month: output.Month.String(),
		Rate:  output.Rate,
	}
}
