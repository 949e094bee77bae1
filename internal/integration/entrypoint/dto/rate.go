// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"
)

// UpdateRateRequest represents the request body for updating the blue rate.
type UpdateRateRequest struct {
	Rate decimal.Decimal `json:"rate" binding:"required"`
}

// RateResponse represents the current blue rate.
type RateResponse struct {
	Rate decimal.Decimal `json:"rate"`
}

// ReceiptResponse represents the stored location of an uploaded receipt.
type ReceiptResponse struct {
	URL string `json:"url"`
}
