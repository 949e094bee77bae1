// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerboard/backend/internal/application/usecase/dashboard"
)

// SummaryResponse represents the monthly dashboard summary.
type SummaryResponse struct {
	Month            string          `json:"month"`
	Rate             decimal.Decimal `json:"rate"`
	TotalExpensesARS decimal.Decimal `json:"total_expenses_ars"`
	TotalDebtsARS    decimal.Decimal `json:"total_debts_ars"`
	TotalIncomeARS   decimal.Decimal `json:"total_income_ars"`
	Gap              decimal.Decimal `json:"gap"`
	MarginPercent    decimal.Decimal `json:"margin_percent"`
	Semaphore        string          `json:"semaphore"`
}

// ToSummaryResponse converts a GetSummaryOutput to its API representation.
func ToSummaryResponse(output *dashboard.GetSummaryOutput) SummaryResponse {
	return SummaryResponse{
		Month:            output.Month.String(),
		Rate:             output.Rate,
		TotalExpensesARS: output.Totals.TotalExpensesARS,
		TotalDebtsARS:    output.Totals.TotalDebtsARS,
		TotalIncomeARS:   output.Totals.TotalIncomeARS,
		Gap:              output.Totals.Gap,
		MarginPercent:    output.Totals.MarginPercent,
		Semaphore:        string(output.Totals.Semaphore),
	}
}
