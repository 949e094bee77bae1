// Package dashboard contains the monthly aggregation use cases.
package dashboard

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerboard/backend/internal/application/usecase/ledger"
)

// GetSummaryInput represents the input for the monthly summary.
type GetSummaryInput struct {
	OwnerID uuid.UUID
	Month   string // "YYYY-MM"; empty selects the current month
	Today   time.Time
}

// GetSummaryOutput represents the monthly ARS-normalized totals and the
// overall health signal.
type GetSummaryOutput struct {
	Month  ledger.Month
	Rate   decimal.Decimal
	Totals Totals
}

// GetSummaryUseCase computes the dashboard summary from a fresh snapshot.
type GetSummaryUseCase struct {
	sources ledger.Sources
}

// NewGetSummaryUseCase creates a new GetSummaryUseCase instance.
func NewGetSummaryUseCase(sources ledger.Sources) *GetSummaryUseCase {
	return &GetSummaryUseCase{
		sources: sources,
	}
}

// Execute performs the summary read.
func (uc *GetSummaryUseCase) Execute(ctx context.Context, input GetSummaryInput) (*GetSummaryOutput, error) {
	today := input.Today
	if today.IsZero() {
		today = time.Now()
	}

	month := ledger.MonthOf(today)
	if input.Month != "" {
		parsed, err := ledger.ParseMonth(input.Month)
		if err != nil {
			return nil, err
		}
		month = parsed
	}

	snapshot, err := uc.sources.Fetch(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	totals := Aggregate(snapshot.Expenses, snapshot.Debts, snapshot.Income, month, snapshot.Rate)

	return &GetSummaryOutput{
		Month:  month,
		Rate:   snapshot.Rate,
		Totals: totals,
	}, nil
}
