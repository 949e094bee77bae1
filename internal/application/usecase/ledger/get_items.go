// Package ledger contains the ledger aggregation engine use cases.
package ledger

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerboard/backend/internal/domain/entity"
)

// GetItemsInput represents the input for reading the unified ledger view.
type GetItemsInput struct {
	OwnerID uuid.UUID
	Month   string // "YYYY-MM"; empty selects the current month
	Today   time.Time
	Filter  Filter
	Sort    SortKey
}

// GetItemsOutput represents the unified, classified, filtered and sorted view.
type GetItemsOutput struct {
	Items      []*entity.UnifiedItem
	Month      Month
	Rate       decimal.Decimal
	Categories []*entity.Category
}

// GetItemsUseCase runs the full read pipeline: fetch, unify, classify,
// filter, sort.
type GetItemsUseCase struct {
	sources Sources
}

// NewGetItemsUseCase creates a new GetItemsUseCase instance.
func NewGetItemsUseCase(sources Sources) *GetItemsUseCase {
	return &GetItemsUseCase{
		sources: sources,
	}
}

// Execute performs the ledger read.
func (uc *GetItemsUseCase) Execute(ctx context.Context, input GetItemsInput) (*GetItemsOutput, error) {
	today := input.Today
	if today.IsZero() {
		today = time.Now()
	}

	month := MonthOf(today)
	if input.Month != "" {
		parsed, err := ParseMonth(input.Month)
		if err != nil {
			return nil, err
		}
		month = parsed
	}

	snapshot, err := uc.sources.Fetch(ctx, input.OwnerID)
	if err != nil {
		return nil, err
	}

	items := Unify(snapshot.Collections(), month, snapshot.Rate)
	for _, item := range items {
		item.Status = Classify(item, today)
	}

	items = ApplyFilter(items, input.Filter)
	SortItems(items, input.Sort)

	return &GetItemsOutput{
		Items:      items,
		Month:      month,
		Rate:       snapshot.Rate,
		Categories: snapshot.Categories,
	}, nil
}
