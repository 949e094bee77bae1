// Package ledger contains the ledger aggregation engine use cases.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerboard/backend/internal/domain/entity"
	domainerror "github.com/ledgerboard/backend/internal/domain/error"
)

// InsertItemInput represents the input for inserting a ledger item. Type
// discriminates which collection receives the record; fields that do not
// apply to the kind are ignored.
type InsertItemInput struct {
	OwnerID       uuid.UUID
	Type          entity.ItemType
	Name          string
	Amount        decimal.Decimal
	Currency      entity.Currency
	Category      string
	PaymentMethod string
	DueDate       *time.Time
	IsRecurring   bool                     // expense only
	Probability   entity.IncomeProbability // income only
	Month         string
	Today         time.Time
}

// InsertItemOutput represents the output of an item insert. Items holds the
// refreshed unified view when the refetch-after-write policy is enabled.
type InsertItemOutput struct {
	ID    uuid.UUID
	Items []*entity.UnifiedItem
}

// InsertItemUseCase handles inserting a new expense, debt or income record.
type InsertItemUseCase struct {
	sources  Sources
	getItems *GetItemsUseCase
	policy   WritePolicy
}

// NewInsertItemUseCase creates a new InsertItemUseCase instance.
func NewInsertItemUseCase(sources Sources, getItems *GetItemsUseCase, policy WritePolicy) *InsertItemUseCase {
	return &InsertItemUseCase{
		sources:  sources,
		getItems: getItems,
		policy:   policy,
	}
}

// Execute performs the insert. Each kind is handled explicitly; there is no
// shape sniffing at read time.
func (uc *InsertItemUseCase) Execute(ctx context.Context, input InsertItemInput) (*InsertItemOutput, error) {
	if input.Name == "" {
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeMissingItemFields,
			"item name is required",
			domainerror.ErrMissingItemFields,
		)
	}

	var id uuid.UUID

	switch input.Type {
	case entity.ItemTypeExpense:
		expense := entity.NewExpense(
			input.OwnerID,
			input.Name,
			input.Amount,
			input.Currency,
			input.Category,
			input.PaymentMethod,
			input.IsRecurring,
			input.DueDate,
		)
		if err := uc.sources.Expenses.Insert(ctx, expense); err != nil {
			return nil, fmt.Errorf("failed to insert expense: %w", err)
		}
		id = expense.ID

	case entity.ItemTypeDebt:
		debt := entity.NewDebt(
			input.OwnerID,
			input.Name,
			input.Amount,
			input.Currency,
			input.Category,
			input.PaymentMethod,
			input.DueDate,
		)
		if err := uc.sources.Debts.Insert(ctx, debt); err != nil {
			return nil, fmt.Errorf("failed to insert debt: %w", err)
		}
		id = debt.ID

	case entity.ItemTypeIncome:
		income := entity.NewIncome(
			input.OwnerID,
			input.Name,
			input.Amount,
			input.Currency,
			input.Category,
			input.DueDate,
			input.Probability,
		)
		income.PaymentMethod = input.PaymentMethod
		if err := uc.sources.Income.Insert(ctx, income); err != nil {
			return nil, fmt.Errorf("failed to insert income: %w", err)
		}
		id = income.ID

	default:
		return nil, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidItemType,
			fmt.Sprintf("item type must be expense, debt or income, got %q", input.Type),
			domainerror.ErrInvalidItemType,
		)
	}

	items, err := refetch(ctx, uc.getItems, uc.policy, input.OwnerID, input.Month, input.Today)
	if err != nil {
		return nil, err
	}

	return &InsertItemOutput{
		ID:    id,
		Items: items,
	}, nil
}
