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

// UpdateItemInput represents the input for updating a ledger item. Nil
// pointers leave the corresponding field untouched.
type UpdateItemInput struct {
	OwnerID       uuid.UUID
	ID            uuid.UUID
	Type          entity.ItemType
	Name          *string
	Amount        *decimal.Decimal
	Currency      *entity.Currency
	Category      *string
	PaymentMethod *string
	DueDate       *time.Time
	ClearDueDate  bool
	IsRecurring   *bool                     // expense only
	IsActive      *bool                     // expense only; false soft-deletes
	Probability   *entity.IncomeProbability // income only
	ReceiptURL    *string
	Month         string
	Today         time.Time
}

// UpdateItemOutput represents the output of an item update.
type UpdateItemOutput struct {
	Items []*entity.UnifiedItem
}

// UpdateItemUseCase handles updating an expense, debt or income record.
type UpdateItemUseCase struct {
	sources  Sources
	getItems *GetItemsUseCase
	policy   WritePolicy
}

// NewUpdateItemUseCase creates a new UpdateItemUseCase instance.
func NewUpdateItemUseCase(sources Sources, getItems *GetItemsUseCase, policy WritePolicy) *UpdateItemUseCase {
	return &UpdateItemUseCase{
		sources:  sources,
		getItems: getItems,
		policy:   policy,
	}
}

// Execute performs the update.
func (uc *UpdateItemUseCase) Execute(ctx context.Context, input UpdateItemInput) (*UpdateItemOutput, error) {
	switch input.Type {
	case entity.ItemTypeExpense:
		if err := uc.updateExpense(ctx, input); err != nil {
			return nil, err
		}
	case entity.ItemTypeDebt:
		if err := uc.updateDebt(ctx, input); err != nil {
			return nil, err
		}
	case entity.ItemTypeIncome:
		if err := uc.updateIncome(ctx, input); err != nil {
			return nil, err
		}
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

	return &UpdateItemOutput{Items: items}, nil
}

func (uc *UpdateItemUseCase) updateExpense(ctx context.Context, input UpdateItemInput) error {
	expense, err := uc.sources.Expenses.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}
	if expense.OwnerID != input.OwnerID {
		return notFound(input.ID)
	}

	if input.Name != nil {
		expense.Name = *input.Name
	}
	if input.Amount != nil {
		expense.Amount = *input.Amount
	}
	if input.Currency != nil {
		expense.Currency = entity.NormalizeCurrency(*input.Currency)
	}
	if input.Category != nil {
		expense.Category = *input.Category
	}
	if input.PaymentMethod != nil {
		expense.PaymentMethod = *input.PaymentMethod
	}
	if input.DueDate != nil {
		expense.DueDate = input.DueDate
	}
	if input.ClearDueDate {
		expense.DueDate = nil
	}
	if input.IsRecurring != nil {
		expense.IsRecurring = *input.IsRecurring
	}
	if input.IsActive != nil {
		expense.IsActive = *input.IsActive
	}
	if input.ReceiptURL != nil {
		expense.ReceiptURL = *input.ReceiptURL
	}
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.sources.Expenses.Update(ctx, expense); err != nil {
		return fmt.Errorf("failed to update expense: %w", err)
	}
	return nil
}

func (uc *UpdateItemUseCase) updateDebt(ctx context.Context, input UpdateItemInput) error {
	debt, err := uc.sources.Debts.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}
	if debt.OwnerID != input.OwnerID {
		return notFound(input.ID)
	}

	if input.Name != nil {
		debt.Name = *input.Name
	}
	if input.Amount != nil {
		debt.TotalAmount = *input.Amount
	}
	if input.Currency != nil {
		debt.Currency = entity.NormalizeCurrency(*input.Currency)
	}
	if input.Category != nil {
		debt.Category = *input.Category
	}
	if input.PaymentMethod != nil {
		debt.PaymentMethod = *input.PaymentMethod
	}
	if input.DueDate != nil {
		debt.DueDate = input.DueDate
	}
	if input.ClearDueDate {
		debt.DueDate = nil
	}
	if input.ReceiptURL != nil {
		debt.ReceiptURL = *input.ReceiptURL
	}
	debt.UpdatedAt = time.Now().UTC()

	if err := uc.sources.Debts.Update(ctx, debt); err != nil {
		return fmt.Errorf("failed to update debt: %w", err)
	}
	return nil
}

func (uc *UpdateItemUseCase) updateIncome(ctx context.Context, input UpdateItemInput) error {
	income, err := uc.sources.Income.FindByID(ctx, input.ID)
	if err != nil {
		return err
	}
	if income.OwnerID != input.OwnerID {
		return notFound(input.ID)
	}

	if input.Name != nil {
		income.Name = *input.Name
	}
	if input.Amount != nil {
		income.Amount = *input.Amount
	}
	if input.Currency != nil {
		income.Currency = entity.NormalizeCurrency(*input.Currency)
	}
	if input.Category != nil {
		income.Category = *input.Category
	}
	if input.PaymentMethod != nil {
		income.PaymentMethod = *input.PaymentMethod
	}
	if input.DueDate != nil {
		income.ExpectedDate = input.DueDate
	}
	if input.ClearDueDate {
		income.ExpectedDate = nil
	}
	if input.Probability != nil {
		income.Probability = *input.Probability
	}
	income.UpdatedAt = time.Now().UTC()

	if err := uc.sources.Income.Update(ctx, income); err != nil {
		return fmt.Errorf("failed to update income: %w", err)
	}
	return nil
}

// notFound wraps an unknown or foreign item ID into the not-found domain error.
func notFound(id uuid.UUID) error {
	return domainerror.NewLedgerError(
		domainerror.ErrCodeItemNotFound,
		fmt.Sprintf("no ledger item with id %s", id),
		domainerror.ErrItemNotFound,
	)
}
