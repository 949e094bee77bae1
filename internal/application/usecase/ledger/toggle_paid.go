// Package ledger contains the ledger aggregation engine use cases.
package ledger

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerboard/backend/internal/application/usecase/payment"
	"github.com/ledgerboard/backend/internal/domain/entity"
	domainerror "github.com/ledgerboard/backend/internal/domain/error"
)

// TogglePaidInput represents the input for flipping an item's paid flag.
type TogglePaidInput struct {
	OwnerID uuid.UUID
	ID      uuid.UUID
	Type    entity.ItemType
	Month   string
	Today   time.Time
}

// TogglePaidOutput represents the output of a paid toggle.
type TogglePaidOutput struct {
	Paid  bool
	Items []*entity.UnifiedItem
}

// TogglePaidUseCase flips an item between paid and unpaid.
//
// An item that has registered payments covering less than its total cannot be
// marked paid here: it must reach full payment through the payment
// sub-ledger. The toggle leaves state untouched and reports the conflict as a
// typed domain error.
type TogglePaidUseCase struct {
	sources  Sources
	getItems *GetItemsUseCase
	policy   WritePolicy
}

// NewTogglePaidUseCase creates a new TogglePaidUseCase instance.
func NewTogglePaidUseCase(sources Sources, getItems *GetItemsUseCase, policy WritePolicy) *TogglePaidUseCase {
	return &TogglePaidUseCase{
		sources:  sources,
		getItems: getItems,
		policy:   policy,
	}
}

// Execute performs the toggle.
func (uc *TogglePaidUseCase) Execute(ctx context.Context, input TogglePaidInput) (*TogglePaidOutput, error) {
	today := input.Today
	if today.IsZero() {
		today = time.Now()
	}

	var paid bool
	var err error

	switch input.Type {
	case entity.ItemTypeExpense:
		paid, err = uc.toggleExpense(ctx, input, today)
	case entity.ItemTypeDebt:
		paid, err = uc.toggleDebt(ctx, input, today)
	case entity.ItemTypeIncome:
		paid, err = uc.toggleIncome(ctx, input, today)
	default:
		err = domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidItemType,
			fmt.Sprintf("item type must be expense, debt or income, got %q", input.Type),
			domainerror.ErrInvalidItemType,
		)
	}
	if err != nil {
		return nil, err
	}

	items, err := refetch(ctx, uc.getItems, uc.policy, input.OwnerID, input.Month, input.Today)
	if err != nil {
		return nil, err
	}

	return &TogglePaidOutput{
		Paid:  paid,
		Items: items,
	}, nil
}

// guardPartialPayment refuses to mark an unpaid item paid while its payments
// cover less than the total amount.
func (uc *TogglePaidUseCase) guardPartialPayment(
	ctx context.Context,
	id uuid.UUID,
	itemType entity.ItemType,
	totalAmount decimal.Decimal,
	currentlyPaid bool,
) error {
	if currentlyPaid {
		// Unmarking paid is always allowed.
		return nil
	}

	payments, err := uc.sources.Payments.FindByItem(ctx, id, itemType)
	if err != nil {
		return fmt.Errorf("failed to fetch payments: %w", err)
	}

	summary := payment.Summarize(totalAmount, payments)
	if len(payments) > 0 && summary.TotalPaid.LessThan(totalAmount) {
		return domainerror.NewLedgerError(
			domainerror.ErrCodeItemPartiallyPaid,
			"item must reach full payment through its registered payments",
			domainerror.ErrItemPartiallyPaid,
		)
	}
	return nil
}

func (uc *TogglePaidUseCase) toggleExpense(ctx context.Context, input TogglePaidInput, today time.Time) (bool, error) {
	expense, err := uc.sources.Expenses.FindByID(ctx, input.ID)
	if err != nil {
		return false, err
	}
	if expense.OwnerID != input.OwnerID {
		return false, notFound(input.ID)
	}

	if err := uc.guardPartialPayment(ctx, expense.ID, entity.ItemTypeExpense, expense.Amount, expense.Paid); err != nil {
		return false, err
	}

	expense.Paid = !expense.Paid
	if expense.Paid {
		paidDate := truncateToDay(today)
		expense.PaidDate = &paidDate
	} else {
		expense.PaidDate = nil
	}
	expense.UpdatedAt = time.Now().UTC()

	if err := uc.sources.Expenses.Update(ctx, expense); err != nil {
		return false, fmt.Errorf("failed to update expense: %w", err)
	}
	return expense.Paid, nil
}

func (uc *TogglePaidUseCase) toggleDebt(ctx context.Context, input TogglePaidInput, today time.Time) (bool, error) {
	debt, err := uc.sources.Debts.FindByID(ctx, input.ID)
	if err != nil {
		return false, err
	}
	if debt.OwnerID != input.OwnerID {
		return false, notFound(input.ID)
	}

	if err := uc.guardPartialPayment(ctx, debt.ID, entity.ItemTypeDebt, debt.TotalAmount, debt.Paid()); err != nil {
		return false, err
	}

	if debt.Paid() {
		debt.Status = entity.DebtStatusPending
		debt.PaidDate = nil
	} else {
		debt.Status = entity.DebtStatusPaid
		paidDate := truncateToDay(today)
		debt.PaidDate = &paidDate
	}
	debt.UpdatedAt = time.Now().UTC()

	if err := uc.sources.Debts.Update(ctx, debt); err != nil {
		return false, fmt.Errorf("failed to update debt: %w", err)
	}
	return debt.Paid(), nil
}

func (uc *TogglePaidUseCase) toggleIncome(ctx context.Context, input TogglePaidInput, today time.Time) (bool, error) {
	income, err := uc.sources.Income.FindByID(ctx, input.ID)
	if err != nil {
		return false, err
	}
	if income.OwnerID != input.OwnerID {
		return false, notFound(input.ID)
	}

	if err := uc.guardPartialPayment(ctx, income.ID, entity.ItemTypeIncome, income.Amount, income.Received()); err != nil {
		return false, err
	}

	if income.Received() {
		income.Status = entity.IncomeStatusExpected
		income.ReceivedDate = nil
	} else {
		income.Status = entity.IncomeStatusReceived
		receivedDate := truncateToDay(today)
		income.ReceivedDate = &receivedDate
	}
	income.UpdatedAt = time.Now().UTC()

	if err := uc.sources.Income.Update(ctx, income); err != nil {
		return false, fmt.Errorf("failed to update income: %w", err)
	}
	return income.Received(), nil
}
