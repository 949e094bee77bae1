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

// AddPaymentInput represents the input for registering a payment against a
// ledger item.
type AddPaymentInput struct {
	OwnerID       uuid.UUID
	ItemID        uuid.UUID
	ItemType      entity.ItemType
	Amount        decimal.Decimal
	Currency      entity.Currency
	PaymentDate   time.Time
	PaymentMethod string
	Notes         string
	Month         string
	Today         time.Time
}

// AddPaymentOutput represents the output of a payment append.
type AddPaymentOutput struct {
	Payment   *entity.Payment
	Summary   payment.Summary
	Completed bool // True when this payment settled the item in full
	Items     []*entity.UnifiedItem
}

// AddPaymentUseCase appends a payment to an item's sub-ledger. When the new
// payment brings the total paid up to the item's amount, the item is marked
// paid automatically with the payment date as its paid date.
type AddPaymentUseCase struct {
	sources  Sources
	getItems *GetItemsUseCase
	policy   WritePolicy
}

// NewAddPaymentUseCase creates a new AddPaymentUseCase instance.
func NewAddPaymentUseCase(sources Sources, getItems *GetItemsUseCase, policy WritePolicy) *AddPaymentUseCase {
	return &AddPaymentUseCase{
		sources:  sources,
		getItems: getItems,
		policy:   policy,
	}
}

// Execute performs the payment append.
func (uc *AddPaymentUseCase) Execute(ctx context.Context, input AddPaymentInput) (*AddPaymentOutput, error) {
	if !input.Amount.IsPositive() {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodeInvalidPaymentAmount,
			"payment amount must be greater than zero",
			domainerror.ErrInvalidPaymentAmount,
		)
	}

	totalAmount, err := uc.itemTotal(ctx, input)
	if err != nil {
		return nil, err
	}

	p := entity.NewPayment(
		input.ItemID,
		input.ItemType,
		input.Amount,
		input.Currency,
		input.PaymentDate,
		input.PaymentMethod,
		input.Notes,
	)
	if err := uc.sources.Payments.Append(ctx, p); err != nil {
		return nil, domainerror.NewPaymentError(
			domainerror.ErrCodePaymentWriteFailed,
			"failed to append payment",
			err,
		)
	}

	payments, err := uc.sources.Payments.FindByItem(ctx, input.ItemID, input.ItemType)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}
	summary := payment.Summarize(totalAmount, payments)

	completed, err := uc.settle(ctx, input, summary)
	if err != nil {
		return nil, err
	}

	items, err := refetch(ctx, uc.getItems, uc.policy, input.OwnerID, input.Month, input.Today)
	if err != nil {
		return nil, err
	}

	return &AddPaymentOutput{
		Payment:   p,
		Summary:   summary,
		Completed: completed,
		Items:     items,
	}, nil
}

// itemTotal loads the parent item, checks ownership and returns its total
// obligation.
func (uc *AddPaymentUseCase) itemTotal(ctx context.Context, input AddPaymentInput) (decimal.Decimal, error) {
	switch input.ItemType {
	case entity.ItemTypeExpense:
		expense, err := uc.sources.Expenses.FindByID(ctx, input.ItemID)
		if err != nil {
			return decimal.Zero, err
		}
		if expense.OwnerID != input.OwnerID {
			return decimal.Zero, notFound(input.ItemID)
		}
		return expense.Amount, nil

	case entity.ItemTypeDebt:
		debt, err := uc.sources.Debts.FindByID(ctx, input.ItemID)
		if err != nil {
			return decimal.Zero, err
		}
		if debt.OwnerID != input.OwnerID {
			return decimal.Zero, notFound(input.ItemID)
		}
		return debt.TotalAmount, nil

	case entity.ItemTypeIncome:
		income, err := uc.sources.Income.FindByID(ctx, input.ItemID)
		if err != nil {
			return decimal.Zero, err
		}
		if income.OwnerID != input.OwnerID {
			return decimal.Zero, notFound(input.ItemID)
		}
		return income.Amount, nil
	}

	return decimal.Zero, domainerror.NewLedgerError(
		domainerror.ErrCodeInvalidItemType,
		fmt.Sprintf("item type must be expense, debt or income, got %q", input.ItemType),
		domainerror.ErrInvalidItemType,
	)
}

// settle mirrors the payment total back onto the parent item and marks it
// paid when the payments now cover the full amount.
func (uc *AddPaymentUseCase) settle(ctx context.Context, input AddPaymentInput, summary payment.Summary) (bool, error) {
	paidDate := truncateToDay(input.PaymentDate)

	switch input.ItemType {
	case entity.ItemTypeExpense:
		if !summary.FullyPaidByPayments {
			return false, nil
		}
		expense, err := uc.sources.Expenses.FindByID(ctx, input.ItemID)
		if err != nil {
			return false, err
		}
		expense.Paid = true
		expense.PaidDate = &paidDate
		expense.UpdatedAt = time.Now().UTC()
		if err := uc.sources.Expenses.Update(ctx, expense); err != nil {
			return false, fmt.Errorf("failed to settle expense: %w", err)
		}
		return true, nil

	case entity.ItemTypeDebt:
		debt, err := uc.sources.Debts.FindByID(ctx, input.ItemID)
		if err != nil {
			return false, err
		}
		// The running amount_paid always mirrors the payment sub-ledger.
		debt.AmountPaid = summary.TotalPaid
		if summary.FullyPaidByPayments {
			debt.Status = entity.DebtStatusPaid
			debt.PaidDate = &paidDate
		}
		debt.UpdatedAt = time.Now().UTC()
		if err := uc.sources.Debts.Update(ctx, debt); err != nil {
			return false, fmt.Errorf("failed to settle debt: %w", err)
		}
		return summary.FullyPaidByPayments, nil

	case entity.ItemTypeIncome:
		if !summary.FullyPaidByPayments {
			return false, nil
		}
		income, err := uc.sources.Income.FindByID(ctx, input.ItemID)
		if err != nil {
			return false, err
		}
		income.Status = entity.IncomeStatusReceived
		income.ReceivedDate = &paidDate
		income.UpdatedAt = time.Now().UTC()
		if err := uc.sources.Income.Update(ctx, income); err != nil {
			return false, fmt.Errorf("failed to settle income: %w", err)
		}
		return true, nil
	}

	return false, nil
}
