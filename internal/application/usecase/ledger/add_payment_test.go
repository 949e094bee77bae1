// Package ledger contains the ledger aggregation engine use cases.
package ledger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerboard/backend/internal/domain/entity"
	domainerror "github.com/ledgerboard/backend/internal/domain/error"
)

func TestAddPayment(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	paymentDate := time.Date(2025, 3, 10, 15, 0, 0, 0, time.UTC)

	newUseCase := func(sources Sources) *AddPaymentUseCase {
		getItems := NewGetItemsUseCase(sources)
		return NewAddPaymentUseCase(sources, getItems, WritePolicy{RefetchAfterWrite: true})
	}

	t.Run("partial payment updates the debt without settling it", func(t *testing.T) {
		sources, _, debts, _, _ := newFakeSources(decimal.NewFromInt(1000))
		d := entity.NewDebt(ownerID, "loan", decimal.NewFromInt(1000), entity.CurrencyARS, "", "", nil)
		_ = debts.Insert(ctx, d)

		out, err := newUseCase(sources).Execute(ctx, AddPaymentInput{
			OwnerID: ownerID, ItemID: d.ID, ItemType: entity.ItemTypeDebt,
			Amount: decimal.NewFromInt(400), Currency: entity.CurrencyARS, PaymentDate: paymentDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if out.Completed {
			t.Error("expected payment not to settle the debt")
		}
		if !out.Summary.TotalPaid.Equal(decimal.NewFromInt(400)) {
			t.Errorf("expected total paid 400, got %s", out.Summary.TotalPaid)
		}
		if !out.Summary.Remaining.Equal(decimal.NewFromInt(600)) {
			t.Errorf("expected remaining 600, got %s", out.Summary.Remaining)
		}
		if !out.Summary.HasPartialPayment {
			t.Error("expected partial payment flag")
		}

		stored, _ := debts.FindByID(ctx, d.ID)
		if stored.Paid() {
			t.Error("expected debt still pending")
		}
		if !stored.AmountPaid.Equal(decimal.NewFromInt(400)) {
			t.Errorf("expected amount_paid mirrored to 400, got %s", stored.AmountPaid)
		}
	})

	t.Run("payment reaching the total settles the debt", func(t *testing.T) {
		sources, _, debts, _, payments := newFakeSources(decimal.NewFromInt(1000))
		d := entity.NewDebt(ownerID, "loan", decimal.NewFromInt(1000), entity.CurrencyARS, "", "", nil)
		_ = debts.Insert(ctx, d)
		_ = payments.Append(ctx, entity.NewPayment(d.ID, entity.ItemTypeDebt, decimal.NewFromInt(400), entity.CurrencyARS, paymentDate.AddDate(0, 0, -5), "", ""))

		out, err := newUseCase(sources).Execute(ctx, AddPaymentInput{
			OwnerID: ownerID, ItemID: d.ID, ItemType: entity.ItemTypeDebt,
			Amount: decimal.NewFromInt(600), Currency: entity.CurrencyARS, PaymentDate: paymentDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !out.Completed {
			t.Error("expected payment to settle the debt")
		}
		if !out.Summary.FullyPaidByPayments {
			t.Error("expected fully paid summary")
		}

		stored, _ := debts.FindByID(ctx, d.ID)
		if !stored.Paid() {
			t.Error("expected debt marked paid")
		}
		if stored.PaidDate == nil || !stored.PaidDate.Equal(time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)) {
			t.Errorf("expected paid date from the payment date, got %v", stored.PaidDate)
		}
		if !stored.AmountPaid.Equal(decimal.NewFromInt(1000)) {
			t.Errorf("expected amount_paid 1000, got %s", stored.AmountPaid)
		}
	})

	t.Run("settling payment marks an expense paid", func(t *testing.T) {
		sources, expenses, _, _, _ := newFakeSources(decimal.NewFromInt(1000))
		e := entity.NewExpense(ownerID, "rent", decimal.NewFromInt(500), entity.CurrencyARS, "", "", true, nil)
		_ = expenses.Insert(ctx, e)

		out, err := newUseCase(sources).Execute(ctx, AddPaymentInput{
			OwnerID: ownerID, ItemID: e.ID, ItemType: entity.ItemTypeExpense,
			Amount: decimal.NewFromInt(500), Currency: entity.CurrencyARS, PaymentDate: paymentDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Completed {
			t.Error("expected expense settled")
		}

		stored, _ := expenses.FindByID(ctx, e.ID)
		if !stored.Paid || stored.PaidDate == nil {
			t.Error("expected expense marked paid with date")
		}
	})

	t.Run("zero or negative amounts are rejected", func(t *testing.T) {
		sources, _, debts, _, _ := newFakeSources(decimal.NewFromInt(1000))
		d := entity.NewDebt(ownerID, "loan", decimal.NewFromInt(1000), entity.CurrencyARS, "", "", nil)
		_ = debts.Insert(ctx, d)

		for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-50)} {
			_, err := newUseCase(sources).Execute(ctx, AddPaymentInput{
				OwnerID: ownerID, ItemID: d.ID, ItemType: entity.ItemTypeDebt,
				Amount: amount, Currency: entity.CurrencyARS, PaymentDate: paymentDate,
			})
			if !errors.Is(err, domainerror.ErrInvalidPaymentAmount) {
				t.Errorf("expected ErrInvalidPaymentAmount for %s, got %v", amount, err)
			}
		}
	})

	t.Run("unknown item is rejected before any write", func(t *testing.T) {
		sources, _, _, _, payments := newFakeSources(decimal.NewFromInt(1000))

		_, err := newUseCase(sources).Execute(ctx, AddPaymentInput{
			OwnerID: ownerID, ItemID: uuid.New(), ItemType: entity.ItemTypeDebt,
			Amount: decimal.NewFromInt(100), Currency: entity.CurrencyARS, PaymentDate: paymentDate,
		})
		if !errors.Is(err, domainerror.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
		if len(payments.payments) != 0 {
			t.Error("expected no payment appended")
		}
	})

	t.Run("over-payment clamps the summary", func(t *testing.T) {
		sources, _, debts, _, _ := newFakeSources(decimal.NewFromInt(1000))
		d := entity.NewDebt(ownerID, "loan", decimal.NewFromInt(1000), entity.CurrencyARS, "", "", nil)
		_ = debts.Insert(ctx, d)

		out, err := newUseCase(sources).Execute(ctx, AddPaymentInput{
			OwnerID: ownerID, ItemID: d.ID, ItemType: entity.ItemTypeDebt,
			Amount: decimal.NewFromInt(1500), Currency: entity.CurrencyARS, PaymentDate: paymentDate,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Summary.Remaining.IsZero() {
			t.Errorf("expected zero remaining, got %s", out.Summary.Remaining)
		}
		if !out.Summary.Progress.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected progress clamped to 100, got %s", out.Summary.Progress)
		}
		if !out.Completed {
			t.Error("expected over-payment to settle the debt")
		}
	})
}
