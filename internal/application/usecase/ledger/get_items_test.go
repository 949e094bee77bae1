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

func TestGetItems(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	today := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	t.Run("runs the full pipeline and sorts by urgency", func(t *testing.T) {
		sources, expenses, debts, incomes, _ := newFakeSources(decimal.NewFromInt(1000))

		overdue := entity.NewExpense(ownerID, "electricity", decimal.NewFromInt(300), entity.CurrencyARS, "utilities", "transfer", true, datePtr(2025, 3, 10))
		_ = expenses.Insert(ctx, overdue)

		paid := entity.NewExpense(ownerID, "internet", decimal.NewFromInt(200), entity.CurrencyARS, "utilities", "card", true, datePtr(2025, 3, 5))
		paid.Paid = true
		_ = expenses.Insert(ctx, paid)

		upcoming := entity.NewDebt(ownerID, "loan", decimal.NewFromInt(1000), entity.CurrencyARS, "", "", datePtr(2025, 3, 20))
		_ = debts.Insert(ctx, upcoming)

		income := entity.NewIncome(ownerID, "salary", decimal.NewFromInt(5000), entity.CurrencyARS, "", datePtr(2025, 3, 28), entity.IncomeProbabilityHigh)
		_ = incomes.Insert(ctx, income)

		out, err := NewGetItemsUseCase(sources).Execute(ctx, GetItemsInput{OwnerID: ownerID, Today: today})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if len(out.Items) != 4 {
			t.Fatalf("expected 4 items, got %d", len(out.Items))
		}
		if out.Items[0].Description != "electricity" {
			t.Errorf("expected overdue item first, got %q", out.Items[0].Description)
		}
		if out.Items[len(out.Items)-1].Description != "internet" {
			t.Errorf("expected paid item last, got %q", out.Items[len(out.Items)-1].Description)
		}
		if out.Month.String() != "2025-03" {
			t.Errorf("expected default month 2025-03, got %s", out.Month)
		}
	})

	t.Run("explicit month scopes debts and income", func(t *testing.T) {
		sources, _, debts, incomes, _ := newFakeSources(decimal.NewFromInt(1000))

		march := entity.NewDebt(ownerID, "march debt", decimal.NewFromInt(100), entity.CurrencyARS, "", "", datePtr(2025, 3, 20))
		_ = debts.Insert(ctx, march)
		april := entity.NewIncome(ownerID, "april pay", decimal.NewFromInt(100), entity.CurrencyARS, "", datePtr(2025, 4, 1), entity.IncomeProbabilityHigh)
		_ = incomes.Insert(ctx, april)

		out, err := NewGetItemsUseCase(sources).Execute(ctx, GetItemsInput{OwnerID: ownerID, Month: "2025-04", Today: today})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Items) != 1 || out.Items[0].Description != "april pay" {
			t.Fatalf("expected only the April income, got %d items", len(out.Items))
		}
	})

	t.Run("filter narrows the view", func(t *testing.T) {
		sources, expenses, debts, _, _ := newFakeSources(decimal.NewFromInt(1000))
		_ = expenses.Insert(ctx, entity.NewExpense(ownerID, "rent", decimal.NewFromInt(500), entity.CurrencyARS, "housing", "", true, nil))
		_ = debts.Insert(ctx, entity.NewDebt(ownerID, "loan", decimal.NewFromInt(100), entity.CurrencyARS, "", "", nil))

		out, err := NewGetItemsUseCase(sources).Execute(ctx, GetItemsInput{
			OwnerID: ownerID, Today: today, Filter: Filter{Type: "expense"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Items) != 1 || out.Items[0].Type != entity.ItemTypeExpense {
			t.Fatalf("expected only the expense, got %d items", len(out.Items))
		}
	})

	t.Run("malformed month is a typed error", func(t *testing.T) {
		sources, _, _, _, _ := newFakeSources(decimal.NewFromInt(1000))

		_, err := NewGetItemsUseCase(sources).Execute(ctx, GetItemsInput{OwnerID: ownerID, Month: "March 2025", Today: today})
		if !errors.Is(err, domainerror.ErrInvalidMonth) {
			t.Fatalf("expected ErrInvalidMonth, got %v", err)
		}
	})

	t.Run("rate flows into the conversions", func(t *testing.T) {
		sources, expenses, _, _, _ := newFakeSources(decimal.NewFromInt(1200))
		_ = expenses.Insert(ctx, entity.NewExpense(ownerID, "hosting", decimal.NewFromInt(10), entity.CurrencyUSD, "", "", true, nil))

		out, err := NewGetItemsUseCase(sources).Execute(ctx, GetItemsInput{OwnerID: ownerID, Today: today})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Rate.Equal(decimal.NewFromInt(1200)) {
			t.Errorf("expected rate 1200, got %s", out.Rate)
		}
		if !out.Items[0].AmountARS.Equal(decimal.NewFromInt(12000)) {
			t.Errorf("expected AmountARS 12000, got %s", out.Items[0].AmountARS)
		}
	})
}

func TestInsertItem(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	today := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	newUseCase := func(sources Sources) *InsertItemUseCase {
		getItems := NewGetItemsUseCase(sources)
		return NewInsertItemUseCase(sources, getItems, WritePolicy{RefetchAfterWrite: true})
	}

	t.Run("inserts an expense and returns the refreshed view", func(t *testing.T) {
		sources, expenses, _, _, _ := newFakeSources(decimal.NewFromInt(1000))

		out, err := newUseCase(sources).Execute(ctx, InsertItemInput{
			OwnerID: ownerID, Type: entity.ItemTypeExpense, Name: "rent",
			Amount: decimal.NewFromInt(500), Currency: entity.CurrencyARS,
			Category: "housing", IsRecurring: true, Today: today,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, err := expenses.FindByID(ctx, out.ID)
		if err != nil {
			t.Fatalf("expected expense persisted: %v", err)
		}
		if !stored.IsActive {
			t.Error("expected new expense active")
		}
		if len(out.Items) != 1 {
			t.Errorf("expected refreshed view with 1 item, got %d", len(out.Items))
		}
	})

	t.Run("inserts a pending debt", func(t *testing.T) {
		sources, _, debts, _, _ := newFakeSources(decimal.NewFromInt(1000))

		out, err := newUseCase(sources).Execute(ctx, InsertItemInput{
			OwnerID: ownerID, Type: entity.ItemTypeDebt, Name: "loan",
			Amount: decimal.NewFromInt(900), Currency: entity.CurrencyUSD, Today: today,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, _ := debts.FindByID(ctx, out.ID)
		if stored.Status != entity.DebtStatusPending {
			t.Errorf("expected pending status, got %s", stored.Status)
		}
		if !stored.AmountPaid.IsZero() {
			t.Errorf("expected zero amount_paid, got %s", stored.AmountPaid)
		}
	})

	t.Run("missing name is rejected", func(t *testing.T) {
		sources, _, _, _, _ := newFakeSources(decimal.NewFromInt(1000))

		_, err := newUseCase(sources).Execute(ctx, InsertItemInput{
			OwnerID: ownerID, Type: entity.ItemTypeExpense,
			Amount: decimal.NewFromInt(500), Today: today,
		})
		if !errors.Is(err, domainerror.ErrMissingItemFields) {
			t.Fatalf("expected ErrMissingItemFields, got %v", err)
		}
	})

	t.Run("unknown type is rejected", func(t *testing.T) {
		sources, _, _, _, _ := newFakeSources(decimal.NewFromInt(1000))

		_, err := newUseCase(sources).Execute(ctx, InsertItemInput{
			OwnerID: ownerID, Type: entity.ItemType("subscription"), Name: "x",
			Amount: decimal.NewFromInt(1), Today: today,
		})
		if !errors.Is(err, domainerror.ErrInvalidItemType) {
			t.Fatalf("expected ErrInvalidItemType, got %v", err)
		}
	})
}

func TestUpdateItem(t *testing.T) {
	ctx := context.Background()
	ownerID := uuid.New()
	today := time.Date(2025, 3, 15, 12, 0, 0, 0, time.UTC)

	newUseCase := func(sources Sources) *UpdateItemUseCase {
		getItems := NewGetItemsUseCase(sources)
		return NewUpdateItemUseCase(sources, getItems, WritePolicy{RefetchAfterWrite: true})
	}

	t.Run("nil fields leave the record untouched", func(t *testing.T) {
		sources, expenses, _, _, _ := newFakeSources(decimal.NewFromInt(1000))
		e := entity.NewExpense(ownerID, "rent", decimal.NewFromInt(500), entity.CurrencyARS, "housing", "transfer", true, datePtr(2025, 3, 1))
		_ = expenses.Insert(ctx, e)

		newName := "rent march"
		_, err := newUseCase(sources).Execute(ctx, UpdateItemInput{
			OwnerID: ownerID, ID: e.ID, Type: entity.ItemTypeExpense,
			Name: &newName, Today: today,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, _ := expenses.FindByID(ctx, e.ID)
		if stored.Name != "rent march" {
			t.Errorf("expected renamed expense, got %q", stored.Name)
		}
		if !stored.Amount.Equal(decimal.NewFromInt(500)) || stored.Category != "housing" {
			t.Error("expected untouched fields preserved")
		}
	})

	t.Run("clearing the due date", func(t *testing.T) {
		sources, expenses, _, _, _ := newFakeSources(decimal.NewFromInt(1000))
		e := entity.NewExpense(ownerID, "rent", decimal.NewFromInt(500), entity.CurrencyARS, "", "", true, datePtr(2025, 3, 1))
		_ = expenses.Insert(ctx, e)

		_, err := newUseCase(sources).Execute(ctx, UpdateItemInput{
			OwnerID: ownerID, ID: e.ID, Type: entity.ItemTypeExpense,
			ClearDueDate: true, Today: today,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		stored, _ := expenses.FindByID(ctx, e.ID)
		if stored.DueDate != nil {
			t.Errorf("expected cleared due date, got %v", stored.DueDate)
		}
	})

	t.Run("deactivating hides the expense from the view", func(t *testing.T) {
		sources, expenses, _, _, _ := newFakeSources(decimal.NewFromInt(1000))
		e := entity.NewExpense(ownerID, "gym", decimal.NewFromInt(100), entity.CurrencyARS, "", "", true, nil)
		_ = expenses.Insert(ctx, e)

		inactive := false
		out, err := newUseCase(sources).Execute(ctx, UpdateItemInput{
			OwnerID: ownerID, ID: e.ID, Type: entity.ItemTypeExpense,
			IsActive: &inactive, Today: today,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.Items) != 0 {
			t.Errorf("expected the deactivated expense gone from the view, got %d items", len(out.Items))
		}
	})

	t.Run("foreign item reads as not found", func(t *testing.T) {
		sources, expenses, _, _, _ := newFakeSources(decimal.NewFromInt(1000))
		e := entity.NewExpense(uuid.New(), "not mine", decimal.NewFromInt(500), entity.CurrencyARS, "", "", true, nil)
		_ = expenses.Insert(ctx, e)

		newName := "hijack"
		_, err := newUseCase(sources).Execute(ctx, UpdateItemInput{
			OwnerID: ownerID, ID: e.ID, Type: entity.ItemTypeExpense,
			Name: &newName, Today: today,
		})
		if !errors.Is(err, domainerror.ErrItemNotFound) {
			t.Fatalf("expected ErrItemNotFound, got %v", err)
		}
	})
}
