// Package ledger contains the ledger aggregation engine use cases.
package ledger

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerboard/backend/internal/application/adapter"
	"github.com/ledgerboard/backend/internal/domain/entity"
)

// Sources bundles the ledger-source repositories every engine use case reads
// from. The engine owns no durable state of its own: all derived values are
// recomputed from the latest snapshot fetched here.
type Sources struct {
	Expenses   adapter.ExpenseRepository
	Debts      adapter.DebtRepository
	Income     adapter.IncomeRepository
	Payments   adapter.PaymentRepository
	Categories adapter.CategoryRepository
	Rates      adapter.RateStore
}

// Snapshot is one consistent read of all four collections plus the blue rate.
type Snapshot struct {
	Expenses   []*entity.Expense
	Debts      []*entity.Debt
	Income     []*entity.Income
	Payments   map[uuid.UUID][]*entity.Payment
	Categories []*entity.Category
	Rate       decimal.Decimal
}

// Fetch reads all collections for an owner. Mutating use cases call it again
// after every write so derived totals are never computed from a mix of stale
// and fresh data.
func (s Sources) Fetch(ctx context.Context, ownerID uuid.UUID) (*Snapshot, error) {
	expenses, err := s.Expenses.FindActiveByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch expenses: %w", err)
	}

	debts, err := s.Debts.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch debts: %w", err)
	}

	income, err := s.Income.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch income: %w", err)
	}

	categories, err := s.Categories.FindByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch categories: %w", err)
	}

	itemIDs := make([]uuid.UUID, 0, len(expenses)+len(debts)+len(income))
	for _, e := range expenses {
		itemIDs = append(itemIDs, e.ID)
	}
	for _, d := range debts {
		itemIDs = append(itemIDs, d.ID)
	}
	for _, i := range income {
		itemIDs = append(itemIDs, i.ID)
	}

	payments, err := s.Payments.FindByItems(ctx, itemIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch payments: %w", err)
	}

	rate, err := s.Rates.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch blue rate: %w", err)
	}

	return &Snapshot{
		Expenses:   expenses,
		Debts:      debts,
		Income:     income,
		Payments:   payments,
		Categories: categories,
		Rate:       rate,
	}, nil
}

// Collections adapts the snapshot into the unifier's input shape.
func (s *Snapshot) Collections() Collections {
	return Collections{
		Expenses: s.Expenses,
		Debts:    s.Debts,
		Income:   s.Income,
		Payments: s.Payments,
	}
}
