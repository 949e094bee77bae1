// Package ledger contains the ledger aggregation engine use cases.
package ledger

import (
	"context"
	"sort"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerboard/backend/internal/domain/entity"
	domainerror "github.com/ledgerboard/backend/internal/domain/error"
)

// In-memory ledger sources for use case tests. Each fake stores entities by
// ID and mimics the not-found behavior of the persistence layer.

type fakeExpenseRepo struct {
	expenses map[uuid.UUID]*entity.Expense
}

func newFakeExpenseRepo() *fakeExpenseRepo {
	return &fakeExpenseRepo{expenses: make(map[uuid.UUID]*entity.Expense)}
}

func (r *fakeExpenseRepo) FindActiveByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Expense, error) {
	var out []*entity.Expense
	for _, e := range r.expenses {
		if e.OwnerID == ownerID && e.IsActive {
			out = append(out, e)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeExpenseRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Expense, error) {
	e, ok := r.expenses[id]
	if !ok {
		return nil, domainerror.ErrItemNotFound
	}
	copied := *e
	return &copied, nil
}

func (r *fakeExpenseRepo) Insert(_ context.Context, e *entity.Expense) error {
	copied := *e
	r.expenses[e.ID] = &copied
	return nil
}

func (r *fakeExpenseRepo) Update(_ context.Context, e *entity.Expense) error {
	if _, ok := r.expenses[e.ID]; !ok {
		return domainerror.ErrItemNotFound
	}
	copied := *e
	r.expenses[e.ID] = &copied
	return nil
}

type fakeDebtRepo struct {
	debts map[uuid.UUID]*entity.Debt
}

func newFakeDebtRepo() *fakeDebtRepo {
	return &fakeDebtRepo{debts: make(map[uuid.UUID]*entity.Debt)}
}

func (r *fakeDebtRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Debt, error) {
	var out []*entity.Debt
	for _, d := range r.debts {
		if d.OwnerID == ownerID {
			out = append(out, d)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeDebtRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Debt, error) {
	d, ok := r.debts[id]
	if !ok {
		return nil, domainerror.ErrItemNotFound
	}
	copied := *d
	return &copied, nil
}

func (r *fakeDebtRepo) Insert(_ context.Context, d *entity.Debt) error {
	copied := *d
	r.debts[d.ID] = &copied
	return nil
}

func (r *fakeDebtRepo) Update(_ context.Context, d *entity.Debt) error {
	if _, ok := r.debts[d.ID]; !ok {
		return domainerror.ErrItemNotFound
	}
	copied := *d
	r.debts[d.ID] = &copied
	return nil
}

type fakeIncomeRepo struct {
	incomes map[uuid.UUID]*entity.Income
}

func newFakeIncomeRepo() *fakeIncomeRepo {
	return &fakeIncomeRepo{incomes: make(map[uuid.UUID]*entity.Income)}
}

func (r *fakeIncomeRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Income, error) {
	var out []*entity.Income
	for _, i := range r.incomes {
		if i.OwnerID == ownerID {
			out = append(out, i)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

func (r *fakeIncomeRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Income, error) {
	i, ok := r.incomes[id]
	if !ok {
		return nil, domainerror.ErrItemNotFound
	}
	copied := *i
	return &copied, nil
}

func (r *fakeIncomeRepo) Insert(_ context.Context, i *entity.Income) error {
	copied := *i
	r.incomes[i.ID] = &copied
	return nil
}

func (r *fakeIncomeRepo) Update(_ context.Context, i *entity.Income) error {
	if _, ok := r.incomes[i.ID]; !ok {
		return domainerror.ErrItemNotFound
	}
	copied := *i
	r.incomes[i.ID] = &copied
	return nil
}

type fakePaymentRepo struct {
	payments []*entity.Payment
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{}
}

func (r *fakePaymentRepo) FindByItem(_ context.Context, itemID uuid.UUID, itemType entity.ItemType) ([]*entity.Payment, error) {
	var out []*entity.Payment
	for _, p := range r.payments {
		if p.ItemID == itemID && p.ItemType == itemType {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].PaymentDate.Before(out[j].PaymentDate) })
	return out, nil
}

func (r *fakePaymentRepo) FindByItems(_ context.Context, itemIDs []uuid.UUID) (map[uuid.UUID][]*entity.Payment, error) {
	wanted := make(map[uuid.UUID]bool, len(itemIDs))
	for _, id := range itemIDs {
		wanted[id] = true
	}
	grouped := make(map[uuid.UUID][]*entity.Payment)
	for _, p := range r.payments {
		if wanted[p.ItemID] {
			grouped[p.ItemID] = append(grouped[p.ItemID], p)
		}
	}
	return grouped, nil
}

func (r *fakePaymentRepo) Append(_ context.Context, p *entity.Payment) error {
	copied := *p
	r.payments = append(r.payments, &copied)
	return nil
}

type fakeCategoryRepo struct {
	categories map[uuid.UUID]*entity.Category
}

func newFakeCategoryRepo() *fakeCategoryRepo {
	return &fakeCategoryRepo{categories: make(map[uuid.UUID]*entity.Category)}
}

func (r *fakeCategoryRepo) Create(_ context.Context, c *entity.Category) error {
	copied := *c
	r.categories[c.ID] = &copied
	return nil
}

func (r *fakeCategoryRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Category, error) {
	c, ok := r.categories[id]
	if !ok {
		return nil, domainerror.ErrCategoryNotFound
	}
	copied := *c
	return &copied, nil
}

func (r *fakeCategoryRepo) FindByOwner(_ context.Context, ownerID uuid.UUID) ([]*entity.Category, error) {
	var out []*entity.Category
	for _, c := range r.categories {
		if c.OwnerID == ownerID {
			out = append(out, c)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (r *fakeCategoryRepo) Update(_ context.Context, c *entity.Category) error {
	if _, ok := r.categories[c.ID]; !ok {
		return domainerror.ErrCategoryNotFound
	}
	copied := *c
	r.categories[c.ID] = &copied
	return nil
}

func (r *fakeCategoryRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(r.categories, id)
	return nil
}

func (r *fakeCategoryRepo) ExistsByNameAndOwner(_ context.Context, name string, ownerID uuid.UUID) (bool, error) {
	for _, c := range r.categories {
		if c.Name == name && c.OwnerID == ownerID {
			return true, nil
		}
	}
	return false, nil
}

type fakeRateStore struct {
	rate decimal.Decimal
}

func (s *fakeRateStore) Get(_ context.Context) (decimal.Decimal, error) {
	return s.rate, nil
}

func (s *fakeRateStore) Set(_ context.Context, rate decimal.Decimal) error {
	s.rate = rate
	return nil
}

// newFakeSources builds a complete in-memory Sources bundle at the given rate.
func newFakeSources(rate decimal.Decimal) (Sources, *fakeExpenseRepo, *fakeDebtRepo, *fakeIncomeRepo, *fakePaymentRepo) {
	expenses := newFakeExpenseRepo()
	debts := newFakeDebtRepo()
	incomes := newFakeIncomeRepo()
	payments := newFakePaymentRepo()
	categories := newFakeCategoryRepo()

	sources := Sources{
		Expenses:   expenses,
		Debts:      debts,
		Income:     incomes,
		Payments:   payments,
		Categories: categories,
		Rates:      &fakeRateStore{rate: rate},
	}
	return sources, expenses, debts, incomes, payments
}
