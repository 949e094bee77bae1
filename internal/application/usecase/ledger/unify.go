// Package ledger contains the ledger aggregation engine use cases.
package ledger

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerboard/backend/internal/application/usecase/currency"
	"github.com/ledgerboard/backend/internal/application/usecase/payment"
	"github.com/ledgerboard/backend/internal/domain/entity"
)

// Collections holds the raw record collections fetched from the ledger source.
type Collections struct {
	Expenses []*entity.Expense
	Debts    []*entity.Debt
	Income   []*entity.Income
	Payments map[uuid.UUID][]*entity.Payment
}

// Unify maps the three record kinds into the common UnifiedItem shape for the
// selected month:
//
//   - expenses: every active expense, month-independent (standing obligations);
//   - debts: total_amount as the amount, scoped by due-date month; a debt
//     with no due date is included in every month so it cannot silently
//     disappear from view;
//   - income: scoped by expected-date month.
//
// Each item carries precomputed ARS and opposite-currency equivalents.
// Malformed records degrade (zero amount, ARS currency) instead of failing
// the whole view.
func Unify(c Collections, month Month, rate decimal.Decimal) []*entity.UnifiedItem {
	items := make([]*entity.UnifiedItem, 0, len(c.Expenses)+len(c.Debts)+len(c.Income))

	for _, e := range c.Expenses {
		if !e.IsActive {
			continue
		}
		items = append(items, unifyExpense(e, c.Payments[e.ID], rate))
	}

	for _, d := range c.Debts {
		if d.DueDate != nil && !month.Contains(d.DueDate) {
			continue
		}
		items = append(items, unifyDebt(d, c.Payments[d.ID], rate))
	}

	for _, i := range c.Income {
		if !month.Contains(i.ExpectedDate) {
			continue
		}
		items = append(items, unifyIncome(i, c.Payments[i.ID], rate))
	}

	return items
}

func unifyExpense(e *entity.Expense, payments []*entity.Payment, rate decimal.Decimal) *entity.UnifiedItem {
	item := &entity.UnifiedItem{
		ID:            e.ID,
		Type:          entity.ItemTypeExpense,
		Description:   e.Name,
		Amount:        e.Amount,
		Currency:      entity.NormalizeCurrency(e.Currency),
		DueDate:       e.DueDate,
		PaidDate:      e.PaidDate,
		Category:      e.Category,
		PaymentMethod: e.PaymentMethod,
		ReceiptURL:    e.ReceiptURL,
		Paid:          e.Paid,
		Payments:      payments,
		TotalPaid:     payment.Summarize(e.Amount, payments).TotalPaid,
	}
	precomputeConversions(item, rate)
	return item
}

func unifyDebt(d *entity.Debt, payments []*entity.Payment, rate decimal.Decimal) *entity.UnifiedItem {
	// Amount is always the debt's total, never the remainder; the remainder
	// is derived on demand from Amount and TotalPaid.
	totalPaid := payment.Summarize(d.TotalAmount, payments).TotalPaid
	if len(payments) == 0 {
		// Debts created before the payment sub-ledger carry only the
		// running amount_paid field.
		totalPaid = d.AmountPaid
	}

	item := &entity.UnifiedItem{
		ID:            d.ID,
		Type:          entity.ItemTypeDebt,
		Description:   d.Name,
		Amount:        d.TotalAmount,
		Currency:      entity.NormalizeCurrency(d.Currency),
		DueDate:       d.DueDate,
		PaidDate:      d.PaidDate,
		Category:      d.Category,
		PaymentMethod: d.PaymentMethod,
		ReceiptURL:    d.ReceiptURL,
		Paid:          d.Paid(),
		Payments:      payments,
		TotalPaid:     totalPaid,
	}
	precomputeConversions(item, rate)
	return item
}

func unifyIncome(i *entity.Income, payments []*entity.Payment, rate decimal.Decimal) *entity.UnifiedItem {
	item := &entity.UnifiedItem{
		ID:            i.ID,
		Type:          entity.ItemTypeIncome,
		Description:   i.Name,
		Amount:        i.Amount,
		Currency:      entity.NormalizeCurrency(i.Currency),
		DueDate:       i.ExpectedDate,
		PaidDate:      i.ReceivedDate,
		Category:      i.Category,
		PaymentMethod: i.PaymentMethod,
		Paid:          i.Received(),
		Payments:      payments,
		TotalPaid:     payment.Summarize(i.Amount, payments).TotalPaid,
	}
	precomputeConversions(item, rate)
	return item
}

// precomputeConversions fills in the ARS and opposite-currency equivalents
// once per item so the sort/filter pass and the aggregator never re-convert.
func precomputeConversions(item *entity.UnifiedItem, rate decimal.Decimal) {
	item.AmountARS = currency.ToARS(item.Amount, item.Currency, rate)
	item.AmountConverted = currency.ToOther(item.Amount, item.Currency, rate)
}
