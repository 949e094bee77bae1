// Package dashboard contains the monthly aggregation use cases.
package dashboard

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerboard/backend/internal/application/usecase/currency"
	"github.com/ledgerboard/backend/internal/application/usecase/ledger"
	"github.com/ledgerboard/backend/internal/domain/entity"
)

// Semaphore is the traffic-light health signal summarizing monthly income
// against obligations.
type Semaphore string

const (
	SemaphoreGreen  Semaphore = "green"
	SemaphoreYellow Semaphore = "yellow"
	SemaphoreRed    Semaphore = "red"
)

// yellowMarginThreshold is the margin percent below which a non-negative gap
// still reads yellow. Fixed for now; a candidate for per-user tuning later.
var yellowMarginThreshold = decimal.NewFromInt(20)

// exhaustedMargin is the margin reported when there is no income to measure
// against, forcing a maximally negative signal instead of dividing by zero.
var exhaustedMargin = decimal.NewFromInt(-100)

var hundred = decimal.NewFromInt(100)

// Totals are the ARS-normalized monthly totals and the derived health signal.
type Totals struct {
	TotalExpensesARS decimal.Decimal
	TotalDebtsARS    decimal.Decimal
	TotalIncomeARS   decimal.Decimal
	Gap              decimal.Decimal
	MarginPercent    decimal.Decimal
	Semaphore        Semaphore
}

// Aggregate computes the monthly totals:
//
//   - expenses count in full for every active expense, independent of month;
//     they are standing obligations, not month-scoped records;
//   - debts contribute their outstanding remainder, only when due in the
//     selected month (a debt with no due date counts every month);
//   - income counts when expected in the selected month.
func Aggregate(
	expenses []*entity.Expense,
	debts []*entity.Debt,
	income []*entity.Income,
	month ledger.Month,
	rate decimal.Decimal,
) Totals {
	totalExpenses := decimal.Zero
	for _, e := range expenses {
		if !e.IsActive {
			continue
		}
		totalExpenses = totalExpenses.Add(currency.ToARS(e.Amount, e.Currency, rate))
	}

	totalDebts := decimal.Zero
	for _, d := range debts {
		if d.DueDate != nil && !month.Contains(d.DueDate) {
			continue
		}
		totalDebts = totalDebts.Add(currency.ToARS(d.Remaining(), d.Currency, rate))
	}

	totalIncome := decimal.Zero
	for _, i := range income {
		if !month.Contains(i.ExpectedDate) {
			continue
		}
		totalIncome = totalIncome.Add(currency.ToARS(i.Amount, i.Currency, rate))
	}

	gap := totalIncome.Sub(totalExpenses).Sub(totalDebts)

	margin := exhaustedMargin
	if totalIncome.IsPositive() {
		margin = gap.Div(totalIncome).Mul(hundred)
	}

	return Totals{
		TotalExpensesARS: totalExpenses,
		TotalDebtsARS:    totalDebts,
		TotalIncomeARS:   totalIncome,
		Gap:              gap,
		MarginPercent:    margin,
		Semaphore:        Evaluate(gap, margin),
	}
}

// Evaluate maps a gap and margin to the traffic-light signal.
func Evaluate(gap, marginPercent decimal.Decimal) Semaphore {
	switch {
	case gap.IsNegative():
		return SemaphoreRed
	case marginPercent.LessThan(yellowMarginThreshold):
		return SemaphoreYellow
	default:
		return SemaphoreGreen
	}
}
