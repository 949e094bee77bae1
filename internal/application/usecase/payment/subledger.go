// Package payment contains the payment sub-ledger computations.
package payment

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerboard/backend/internal/domain/entity"
)

// hundred is the percent scale used for progress.
var hundred = decimal.NewFromInt(100)

// Summary is the derived paid-state of one item's payment history.
//
// Payments are summed as-is: a payment's own currency is assumed to match the
// parent item's and is never converted. Over-payment is representable; it
// clamps Remaining at zero and Progress at 100%.
type Summary struct {
	TotalPaid           decimal.Decimal
	Remaining           decimal.Decimal
	Progress            decimal.Decimal // Percent, 0..100
	HasPartialPayment   bool
	FullyPaidByPayments bool
}

// Summarize derives the paid-state of an item from its total amount and its
// registered payments.
func Summarize(totalAmount decimal.Decimal, payments []*entity.Payment) Summary {
	totalPaid := decimal.Zero
	for _, p := range payments {
		totalPaid = totalPaid.Add(p.Amount)
	}

	remaining := totalAmount.Sub(totalPaid)
	if remaining.IsNegative() {
		remaining = decimal.Zero
	}

	progress := decimal.Zero
	if totalAmount.IsPositive() {
		progress = totalPaid.Div(totalAmount).Mul(hundred)
		if progress.GreaterThan(hundred) {
			progress = hundred
		}
	}

	return Summary{
		TotalPaid:           totalPaid,
		Remaining:           remaining,
		Progress:            progress,
		HasPartialPayment:   len(payments) > 0 && totalPaid.IsPositive() && totalPaid.LessThan(totalAmount),
		FullyPaidByPayments: len(payments) > 0 && totalPaid.GreaterThanOrEqual(totalAmount),
	}
}
