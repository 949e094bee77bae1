// Package payment contains the payment sub-ledger computations.
package payment

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/ledgerboard/backend/internal/domain/entity"
)

func newTestPayment(amount string) *entity.Payment {
	return entity.NewPayment(
		uuid.New(),
		entity.ItemTypeDebt,
		decimal.RequireFromString(amount),
		entity.CurrencyARS,
		time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC),
		"transfer",
		"",
	)
}

func TestSummarize(t *testing.T) {
	total := decimal.NewFromInt(1000)

	t.Run("no payments yields zero progress", func(t *testing.T) {
		s := Summarize(total, nil)

		if !s.TotalPaid.IsZero() {
			t.Errorf("expected zero total paid, got %s", s.TotalPaid)
		}
		if !s.Remaining.Equal(total) {
			t.Errorf("expected remaining %s, got %s", total, s.Remaining)
		}
		if !s.Progress.IsZero() {
			t.Errorf("expected zero progress, got %s", s.Progress)
		}
		if s.HasPartialPayment {
			t.Error("expected no partial payment flag")
		}
		if s.FullyPaidByPayments {
			t.Error("expected not fully paid")
		}
	})

	t.Run("partial payment", func(t *testing.T) {
		s := Summarize(total, []*entity.Payment{newTestPayment("400")})

		if !s.TotalPaid.Equal(decimal.NewFromInt(400)) {
			t.Errorf("expected total paid 400, got %s", s.TotalPaid)
		}
		if !s.Remaining.Equal(decimal.NewFromInt(600)) {
			t.Errorf("expected remaining 600, got %s", s.Remaining)
		}
		if !s.Progress.Equal(decimal.NewFromInt(40)) {
			t.Errorf("expected progress 40, got %s", s.Progress)
		}
		if !s.HasPartialPayment {
			t.Error("expected partial payment flag")
		}
		if s.FullyPaidByPayments {
			t.Error("expected not fully paid")
		}
	})

	t.Run("payments summing to the total settle the item", func(t *testing.T) {
		s := Summarize(total, []*entity.Payment{
			newTestPayment("400"),
			newTestPayment("600"),
		})

		if !s.Remaining.IsZero() {
			t.Errorf("expected zero remaining, got %s", s.Remaining)
		}
		if !s.Progress.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected progress 100, got %s", s.Progress)
		}
		if s.HasPartialPayment {
			t.Error("expected no partial payment flag once fully paid")
		}
		if !s.FullyPaidByPayments {
			t.Error("expected fully paid")
		}
	})

	t.Run("over-payment clamps remaining and progress", func(t *testing.T) {
		s := Summarize(total, []*entity.Payment{newTestPayment("1500")})

		if !s.TotalPaid.Equal(decimal.NewFromInt(1500)) {
			t.Errorf("expected total paid 1500, got %s", s.TotalPaid)
		}
		if !s.Remaining.IsZero() {
			t.Errorf("expected zero remaining, got %s", s.Remaining)
		}
		if !s.Progress.Equal(decimal.NewFromInt(100)) {
			t.Errorf("expected progress clamped to 100, got %s", s.Progress)
		}
		if !s.FullyPaidByPayments {
			t.Error("expected fully paid")
		}
	})

	t.Run("zero total amount never reports progress", func(t *testing.T) {
		s := Summarize(decimal.Zero, []*entity.Payment{newTestPayment("50")})

		if !s.Progress.IsZero() {
			t.Errorf("expected zero progress for zero total, got %s", s.Progress)
		}
		if !s.FullyPaidByPayments {
			t.Error("expected fully paid when payments cover a zero total")
		}
	})

	t.Run("decimal cent amounts sum exactly", func(t *testing.T) {
		s := Summarize(decimal.RequireFromString("0.30"), []*entity.Payment{
			newTestPayment("0.10"),
			newTestPayment("0.10"),
			newTestPayment("0.10"),
		})

		if !s.FullyPaidByPayments {
			t.Error("expected three dimes to cover 0.30 exactly")
		}
		if !s.Remaining.IsZero() {
			t.Errorf("expected zero remaining, got %s", s.Remaining)
		}
	})
}
