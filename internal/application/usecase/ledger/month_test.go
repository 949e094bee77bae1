// Package ledger contains the ledger aggregation engine use cases.
package ledger

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/ledgerboard/backend/internal/domain/error"
)

func TestParseMonth(t *testing.T) {
	t.Run("valid month", func(t *testing.T) {
		m, err := ParseMonth("2025-03")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.Year != 2025 || m.Month != time.March {
			t.Errorf("expected 2025-03, got %v", m)
		}
	})

	t.Run("invalid format returns a typed error", func(t *testing.T) {
		for _, input := range []string{"2025", "03-2025", "2025-13", "garbage", ""} {
			_, err := ParseMonth(input)
			if err == nil {
				t.Errorf("expected error for %q", input)
				continue
			}
			if !errors.Is(err, domainerror.ErrInvalidMonth) {
				t.Errorf("expected ErrInvalidMonth for %q, got %v", input, err)
			}
		}
	})

	t.Run("round trips through String", func(t *testing.T) {
		m, err := ParseMonth("2024-01")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if m.String() != "2024-01" {
			t.Errorf("expected 2024-01, got %s", m.String())
		}
	})
}

func TestMonthContains(t *testing.T) {
	m := Month{Year: 2025, Month: time.March}

	t.Run("date inside the month", func(t *testing.T) {
		d := time.Date(2025, 3, 15, 23, 0, 0, 0, time.UTC)
		if !m.Contains(&d) {
			t.Error("expected date to be contained")
		}
	})

	t.Run("first and last day of the month", func(t *testing.T) {
		first := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
		last := time.Date(2025, 3, 31, 23, 59, 59, 0, time.UTC)
		if !m.Contains(&first) || !m.Contains(&last) {
			t.Error("expected month boundaries to be contained")
		}
	})

	t.Run("adjacent months are excluded", func(t *testing.T) {
		before := time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC)
		after := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
		if m.Contains(&before) || m.Contains(&after) {
			t.Error("expected adjacent months to be excluded")
		}
	})

	t.Run("nil date is never contained", func(t *testing.T) {
		if m.Contains(nil) {
			t.Error("expected nil date to be excluded")
		}
	})
}
