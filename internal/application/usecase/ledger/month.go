// Package ledger contains the ledger aggregation engine use cases.
package ledger

import (
	"fmt"
	"time"

	domainerror "github.com/ledgerboard/backend/internal/domain/error"
)

// Month selects the monthly view the ledger is scoped to.
type Month struct {
	Year  int
	Month time.Month
}

// ParseMonth parses a "YYYY-MM" month selector.
func ParseMonth(s string) (Month, error) {
	t, err := time.Parse("2006-01", s)
	if err != nil {
		return Month{}, domainerror.NewLedgerError(
			domainerror.ErrCodeInvalidMonth,
			fmt.Sprintf("month must be in YYYY-MM format, got %q", s),
			domainerror.ErrInvalidMonth,
		)
	}
	return Month{Year: t.Year(), Month: t.Month()}, nil
}

// MonthOf returns the month containing the given time.
func MonthOf(t time.Time) Month {
	return Month{Year: t.Year(), Month: t.Month()}
}

// Contains reports whether the given date falls inside the month.
// A nil date is never inside any month.
func (m Month) Contains(t *time.Time) bool {
	if t == nil {
		return false
	}
	return t.Year() == m.Year && t.Month() == m.Month
}

// String returns the month in "YYYY-MM" form.
func (m Month) String() string {
	return fmt.Sprintf("%04d-%02d", m.Year, int(m.Month))
}
