// Package ledger contains the ledger aggregation engine use cases.
package ledger

import (
	"time"

	"github.com/ledgerboard/backend/internal/domain/entity"
)

// upcomingWindowDays is how far ahead of the due date an item turns "upcoming".
const upcomingWindowDays = 7

// Classify derives the temporal status of an item. It is evaluated freshly on
// every access; paid is the only terminal state and wins over every other
// signal. Comparison is by calendar date only, so an item due today is not
// overdue regardless of the hour.
func Classify(item *entity.UnifiedItem, today time.Time) entity.ItemStatus {
	if item.Paid {
		return entity.ItemStatusPaid
	}
	if item.DueDate == nil {
		return entity.ItemStatusOntime
	}

	due := truncateToDay(*item.DueDate)
	now := truncateToDay(today)

	if due.Before(now) {
		return entity.ItemStatusOverdue
	}
	if !due.After(now.AddDate(0, 0, upcomingWindowDays)) {
		return entity.ItemStatusUpcoming
	}
	return entity.ItemStatusOntime
}

// truncateToDay strips the time of day, keeping the calendar date in the
// value's own location.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
