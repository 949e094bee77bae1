// Package ledger contains the ledger aggregation engine use cases.
package ledger

import (
	"sort"
	"time"

	"github.com/ledgerboard/backend/internal/domain/entity"
)

// SortKey selects the ordering applied to the unified item list.
type SortKey string

const (
	// SortKeyDueDate orders by status priority, then due date ascending.
	SortKeyDueDate SortKey = "due_date"
	// SortKeyAmount orders by ARS-normalized amount descending.
	SortKeyAmount SortKey = "amount"
	// SortKeyPaidDate orders by paid date ascending, missing dates last.
	SortKeyPaidDate SortKey = "paid_date"
)

// statusPriority orders statuses by urgency for the due-date sort.
var statusPriority = map[entity.ItemStatus]int{
	entity.ItemStatusOverdue:  0,
	entity.ItemStatusUpcoming: 1,
	entity.ItemStatusOntime:   2,
	entity.ItemStatusPaid:     3,
}

// missingDateSentinel sorts items without a date after every dated item.
const missingDateSentinel = "9999-12-31"

// SortItems orders items in place. Every comparator defines a total order
// with explicit tie-breaks so results are deterministic under stable sort.
func SortItems(items []*entity.UnifiedItem, key SortKey) {
	switch key {
	case SortKeyAmount:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].AmountARS.GreaterThan(items[j].AmountARS)
		})
	case SortKeyPaidDate:
		sort.SliceStable(items, func(i, j int) bool {
			return dateKey(items[i].PaidDate) < dateKey(items[j].PaidDate)
		})
	default: // SortKeyDueDate
		sort.SliceStable(items, func(i, j int) bool {
			pi, pj := statusPriority[items[i].Status], statusPriority[items[j].Status]
			if pi != pj {
				return pi < pj
			}
			return dateKey(items[i].DueDate) < dateKey(items[j].DueDate)
		})
	}
}

// dateKey renders a date for lexicographic comparison, with a maximal
// sentinel for missing dates.
func dateKey(t *time.Time) string {
	if t == nil {
		return missingDateSentinel
	}
	return t.Format("2006-01-02")
}
