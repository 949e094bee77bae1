// Package ledger contains the ledger aggregation engine use cases.
package ledger

import "github.com/ledgerboard/backend/internal/domain/entity"

// FilterAll is the wildcard value that disables a filter dimension.
const FilterAll = "all"

// Filter holds the user-selected predicates. All dimensions are optional and
// AND-combined; an empty value or "all" leaves that dimension unconstrained.
type Filter struct {
	Status        string
	Type          string
	Category      string
	PaymentMethod string
}

// constrains reports whether a filter value narrows its dimension.
func constrains(v string) bool {
	return v != "" && v != FilterAll
}

// Match reports whether an item passes every constrained dimension.
func (f Filter) Match(item *entity.UnifiedItem) bool {
	if constrains(f.Status) && string(item.Status) != f.Status {
		return false
	}
	if constrains(f.Type) && string(item.Type) != f.Type {
		return false
	}
	if constrains(f.Category) && item.Category != f.Category {
		return false
	}
	if constrains(f.PaymentMethod) && item.PaymentMethod != f.PaymentMethod {
		return false
	}
	return true
}

// ApplyFilter returns the items passing the filter, preserving input order.
// Applying the same filter twice yields the same result set.
func ApplyFilter(items []*entity.UnifiedItem, f Filter) []*entity.UnifiedItem {
	filtered := make([]*entity.UnifiedItem, 0, len(items))
	for _, item := range items {
		if f.Match(item) {
			filtered = append(filtered, item)
		}
	}
	return filtered
}
