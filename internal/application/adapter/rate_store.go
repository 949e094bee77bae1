// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/shopspring/decimal"
)

// RateStore persists the process-wide blue rate. It is the one piece of
// mutable state living outside the fetch/derive cycle: a single writer (the
// rate editor) and many readers, each update an atomic value replacement.
type RateStore interface {
	// Get returns the current blue rate, falling back to the configured
	// default when no rate has been stored yet.
	Get(ctx context.Context) (decimal.Decimal, error)

	// Set replaces the stored blue rate. Validation of the value happens in
	// the use case layer before Set is called.
	Set(ctx context.Context, rate decimal.Decimal) error
}
