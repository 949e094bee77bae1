// Package currency contains blue-rate conversion and rate management use cases.
package currency

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerboard/backend/internal/application/adapter"
)

// GetRateOutput represents the output of reading the blue rate.
type GetRateOutput struct {
	Rate decimal.Decimal
}

// GetRateUseCase handles reading the current blue rate.
type GetRateUseCase struct {
	rateStore adapter.RateStore
}

// NewGetRateUseCase creates a new GetRateUseCase instance.
func NewGetRateUseCase(rateStore adapter.RateStore) *GetRateUseCase {
	return &GetRateUseCase{
		rateStore: rateStore,
	}
}

// Execute returns the current blue rate.
func (uc *GetRateUseCase) Execute(ctx context.Context) (*GetRateOutput, error) {
	rate, err := uc.rateStore.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to read blue rate: %w", err)
	}

	return &GetRateOutput{Rate: rate}, nil
}
