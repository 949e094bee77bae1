// Package currency contains blue-rate conversion and rate management use cases.
package currency

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/ledgerboard/backend/internal/application/adapter"
	domainerror "github.com/ledgerboard/backend/internal/domain/error"
)

// UpdateRateInput represents the input for a blue-rate update.
type UpdateRateInput struct {
	Rate decimal.Decimal
}

// UpdateRateOutput represents the output of a blue-rate update.
type UpdateRateOutput struct {
	Rate decimal.Decimal
}

// UpdateRateUseCase handles blue-rate updates. It is the single writer of the
// rate; rejecting non-positive values here keeps invalid rates out of every
// conversion downstream.
type UpdateRateUseCase struct {
	rateStore adapter.RateStore
}

// NewUpdateRateUseCase creates a new UpdateRateUseCase instance.
func NewUpdateRateUseCase(rateStore adapter.RateStore) *UpdateRateUseCase {
	return &UpdateRateUseCase{
		rateStore: rateStore,
	}
}

// Execute validates and stores the new blue rate.
func (uc *UpdateRateUseCase) Execute(ctx context.Context, input UpdateRateInput) (*UpdateRateOutput, error) {
	if !input.Rate.IsPositive() {
		return nil, domainerror.NewRateError(
			domainerror.ErrCodeInvalidRate,
			"exchange rate must be greater than zero",
			domainerror.ErrInvalidRate,
		)
	}

	if err := uc.rateStore.Set(ctx, input.Rate); err != nil {
		return nil, fmt.Errorf("failed to store blue rate: %w", err)
	}

	return &UpdateRateOutput{Rate: input.Rate}, nil
}
