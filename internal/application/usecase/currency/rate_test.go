// Package currency contains blue-rate conversion and rate management use cases.
package currency

import (
	"context"
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	domainerror "github.com/ledgerboard/backend/internal/domain/error"
)

// memoryRateStore is an in-memory RateStore for use case tests.
type memoryRateStore struct {
	rate     decimal.Decimal
	getError error
	setError error
}

func (s *memoryRateStore) Get(_ context.Context) (decimal.Decimal, error) {
	if s.getError != nil {
		return decimal.Zero, s.getError
	}
	return s.rate, nil
}

func (s *memoryRateStore) Set(_ context.Context, rate decimal.Decimal) error {
	if s.setError != nil {
		return s.setError
	}
	s.rate = rate
	return nil
}

func TestGetRate(t *testing.T) {
	ctx := context.Background()

	t.Run("returns the stored rate", func(t *testing.T) {
		store := &memoryRateStore{rate: decimal.NewFromInt(1187)}

		out, err := NewGetRateUseCase(store).Execute(ctx)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Rate.Equal(decimal.NewFromInt(1187)) {
			t.Errorf("expected 1187, got %s", out.Rate)
		}
	})

	t.Run("store failures propagate", func(t *testing.T) {
		store := &memoryRateStore{getError: errors.New("connection refused")}

		if _, err := NewGetRateUseCase(store).Execute(ctx); err == nil {
			t.Fatal("expected an error")
		}
	})
}

func TestUpdateRate(t *testing.T) {
	ctx := context.Background()

	t.Run("stores a positive rate", func(t *testing.T) {
		store := &memoryRateStore{rate: decimal.NewFromInt(1000)}

		out, err := NewUpdateRateUseCase(store).Execute(ctx, UpdateRateInput{Rate: decimal.NewFromFloat(1250.5)})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Rate.Equal(decimal.NewFromFloat(1250.5)) {
			t.Errorf("expected 1250.5, got %s", out.Rate)
		}
		if !store.rate.Equal(decimal.NewFromFloat(1250.5)) {
			t.Errorf("expected stored rate 1250.5, got %s", store.rate)
		}
	})

	t.Run("zero and negative rates are rejected", func(t *testing.T) {
		for _, rate := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-100)} {
			store := &memoryRateStore{rate: decimal.NewFromInt(1000)}

			_, err := NewUpdateRateUseCase(store).Execute(ctx, UpdateRateInput{Rate: rate})
			if !errors.Is(err, domainerror.ErrInvalidRate) {
				t.Errorf("rate %s: expected ErrInvalidRate, got %v", rate, err)
			}
			if !store.rate.Equal(decimal.NewFromInt(1000)) {
				t.Errorf("rate %s: expected stored rate untouched, got %s", rate, store.rate)
			}
		}
	})

	t.Run("store failures propagate", func(t *testing.T) {
		store := &memoryRateStore{setError: errors.New("connection refused")}

		if _, err := NewUpdateRateUseCase(store).Execute(ctx, UpdateRateInput{Rate: decimal.NewFromInt(1100)}); err == nil {
			t.Fatal("expected an error")
		}
	})
}
