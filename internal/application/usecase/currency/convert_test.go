// Package currency contains blue-rate conversion and rate management use cases.
package currency

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/ledgerboard/backend/internal/domain/entity"
)

// epsilon absorbs the bounded precision of division round-trips.
var epsilon = decimal.RequireFromString("0.000000001")

func approxEqual(a, b decimal.Decimal) bool {
	return a.Sub(b).Abs().LessThanOrEqual(epsilon)
}

func TestToARS(t *testing.T) {
	rate := decimal.NewFromInt(1200)

	t.Run("USD amount is multiplied by the rate", func(t *testing.T) {
		got := ToARS(decimal.NewFromInt(10), entity.CurrencyUSD, rate)
		want := decimal.NewFromInt(12000)
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("ARS amount passes through unchanged", func(t *testing.T) {
		amount := decimal.NewFromInt(5000)
		got := ToARS(amount, entity.CurrencyARS, rate)
		if !got.Equal(amount) {
			t.Errorf("expected %s, got %s", amount, got)
		}
	})

	t.Run("unknown currency is treated as ARS", func(t *testing.T) {
		amount := decimal.NewFromInt(5000)
		got := ToARS(amount, entity.Currency("EUR"), rate)
		if !got.Equal(amount) {
			t.Errorf("expected %s, got %s", amount, got)
		}
	})

	t.Run("zero amount converts to zero", func(t *testing.T) {
		got := ToARS(decimal.Zero, entity.CurrencyUSD, rate)
		if !got.IsZero() {
			t.Errorf("expected zero, got %s", got)
		}
	})
}

func TestToUSD(t *testing.T) {
	rate := decimal.NewFromInt(1200)

	t.Run("ARS amount is divided by the rate", func(t *testing.T) {
		got := ToUSD(decimal.NewFromInt(12000), entity.CurrencyARS, rate)
		want := decimal.NewFromInt(10)
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("USD amount passes through unchanged", func(t *testing.T) {
		amount := decimal.NewFromInt(10)
		got := ToUSD(amount, entity.CurrencyUSD, rate)
		if !got.Equal(amount) {
			t.Errorf("expected %s, got %s", amount, got)
		}
	})
}

func TestToOther(t *testing.T) {
	rate := decimal.NewFromInt(1200)

	t.Run("USD converts to ARS", func(t *testing.T) {
		got := ToOther(decimal.NewFromInt(3), entity.CurrencyUSD, rate)
		want := decimal.NewFromInt(3600)
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})

	t.Run("ARS converts to USD", func(t *testing.T) {
		got := ToOther(decimal.NewFromInt(3600), entity.CurrencyARS, rate)
		want := decimal.NewFromInt(3)
		if !got.Equal(want) {
			t.Errorf("expected %s, got %s", want, got)
		}
	})
}

func TestConversionRoundTrip(t *testing.T) {
	rates := []decimal.Decimal{
		decimal.NewFromInt(1200),
		decimal.RequireFromString("987.65"),
		decimal.RequireFromString("1350.5"),
	}
	amounts := []decimal.Decimal{
		decimal.NewFromInt(1),
		decimal.RequireFromString("0.01"),
		decimal.RequireFromString("123456.78"),
	}

	for _, rate := range rates {
		for _, amount := range amounts {
			ars := ToOther(amount, entity.CurrencyUSD, rate)
			back := ToOther(ars, entity.CurrencyARS, rate)
			if !approxEqual(back, amount) {
				t.Errorf("round trip of %s at rate %s drifted: got %s", amount, rate, back)
			}
		}
	}
}
