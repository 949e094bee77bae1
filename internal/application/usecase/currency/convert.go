// Package currency contains blue-rate conversion and rate management use cases.
package currency

import (
	"github.com/shopspring/decimal"

	"github.com/ledgerboard/backend/internal/domain/entity"
)

// Conversion is pure and never errors: a rate is validated once, at the
// setter, and every currency is normalized to ARS when missing or unknown.
// ARS value of one USD is rate; USD value of one ARS is 1/rate.

// ToOther converts an amount into the opposite currency.
func ToOther(amount decimal.Decimal, currency entity.Currency, rate decimal.Decimal) decimal.Decimal {
	if entity.NormalizeCurrency(currency) == entity.CurrencyUSD {
		return amount.Mul(rate)
	}
	return amount.Div(rate)
}

// ToARS converts an amount into ARS. Amounts already in ARS pass through.
func ToARS(amount decimal.Decimal, currency entity.Currency, rate decimal.Decimal) decimal.Decimal {
	if entity.NormalizeCurrency(currency) == entity.CurrencyUSD {
		return amount.Mul(rate)
	}
	return amount
}

// ToUSD converts an amount into USD. Amounts already in USD pass through.
func ToUSD(amount decimal.Decimal, currency entity.Currency, rate decimal.Decimal) decimal.Decimal {
	if entity.NormalizeCurrency(currency) == entity.CurrencyUSD {
		return amount
	}
	return amount.Div(rate)
}
