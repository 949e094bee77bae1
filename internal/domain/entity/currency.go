// Package entity defines the core business entities for the domain layer.
package entity

import "github.com/shopspring/decimal"

// Currency represents one of the two currencies the ledger understands.
type Currency string

const (
	CurrencyARS Currency = "ARS"
	CurrencyUSD Currency = "USD"
)

// DefaultBlueRate is the fallback informal-market ARS/USD exchange rate used
// until the user sets their own.
var DefaultBlueRate = decimal.NewFromInt(1200)

// NormalizeCurrency maps a possibly missing or unknown currency string to a
// valid Currency. Records with no currency are treated as ARS rather than
// rejected, so a single malformed record never breaks the whole view.
func NormalizeCurrency(c Currency) Currency {
	if c == CurrencyUSD {
		return CurrencyUSD
	}
	return CurrencyARS
}

// Other returns the opposite currency.
func (c Currency) Other() Currency {
	if NormalizeCurrency(c) == CurrencyUSD {
		return CurrencyARS
	}
	return CurrencyUSD
}
