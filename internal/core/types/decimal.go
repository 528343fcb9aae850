// Package types provides common type aliases and utilities.
package types

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary value with full precision.
// Uses decimal.Decimal to avoid floating-point errors.
type Money = decimal.Decimal

// MoneyPlaces is the number of fractional digits kept for currency amounts.
const MoneyPlaces int32 = 2

// TaxRate is the fixed sales tax applied on top of the subtotal (18%).
var TaxRate = decimal.RequireFromString("0.18")

// NewMoney creates a Money value from a float.
// WARNING: Use NewMoneyFromString for precise values.
func NewMoney(f float64) Money {
	return decimal.NewFromFloat(f)
}

// NewMoneyFromInt creates a Money value from a whole amount.
func NewMoneyFromInt(v int64) Money {
	return decimal.NewFromInt(v)
}

// NewMoneyFromString creates a Money value from a string.
// This is the preferred method for monetary values.
func NewMoneyFromString(s string) (Money, error) {
	return decimal.NewFromString(s)
}

// MustMoney creates a Money value from a string, panics on error.
// Use only for constants and tests.
func MustMoney(s string) Money {
	return decimal.RequireFromString(s)
}

// Zero returns zero Money value.
func Zero() Money {
	return decimal.Zero
}

// Round rounds m half away from zero to MoneyPlaces.
func Round(m Money) Money {
	return m.Round(MoneyPlaces)
}

// LineTotal returns quantity × unitPrice.
func LineTotal(quantity int, unitPrice Money) Money {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// Tax returns the tax owed on subtotal, rounded to cents.
func Tax(subtotal Money) Money {
	return Round(subtotal.Mul(TaxRate))
}

// Totals holds the three amounts printed on every document.
type Totals struct {
	Subtotal Money `json:"subtotal"`
	Tax      Money `json:"tax"`
	Total    Money `json:"total"`
}

// ComputeTotals applies the fixed tax rate to subtotal.
func ComputeTotals(subtotal Money) Totals {
	tax := Tax(subtotal)
	return Totals{
		Subtotal: subtotal,
		Tax:      tax,
		Total:    subtotal.Add(tax),
	}
}
