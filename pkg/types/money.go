package types

import "github.com/shopspring/decimal"

// Paise is an amount of money in integer minor currency units (1/100 INR).
// All internal arithmetic happens on Paise; decimal rupees appear only at
// the presentation boundary.
type Paise int64

// Rupees converts the amount to a decimal rupee value.
func (p Paise) Rupees() decimal.Decimal {
	return decimal.New(int64(p), -2)
}

// String renders the amount as a fixed two-decimal rupee string, e.g. "1500.00".
func (p Paise) String() string {
	return p.Rupees().StringFixed(2)
}

// MulDecimal multiplies the amount by a decimal factor and rounds half away
// from zero to whole paise.
func (p Paise) MulDecimal(factor decimal.Decimal) Paise {
	return Paise(decimal.NewFromInt(int64(p)).Mul(factor).Round(0).IntPart())
}

// PaiseFromRupees converts a decimal rupee value to paise, rounding half
// away from zero.
func PaiseFromRupees(d decimal.Decimal) Paise {
	return Paise(d.Shift(2).Round(0).IntPart())
}
