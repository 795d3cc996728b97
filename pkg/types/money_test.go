package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestPaise_MulDecimal(t *testing.T) {
	tests := []struct {
		name   string
		amount Paise
		factor string
		want   Paise
	}{
		{name: "identity", amount: 100000, factor: "1.0", want: 100000},
		{name: "simple multiplier", amount: 100000, factor: "1.5", want: 150000},
		{name: "rounds half away from zero", amount: 33333, factor: "1.175", want: 39166},
		{name: "exact half rounds up", amount: 50, factor: "1.01", want: 51}, // 50.5 paise
		{name: "zero amount", amount: 0, factor: "2.5", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			factor := decimal.RequireFromString(tt.factor)
			assert.Equal(t, tt.want, tt.amount.MulDecimal(factor))
		})
	}
}

func TestPaise_String(t *testing.T) {
	assert.Equal(t, "1500.00", Paise(150000).String())
	assert.Equal(t, "0.01", Paise(1).String())
	assert.Equal(t, "0.00", Paise(0).String())
	assert.Equal(t, "-25.50", Paise(-2550).String())
}

func TestPaiseFromRupees(t *testing.T) {
	assert.Equal(t, Paise(150000), PaiseFromRupees(decimal.RequireFromString("1500.00")))
	assert.Equal(t, Paise(100), PaiseFromRupees(decimal.RequireFromString("0.999")))
	assert.Equal(t, Paise(0), PaiseFromRupees(decimal.Zero))
}
