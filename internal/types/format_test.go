package types

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount string
		want   string
	}{
		{"0", "R$ 0,00"},
		{"1500.5", "R$ 1.500,50"},
		{"1234.56", "R$ 1.234,56"},
		{"999.999", "R$ 1.000,00"},
		{"2500000", "R$ 2.500.000,00"},
		{"-10.1", "-R$ 10,10"},
	}

	for _, tt := range tests {
		t.Run(tt.amount, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCurrency(decimal.RequireFromString(tt.amount)))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "1500.50", FormatAmount(decimal.RequireFromString("1500.5")))
	assert.Equal(t, "0.00", FormatAmount(decimal.Zero))
}
