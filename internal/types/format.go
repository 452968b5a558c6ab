package types

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var ptBR = message.NewPrinter(language.BrazilianPortuguese)

// FormatCurrency renders an amount as Brazilian reais, e.g. R$ 1.234,56
func FormatCurrency(amount decimal.Decimal) string {
	rounded := amount.Round(2)
	parts := strings.SplitN(rounded.Abs().StringFixed(2), ".", 2)

	whole, err := strconv.ParseInt(parts[0], 10, 64)
	grouped := parts[0]
	if err == nil {
		grouped = ptBR.Sprintf("%d", whole)
	}

	sign := ""
	if rounded.IsNegative() {
		sign = "-"
	}
	return sign + "R$ " + grouped + "," + parts[1]
}

// FormatAmount is the raw stored representation of an amount, always two decimals
func FormatAmount(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
