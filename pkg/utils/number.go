package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// FormatBRL formata um valor monetário no padrão brasileiro: R$ 1.234,56
func FormatBRL(value decimal.Decimal) string {
	return "R$ " + formatDecimal(value)
}

// FormatPercent formata um percentual com duas casas: 12,50%
func FormatPercent(value decimal.Decimal) string {
	return formatDecimal(value) + "%"
}

// FormatSignedPercent inclui o sinal mesmo para valores positivos: +12,50%
func FormatSignedPercent(value decimal.Decimal) string {
	if value.IsPositive() {
		return "+" + FormatPercent(value)
	}
	return FormatPercent(value)
}

func formatDecimal(value decimal.Decimal) string {
	fixed := value.StringFixed(2)

	negative := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	integer, fraction, _ := strings.Cut(fixed, ".")

	var grouped strings.Builder
	for i, digit := range integer {
		if i > 0 && (len(integer)-i)%3 == 0 {
			grouped.WriteByte('.')
		}
		grouped.WriteRune(digit)
	}

	result := grouped.String() + "," + fraction
	if negative {
		return "-" + result
	}
	return result
}
