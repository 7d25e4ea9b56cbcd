package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// Formatação de métricas para exibição. O motor de derivação sempre devolve
// frações 0-1; a multiplicação por 100 acontece somente aqui.

func FormatCurrency(value float64, currency string) string {
	if currency == "" {
		currency = "$"
	}

	return fmt.Sprintf("%s%s", currency, groupThousands(value, 2))
}

func FormatPercent(ratio float64) string {
	return fmt.Sprintf("%.2f%%", ratio*100)
}

func FormatNumber(value float64) string {
	return groupThousands(value, 0)
}

// groupThousands formata com separador de milhar no padrão en-US usado pelo painel.
func groupThousands(value float64, decimals int) string {
	str := strconv.FormatFloat(value, 'f', decimals, 64)

	neg := strings.HasPrefix(str, "-")
	if neg {
		str = str[1:]
	}

	intPart := str
	fracPart := ""
	if idx := strings.IndexByte(str, '.'); idx >= 0 {
		intPart = str[:idx]
		fracPart = str[idx:]
	}

	var b strings.Builder
	for i, digit := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(digit)
	}

	out := b.String() + fracPart
	if neg {
		out = "-" + out
	}

	return out
}
