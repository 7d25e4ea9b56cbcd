package utils

import "math"

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// SafeRatio divide a por b, retornando 0 quando o denominador é zero.
// Divisão por zero aqui é política de negócio, não falha: métricas derivadas
// nunca produzem NaN ou infinito.
func SafeRatio(a, b float64) float64 {
	if b == 0 {
		return 0
	}

	return a / b
}
