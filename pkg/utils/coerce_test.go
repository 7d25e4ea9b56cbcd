package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCoerceFloat(t *testing.T) {
	tests := []struct {
		name     string
		value    any
		expected float64
	}{
		{name: "float64 passa direto", value: 12.5, expected: 12.5},
		{name: "string numérica é convertida", value: "3.14", expected: 3.14},
		{name: "string com espaços é aparada", value: " 42 ", expected: 42},
		{name: "string inválida vira zero", value: "abc", expected: 0},
		{name: "nil vira zero", value: nil, expected: 0},
		{name: "bool verdadeiro vira um", value: true, expected: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CoerceFloat(tt.value))
		})
	}
}

func TestCoerceString(t *testing.T) {
	assert.Equal(t, "abc", CoerceString("abc"))
	assert.Equal(t, "", CoerceString(nil))
	// IDs numéricos do JSON chegam como float64 e não podem ganhar casas decimais
	assert.Equal(t, "12345678", CoerceString(float64(12345678)))
	assert.Equal(t, "1.5", CoerceString(1.5))
}

func TestParseNumeric(t *testing.T) {
	v, ok := ParseNumeric("10.5")
	assert.True(t, ok)
	assert.Equal(t, 10.5, v)

	// String vazia não é zero: filtros numéricos tratam como NaN
	_, ok = ParseNumeric("")
	assert.False(t, ok)

	_, ok = ParseNumeric("Brand")
	assert.False(t, ok)
}

func TestFormatPercent(t *testing.T) {
	// Frações 0-1 só viram percentual na formatação
	assert.Equal(t, "12.34%", FormatPercent(0.1234))
	assert.Equal(t, "0.00%", FormatPercent(0))
}

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1,234.50", FormatCurrency(1234.5, "$"))
	assert.Equal(t, "R$1,000,000.00", FormatCurrency(1000000, "R$"))
}

func TestSafeRatio(t *testing.T) {
	assert.Equal(t, 2.0, SafeRatio(10, 5))
	assert.Equal(t, 0.0, SafeRatio(10, 0))
}
