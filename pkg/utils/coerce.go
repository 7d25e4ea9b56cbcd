package utils

import (
	"fmt"
	"strconv"
	"strings"
)

// CoerceFloat converte um valor cru vindo do export da planilha para float64.
// Campos que não podem ser convertidos assumem o valor zero — o snapshot nunca
// falha por causa de uma célula malformada.
func CoerceFloat(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	case bool:
		if v {
			return 1
		}
		return 0
	case nil:
		return 0
	default:
		return 0
	}
}

// CoerceString converte um valor cru para string, usando "" como fallback.
func CoerceString(value any) string {
	switch v := value.(type) {
	case string:
		return v
	case nil:
		return ""
	case float64:
		// IDs numéricos da planilha chegam como float64 via JSON
		if v == float64(int64(v)) {
			return strconv.FormatInt(int64(v), 10)
		}
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// ParseNumeric tenta interpretar um valor arbitrário como número para fins de
// comparação em filtros. O segundo retorno indica se o valor é numérico;
// strings vazias e texto não numérico NÃO são tratados como zero aqui —
// comparações contra eles seguem a política de NaN do motor de consulta.
func ParseNumeric(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		trimmed := strings.TrimSpace(v)
		if trimmed == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
