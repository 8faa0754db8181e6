package utils

import (
	"math"
	"strconv"
	"strings"
)

// RoundWithTwoDecimalPlace arredonda metade para longe do zero.
func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}

	return math.Round(f*100) / 100
}

// ParseNumber aceita os formatos numéricos que chegam em JSON genérico:
// texto, float64 ou inteiros. ok é falso quando o valor não é numérico.
func ParseNumber(value any) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, !math.IsNaN(v) && !math.IsInf(v, 0)
	case float32:
		return ParseNumber(float64(v))
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case interface{ Float64() (float64, error) }:
		f, err := v.Float64()
		return f, err == nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, false
		}
		return f, true
	}

	return 0, false
}
