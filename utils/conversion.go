// File: utils/conversion.go
package utils

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// SafeFloat coerces an arbitrary decoded JSON value to a float64.
// Non-numeric values come back as 0.
func SafeFloat(value any) float64 {
	switch v := value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case json.Number:
		f, err := v.Float64()
		if err != nil {
			return 0
		}
		return f
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(v), 64)
		if err != nil {
			return 0
		}
		return f
	default:
		return 0
	}
}

// SafeInt coerces an arbitrary decoded JSON value to an int, rounding
// fractional values to the nearest integer. Non-numeric values come back as 0.
func SafeInt(value any) int {
	return int(math.Round(SafeFloat(value)))
}

// FloorInt coerces a value to an int by truncating toward zero, used where
// costs must never round upward past a cap.
func FloorInt(value any) int {
	return int(math.Floor(SafeFloat(value)))
}

// RoundTo2 rounds a float to two decimal places.
func RoundTo2(v float64) float64 {
	return math.Round(v*100) / 100
}
