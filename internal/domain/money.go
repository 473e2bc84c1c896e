package domain

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// NormalizeAmount coerces an arbitrary value into a safe decimal amount.
// Anything that does not parse as a finite number becomes zero. Negative
// values pass through unchanged; correction entries rely on that.
func NormalizeAmount(v any) decimal.Decimal {
	switch val := v.(type) {
	case nil:
		return decimal.Zero
	case decimal.Decimal:
		return val
	case *decimal.Decimal:
		if val == nil {
			return decimal.Zero
		}
		return *val
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return decimal.Zero
		}
		return decimal.NewFromFloat(val)
	case float32:
		return NormalizeAmount(float64(val))
	case int:
		return decimal.NewFromInt(int64(val))
	case int32:
		return decimal.NewFromInt(int64(val))
	case int64:
		return decimal.NewFromInt(val)
	case json.Number:
		return normalizeAmountString(val.String())
	case string:
		return normalizeAmountString(val)
	default:
		return decimal.Zero
	}
}

func normalizeAmountString(s string) decimal.Decimal {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero
	}
	// decimal.NewFromString accepts exponent notation but not NaN/Inf.
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero
	}
	return d
}

// NormalizeCount coerces an arbitrary value into a transaction count.
// Malformed input becomes zero; fractional numbers are truncated toward zero.
func NormalizeCount(v any) int {
	switch val := v.(type) {
	case nil:
		return 0
	case int:
		return val
	case int32:
		return int(val)
	case int64:
		return int(val)
	case float64:
		if math.IsNaN(val) || math.IsInf(val, 0) {
			return 0
		}
		return int(val)
	case float32:
		return NormalizeCount(float64(val))
	case json.Number:
		return normalizeCountString(val.String())
	case string:
		return normalizeCountString(val)
	default:
		return 0
	}
}

func normalizeCountString(s string) int {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return int(n)
	}
	// "12.0" style input still counts as twelve.
	if f, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(f) && !math.IsInf(f, 0) {
		return int(f)
	}
	return 0
}
