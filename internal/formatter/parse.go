package formatter

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidAmount is returned by ParseAmount for input that is not a finite number.
var ErrInvalidAmount = errors.New("invalid amount")

var (
	floatPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)
	intPrefix   = regexp.MustCompile(`^[+-]?\d+`)
)

// ParseAmount converts a decoded JSON amount into a decimal.
// Unlike FormatValue it rejects anything that is not entirely a finite number.
func ParseAmount(amount any) (decimal.Decimal, error) {
	switch v := amount.(type) {
	case decimal.Decimal:
		return v, nil
	case string:
		return parseStrict(v)
	case json.Number:
		return parseStrict(v.String())
	}

	f, ok := toFloat(amount)
	if !ok || math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero, fmt.Errorf("%w: %v", ErrInvalidAmount, amount)
	}
	return decimal.NewFromFloat(f), nil
}

func parseStrict(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

// parseFloatLenient reads the longest numeric prefix of string input and
// returns NaN when there is none.
func parseFloatLenient(amount any) float64 {
	s, isString := asString(amount)
	if !isString {
		if f, ok := toFloat(amount); ok {
			return f
		}
		return math.NaN()
	}

	m := floatPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return math.NaN()
	}
	if strings.HasSuffix(m, "Infinity") {
		if strings.HasPrefix(m, "-") {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	// out of range input still yields ±Inf alongside the error
	f, _ := strconv.ParseFloat(m, 64)
	return f
}

// parseIntLenient reads the leading integer digits of string input and
// truncates numeric input toward zero.
func parseIntLenient(amount any) float64 {
	s, isString := asString(amount)
	if !isString {
		if f, ok := toFloat(amount); ok {
			return math.Trunc(f)
		}
		return math.NaN()
	}

	m := intPrefix.FindString(strings.TrimSpace(s))
	if m == "" {
		return math.NaN()
	}
	f, _ := strconv.ParseFloat(m, 64)
	return f
}

func asString(amount any) (string, bool) {
	switch v := amount.(type) {
	case string:
		return v, true
	case json.Number:
		return v.String(), true
	case fmt.Stringer:
		if _, isDecimal := v.(decimal.Decimal); !isDecimal {
			return v.String(), true
		}
	}
	return "", false
}

func toFloat(amount any) (float64, bool) {
	switch v := amount.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int8:
		return float64(v), true
	case int16:
		return float64(v), true
	case int32:
		return float64(v), true
	case int64:
		return float64(v), true
	case uint:
		return float64(v), true
	case uint8:
		return float64(v), true
	case uint16:
		return float64(v), true
	case uint32:
		return float64(v), true
	case uint64:
		return float64(v), true
	case decimal.Decimal:
		return v.InexactFloat64(), true
	}
	return 0, false
}
