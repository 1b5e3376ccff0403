package formatter

import (
	"encoding/json"
	"math"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		code     string
		expected string
	}{
		{name: "usd_integer", amount: 1234, code: "USD", expected: "$1,234.00"},
		{name: "egp_suffix", amount: 1234.5, code: "EGP", expected: "1,234.50 ج.م"},
		{name: "jpy_no_fraction", amount: 1000000, code: "JPY", expected: "¥1,000,000"},
		{name: "unknown_code_prefixed", amount: 5, code: "XXX", expected: "XXX5.00"},
		{name: "eur", amount: 0.5, code: "EUR", expected: "€0.50"},
		{name: "gbp", amount: 999, code: "GBP", expected: "£999.00"},
		{name: "sar", amount: 1000, code: "SAR", expected: "1,000.00 ر.س"},
		{name: "aed", amount: 12.345678, code: "AED", expected: "12.35 د.إ"},
		{name: "kwd", amount: 1234567.891, code: "KWD", expected: "1,234,567.89 د.ك"},
		{name: "zero", amount: 0, code: "USD", expected: "$0.00"},
		{name: "round_up_to_next_thousand", amount: 999.999, code: "USD", expected: "$1,000.00"},
		{name: "binary_value_below_half", amount: 1.005, code: "USD", expected: "$1.00"},
		{name: "exact_half_away_from_zero", amount: 0.125, code: "USD", expected: "$0.13"},
		{name: "negative", amount: -1234.567, code: "USD", expected: "$-1,234.57"},
		{name: "tiny_negative_rounds_to_zero", amount: -0.001, code: "USD", expected: "$0.00"},
		{name: "jpy_truncates", amount: 1234.99, code: "JPY", expected: "¥1,234"},
		{name: "jpy_negative_truncates_toward_zero", amount: -1234.9, code: "JPY", expected: "¥-1,234"},
		{name: "jpy_negative_fraction", amount: -0.5, code: "JPY", expected: "¥0"},
		{name: "large", amount: 1e21, code: "USD", expected: "$1,000,000,000,000,000,000,000.00"},
		{name: "nan", amount: math.NaN(), code: "USD", expected: "$NaN"},
		{name: "inf", amount: math.Inf(1), code: "EGP", expected: "∞ ج.م"},
		{name: "negative_inf", amount: math.Inf(-1), code: "JPY", expected: "¥-∞"},
		{name: "lowercase_code_is_unknown", amount: 1, code: "usd", expected: "usd1.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Format(tt.amount, tt.code))
		})
	}
}

func TestFormat_Idempotent(t *testing.T) {
	for _, code := range []string{"USD", "EGP", "JPY", "XXX"} {
		first := Format(98765.4321, code)
		for i := 0; i < 5; i++ {
			assert.Equal(t, first, Format(98765.4321, code))
		}
	}
}

func TestFormat_SymbolPlacement(t *testing.T) {
	amounts := []float64{0, 1, 12.5, 1234.5678, 1e9}

	for _, code := range []string{"EGP", "SAR", "AED", "KWD"} {
		for _, amount := range amounts {
			got := Format(amount, code)
			symbol := Symbol(code)
			assert.True(t, strings.HasSuffix(got, " "+symbol), "got %q", got)
			number := strings.TrimSuffix(got, " "+symbol)
			assert.NotEmpty(t, number)
			assert.False(t, strings.HasSuffix(number, " "), "got %q", got)
		}
	}

	for _, code := range []string{"USD", "EUR", "GBP", "JPY", "CAD", "XXX"} {
		for _, amount := range amounts {
			got := Format(amount, code)
			symbol := Symbol(code)
			assert.True(t, strings.HasPrefix(got, symbol), "got %q", got)
			assert.False(t, strings.HasPrefix(strings.TrimPrefix(got, symbol), " "), "got %q", got)
		}
	}
}

func TestFormatValue(t *testing.T) {
	tests := []struct {
		name     string
		amount   any
		code     string
		expected string
	}{
		{name: "float", amount: 1234.5, code: "USD", expected: "$1,234.50"},
		{name: "int", amount: 42, code: "EUR", expected: "€42.00"},
		{name: "numeric_string", amount: "1234.5", code: "USD", expected: "$1,234.50"},
		{name: "string_with_spaces", amount: "  7.1 ", code: "GBP", expected: "£7.10"},
		{name: "string_with_trailing_garbage", amount: "42abc", code: "EUR", expected: "€42.00"},
		{name: "string_exponent", amount: "1.5e3", code: "USD", expected: "$1,500.00"},
		{name: "string_leading_dot", amount: ".25", code: "USD", expected: "$0.25"},
		{name: "string_infinity", amount: "-Infinity", code: "USD", expected: "$-∞"},
		{name: "json_number", amount: json.Number("1000"), code: "SAR", expected: "1,000.00 ر.س"},
		{name: "decimal", amount: decimal.RequireFromString("2500.25"), code: "USD", expected: "$2,500.25"},
		{name: "non_numeric_prefix", amount: "abc", code: "USD", expected: "$NaN"},
		{name: "non_numeric_suffix_code", amount: "abc", code: "EGP", expected: "NaN ج.م"},
		{name: "empty_string", amount: "", code: "USD", expected: "$NaN"},
		{name: "nil", amount: nil, code: "USD", expected: "$NaN"},
		{name: "bool", amount: true, code: "USD", expected: "$NaN"},
		{name: "jpy_string_truncates", amount: "12.7", code: "JPY", expected: "¥12"},
		{name: "jpy_string_exponent_reads_digits_only", amount: "1e3", code: "JPY", expected: "¥1"},
		{name: "jpy_float", amount: 1234.99, code: "JPY", expected: "¥1,234"},
		{name: "jpy_non_numeric", amount: "yen", code: "JPY", expected: "¥NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatValue(tt.amount, tt.code))
		})
	}
}

func TestSymbol(t *testing.T) {
	assert.Equal(t, "$", Symbol("USD"))
	assert.Equal(t, "€", Symbol("EUR"))
	assert.Equal(t, "£", Symbol("GBP"))
	assert.Equal(t, "¥", Symbol("JPY"))
	assert.Equal(t, "ج.م", Symbol("EGP"))
	assert.Equal(t, "ر.س", Symbol("SAR"))
	assert.Equal(t, "د.إ", Symbol("AED"))
	assert.Equal(t, "د.ك", Symbol("KWD"))
	assert.Equal(t, "CHF", Symbol("CHF"))
	assert.Equal(t, "", Symbol(""))
}

func TestGroup(t *testing.T) {
	tests := map[string]string{
		"0":          "0",
		"12":         "12",
		"123":        "123",
		"1234":       "1,234",
		"123456":     "123,456",
		"1234567.89": "1,234,567.89",
		"-1234.50":   "-1,234.50",
		"-0.00":      "0.00",
	}
	for in, expected := range tests {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, expected, group(in))
		})
	}
}
