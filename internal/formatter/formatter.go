package formatter

import (
	"math"
	"math/big"
	"strings"

	"github.com/shopspring/decimal"
)

// symbols maps currency codes to display symbols.
var symbols = map[string]string{
	"USD": "$",
	"EUR": "€",
	"GBP": "£",
	"JPY": "¥",
	"EGP": "ج.م",
	"SAR": "ر.س",
	"AED": "د.إ",
	"KWD": "د.ك",
}

// suffixed lists codes whose symbol goes after the number.
var suffixed = map[string]struct{}{
	"EGP": {},
	"SAR": {},
	"AED": {},
	"KWD": {},
}

const nan = "NaN"

// Symbol returns the display symbol for code, or code itself when unknown.
func Symbol(code string) string {
	if s, ok := symbols[code]; ok {
		return s
	}
	return code
}

// SuffixSymbol reports whether the symbol for code follows the amount.
func SuffixSymbol(code string) bool {
	_, ok := suffixed[code]
	return ok
}

// Format renders amount in code using en-US grouping.
// JPY is truncated to an integer, every other code gets two fraction digits.
func Format(amount float64, code string) string {
	var number string
	if code == "JPY" {
		number = formatInteger(amount)
	} else {
		number = formatFixed2(amount)
	}
	return place(number, code)
}

// FormatValue is Format for amounts decoded from JSON, which may be numbers
// or numeric strings. Non-numeric input yields "NaN" in place of the number.
func FormatValue(amount any, code string) string {
	if code == "JPY" {
		return Format(parseIntLenient(amount), code)
	}
	return Format(parseFloatLenient(amount), code)
}

func place(number, code string) string {
	if SuffixSymbol(code) {
		return number + " " + Symbol(code)
	}
	return Symbol(code) + number
}

func formatInteger(v float64) string {
	if s, ok := special(v); ok {
		return s
	}
	d := exact(math.Trunc(v))
	return group(d.StringFixed(0))
}

func formatFixed2(v float64) string {
	if s, ok := special(v); ok {
		return s
	}
	d := exact(v).Round(2)
	return group(d.StringFixed(2))
}

func special(v float64) (string, bool) {
	switch {
	case math.IsNaN(v):
		return nan, true
	case math.IsInf(v, 1):
		return "∞", true
	case math.IsInf(v, -1):
		return "-∞", true
	}
	return "", false
}

// exact converts v to the decimal it represents in binary, not its shortest
// round-tripping form, so 1.005 rounds to 1.00.
func exact(v float64) decimal.Decimal {
	if v == 0 {
		return decimal.Zero
	}
	frac, exp := math.Frexp(v)
	m := big.NewInt(int64(frac * (1 << 53)))
	shift := exp - 53
	if shift >= 0 {
		return decimal.NewFromBigInt(m.Lsh(m, uint(shift)), 0)
	}
	// m * 2^-k == m * 5^k / 10^k
	k := int64(-shift)
	m.Mul(m, new(big.Int).Exp(big.NewInt(5), big.NewInt(k), nil))
	return decimal.NewFromBigInt(m, int32(-k))
}

// group inserts en-US thousands separators into a plain decimal string.
func group(s string) string {
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}
	if sign != "" && strings.Trim(intPart+frac, "0.") == "" {
		sign = ""
	}

	var b strings.Builder
	b.Grow(len(s) + len(s)/3 + 1)
	b.WriteString(sign)
	lead := len(intPart) % 3
	if lead == 0 {
		lead = 3
	}
	b.WriteString(intPart[:lead])
	for i := lead; i < len(intPart); i += 3 {
		b.WriteByte(',')
		b.WriteString(intPart[i : i+3])
	}
	b.WriteString(frac)
	return b.String()
}
