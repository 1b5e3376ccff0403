package currencies

import (
	"sort"
	"strings"

	"github.com/sbilibin2017/gw-currency-chat/internal/formatter"
	"github.com/sbilibin2017/gw-currency-chat/internal/models"
)

var popular = []models.Currency{
	{Code: "USD", Name: "دولار أمريكي", Symbol: "$"},
	{Code: "EUR", Name: "يورو", Symbol: "€"},
	{Code: "GBP", Name: "جنيه إسترليني", Symbol: "£"},
	{Code: "EGP", Name: "جنيه مصري", Symbol: "ج.م"},
	{Code: "SAR", Name: "ريال سعودي", Symbol: "ر.س"},
	{Code: "AED", Name: "درهم إماراتي", Symbol: "د.إ"},
	{Code: "KWD", Name: "دينار كويتي", Symbol: "د.ك"},
	{Code: "JPY", Name: "ين ياباني", Symbol: "¥"},
	{Code: "CNY", Name: "يوان صيني", Symbol: "¥"},
	{Code: "CAD", Name: "دولار كندي", Symbol: "C$"},
}

// terms maps lower-case English and Arabic currency names to codes.
// Bare "جنيه" means the Egyptian pound.
var terms = map[string]string{
	"dollar":          "USD",
	"dollars":         "USD",
	"usd":             "USD",
	"us dollar":       "USD",
	"american dollar": "USD",
	"euro":            "EUR",
	"euros":           "EUR",
	"eur":             "EUR",
	"pound":           "GBP",
	"pounds":          "GBP",
	"gbp":             "GBP",
	"british pound":   "GBP",
	"egyptian pound":  "EGP",
	"egypt pound":     "EGP",
	"دولار":           "USD",
	"دولار أمريكي":    "USD",
	"يورو":            "EUR",
	"جنيه":            "EGP",
	"جنيه مصري":       "EGP",
	"جنيه استرليني":   "GBP",
	"استرليني":        "GBP",
}

// Popular returns the currencies offered to users, in display order.
func Popular() []models.Currency {
	out := make([]models.Currency, len(popular))
	copy(out, popular)
	return out
}

// Lookup returns the popular currency with the given code. Unknown codes get
// a Currency whose symbol follows the formatter's fallback.
func Lookup(code string) (models.Currency, bool) {
	code = Normalize(code)
	for _, c := range popular {
		if c.Code == code {
			return c, true
		}
	}
	return models.Currency{Code: code, Symbol: formatter.Symbol(code)}, false
}

// Normalize trims and upper-cases a currency code.
func Normalize(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

type match struct {
	start, end int
	code       string
}

// Identify finds the currencies named in text. The first currency mentioned
// becomes the base and the next different one the target. Where terms
// overlap the longest one starting first wins.
func Identify(text string) models.CurrencyPair {
	lower := strings.ToLower(text)

	var found []match
	for term, code := range terms {
		for from := 0; from < len(lower); {
			i := strings.Index(lower[from:], term)
			if i < 0 {
				break
			}
			start := from + i
			found = append(found, match{start: start, end: start + len(term), code: code})
			from = start + 1
		}
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].start != found[j].start {
			return found[i].start < found[j].start
		}
		return found[i].end > found[j].end
	})

	var pair models.CurrencyPair
	end := 0
	for _, m := range found {
		if m.start < end {
			continue
		}
		end = m.end
		switch {
		case pair.Base == "":
			pair.Base = m.code
		case m.code != pair.Base:
			pair.Target = m.code
			return pair
		}
	}
	return pair
}
