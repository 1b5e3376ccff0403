package models

// Currency describes a supported currency.
type Currency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// CurrencyPair holds the currencies found in a user message.
// Empty fields mean the currency was not found.
type CurrencyPair struct {
	Base   string `json:"base_currency,omitempty"`
	Target string `json:"target_currency,omitempty"`
}
