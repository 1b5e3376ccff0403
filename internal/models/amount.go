package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// Amount is a monetary value as received over JSON. The backend may send it
// as a number or as a numeric string, so the raw text is kept as is.
type Amount struct {
	raw    string
	quoted bool
}

// NewAmount builds an Amount from its textual form.
func NewAmount(raw string) Amount {
	return Amount{raw: raw, quoted: true}
}

// AmountOf builds an Amount from a float.
func AmountOf(v float64) Amount {
	return Amount{raw: strconv.FormatFloat(v, 'f', -1, 64)}
}

// String returns the raw text of the amount.
func (a Amount) String() string {
	return a.raw
}

// Value returns the amount as a json.Number when it arrived as a number and
// as a plain string otherwise.
func (a Amount) Value() any {
	if a.quoted {
		return a.raw
	}
	return json.Number(a.raw)
}

// IsZero reports whether the amount was absent or null.
func (a Amount) IsZero() bool {
	return a.raw == "" && !a.quoted
}

func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case bytes.Equal(data, []byte("null")):
		*a = Amount{}
		return nil
	case len(data) > 0 && data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*a = Amount{raw: s, quoted: true}
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("amount must be a number or a string: %w", err)
	}
	*a = Amount{raw: n.String()}
	return nil
}

func (a Amount) MarshalJSON() ([]byte, error) {
	if a.IsZero() {
		return []byte("null"), nil
	}
	if a.quoted {
		return json.Marshal(a.raw)
	}
	return []byte(a.raw), nil
}
