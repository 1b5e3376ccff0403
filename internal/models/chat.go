package models

// ChatRequest is the JSON body posted to the chat endpoint.
type ChatRequest struct {
	Message string `json:"message"`
}

// Response types produced by the chat backend.
const (
	ResponseTypeText       = "text"
	ResponseTypeConversion = "conversion"
	ResponseTypeError      = "error"
)

// ChatEnvelope wraps every reply of the chat endpoint.
// Exactly one of Response or Error is expected to be set.
type ChatEnvelope struct {
	Response *ChatResponse `json:"response,omitempty"`
	Error    string        `json:"error,omitempty"`
}

// ChatResponse is a single bot reply.
type ChatResponse struct {
	Type string      `json:"type"`
	Text string      `json:"text,omitempty"`
	Data *Conversion `json:"data,omitempty"`
}

// Conversion carries the amounts of a currency conversion reply.
type Conversion struct {
	Amount         Amount `json:"amount"`
	BaseCurrency   string `json:"base_currency"`
	Result         Amount `json:"result"`
	TargetCurrency string `json:"target_currency"`
}
