package models

// MessageKind tells who authored a chat message.
type MessageKind string

const (
	MessageKindUser MessageKind = "user"
	MessageKindBot  MessageKind = "bot"
)

// Message is a plain text chat message ready for rendering.
type Message struct {
	Kind MessageKind
	Text string
}

// ConversionView is a conversion reply with both amounts already formatted.
type ConversionView struct {
	Original  string
	Converted string
}
