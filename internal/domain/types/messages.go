package types

import "time"

// Envelope is the wire-format text message you post/get from the SMS gateway.
// One envelope carries one transport segment.
type Envelope struct {
	ID        string  `json:"id,omitempty"`
	From      Address `json:"from"`
	To        Address `json:"to"`
	Body      string  `json:"body"`
	Timestamp int64   `json:"timestamp"`
}

// Incoming converts a delivered envelope into the message the dispatcher sees.
func (e Envelope) Incoming() IncomingMessage {
	return IncomingMessage{
		ID:         e.ID,
		From:       e.From,
		To:         e.To,
		Body:       e.Body,
		ReceivedAt: time.Unix(e.Timestamp, 0),
	}
}

// IncomingMessage is one inbound fragment as handed to the dispatcher.
// It is never mutated after creation.
type IncomingMessage struct {
	ID         string
	From       Address
	To         Address
	Body       string
	ReceivedAt time.Time
}

// Reply is the single logical answer to one processed message.
type Reply struct {
	Text     string
	Segments []string
}
