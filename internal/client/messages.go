package client

import "encoding/json"

// ClientMessage is the outbound envelope: a named event plus its
// JSON-serializable payload.
type ClientMessage struct {
	Type    string `json:"type"`
	Payload any    `json:"payload,omitempty"`
}

// ServerMessage is the inbound envelope. Payload stays raw until the
// event type picks its struct.
type ServerMessage struct {
	Type    string          `json:"type"`
	Payload json.RawMessage `json:"payload"`
}
