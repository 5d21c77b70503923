package messages

import "encoding/json"

// ChatRequest is the body of POST /chat.
type ChatRequest struct {
	SessionID string `json:"session_id,omitempty"`
	Text      string `json:"text"`
}

// ClientMessage represents a WebSocket message from a client
type ClientMessage struct {
	Type    string          `json:"type"` // "text", "control"
	Payload json.RawMessage `json:"payload"`
}

// TextPayload contains a guest message
type TextPayload struct {
	Text string `json:"text"`
}

// ControlPayload contains control commands
type ControlPayload struct {
	Action string `json:"action"` // "ping"
}
