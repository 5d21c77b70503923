package messages

// Error codes
const (
	ErrCodeInvalidMessage   = "INVALID_MESSAGE"
	ErrCodeSessionFailed    = "SESSION_FAILED"
	ErrCodeConnectionClosed = "CONNECTION_CLOSED"
)

// Message types
const (
	TypeText   = "text"
	TypeStaff  = "staff"
	TypeStatus = "status"
	TypeError  = "error"
)

// ChatResponse is the body returned by POST /chat.
type ChatResponse struct {
	SessionID string `json:"session_id"`
	Text      string `json:"text"`
}

// ServerMessage represents a WebSocket message sent to a client
type ServerMessage struct {
	Type      string      `json:"type"` // "text", "staff", "status", "error"
	SessionID string      `json:"sessionId,omitempty"`
	Payload   interface{} `json:"payload"`
}

// TextResponsePayload contains the assistant's reply
type TextResponsePayload struct {
	Text string `json:"text"`
}

// StaffPayload contains a staff notification
type StaffPayload struct {
	Message string `json:"message"`
}

// StatusPayload contains status updates
type StatusPayload struct {
	Status  string `json:"status"` // "connected", "pong", "disconnected"
	Message string `json:"message,omitempty"`
}

// ErrorPayload contains error information
type ErrorPayload struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// NewTextMessage creates a reply message
func NewTextMessage(sessionID, text string) *ServerMessage {
	return &ServerMessage{
		Type:      TypeText,
		SessionID: sessionID,
		Payload:   TextResponsePayload{Text: text},
	}
}

// NewStaffMessage creates a staff notification message
func NewStaffMessage(sessionID, message string) *ServerMessage {
	return &ServerMessage{
		Type:      TypeStaff,
		SessionID: sessionID,
		Payload:   StaffPayload{Message: message},
	}
}

// NewStatusMessage creates a status message
func NewStatusMessage(sessionID, status, message string) *ServerMessage {
	return &ServerMessage{
		Type:      TypeStatus,
		SessionID: sessionID,
		Payload:   StatusPayload{Status: status, Message: message},
	}
}

// NewErrorMessage creates an error message
func NewErrorMessage(sessionID, code, message string) *ServerMessage {
	return &ServerMessage{
		Type:      TypeError,
		SessionID: sessionID,
		Payload:   ErrorPayload{Code: code, Message: message},
	}
}
