package messages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChatRequestRoundTrip(t *testing.T) {
	data := []byte(`{"session_id":"abc","text":"reserva para 4"}`)

	var req ChatRequest
	require.NoError(t, Unmarshal(data, &req))
	assert.Equal(t, "abc", req.SessionID)
	assert.Equal(t, "reserva para 4", req.Text)
}

func TestServerMessageEncoding(t *testing.T) {
	msg := NewStaffMessage("sess-1", "Nova reserva")

	data, err := Marshal(msg)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"type":"staff"`)
	assert.Contains(t, string(data), "Nova reserva")
}

func TestClientMessagePayloadDecoding(t *testing.T) {
	data := []byte(`{"type":"text","payload":{"text":"olá"}}`)

	var msg ClientMessage
	require.NoError(t, Unmarshal(data, &msg))
	assert.Equal(t, TypeText, msg.Type)

	var payload TextPayload
	require.NoError(t, Unmarshal(msg.Payload, &payload))
	assert.Equal(t, "olá", payload.Text)
}
