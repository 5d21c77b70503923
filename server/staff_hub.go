package server

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/tibino/marta/log"
	"github.com/tibino/marta/messages"
)

// StaffHub fans staff notifications out to subscribed staff connections.
// It is the delivery sink for staged-reservation messages; every notification
// is also logged so nothing is lost when no staff client is connected.
type StaffHub struct {
	mu     sync.Mutex
	conns  map[*websocket.Conn]struct{}
	logger zerolog.Logger
}

// NewStaffHub creates an empty hub.
func NewStaffHub() *StaffHub {
	return &StaffHub{
		conns:  make(map[*websocket.Conn]struct{}),
		logger: log.WithComponent("staff"),
	}
}

// Add subscribes a staff connection.
func (h *StaffHub) Add(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.conns[conn] = struct{}{}
}

// Remove unsubscribes a staff connection.
func (h *StaffHub) Remove(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.conns, conn)
}

// Notify broadcasts a staff notification. Dead connections are dropped.
func (h *StaffHub) Notify(sessionID, message string) {
	h.logger.Info().
		Str("session_id", sessionID).
		Str("message", message).
		Msg("staff notification")

	data, err := messages.Marshal(messages.NewStaffMessage(sessionID, message))
	if err != nil {
		h.logger.Error().Err(err).Msg("failed to encode staff notification")
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			conn.Close()
			delete(h.conns, conn)
		}
	}
}

// Shutdown closes every staff connection.
func (h *StaffHub) Shutdown() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for conn := range h.conns {
		conn.Close()
		delete(h.conns, conn)
	}
}
