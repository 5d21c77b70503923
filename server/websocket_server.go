package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog"

	"github.com/tibino/marta/config"
	"github.com/tibino/marta/conversation"
	"github.com/tibino/marta/log"
	"github.com/tibino/marta/messages"
	"github.com/tibino/marta/session"
)

// WSServer serves the chat over WebSocket plus the staff notification feed.
type WSServer struct {
	httpServer   *http.Server
	upgrader     websocket.Upgrader
	store        *session.Store
	orchestrator *conversation.Orchestrator
	hub          *StaffHub
	config       *config.Config
	logger       zerolog.Logger
}

// NewWSServer wires the WebSocket endpoints.
func NewWSServer(cfg *config.Config, store *session.Store, orchestrator *conversation.Orchestrator, hub *StaffHub) *WSServer {
	s := &WSServer{
		store:        store,
		orchestrator: orchestrator,
		hub:          hub,
		config:       cfg,
		logger:       log.WithComponent("websocket"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  4 * 1024,
			WriteBufferSize: 4 * 1024,
			CheckOrigin: func(r *http.Request) bool {
				origin := r.Header.Get("Origin")
				for _, allowed := range cfg.AllowedOrigins {
					if allowed == "*" || allowed == origin {
						return true
					}
				}
				return false
			},
		},
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleChat)
	mux.HandleFunc("/staff", s.handleStaff)
	mux.HandleFunc("/health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:        fmt.Sprintf(":%d", cfg.WSPort),
		Handler:     mux,
		ReadTimeout: 10 * time.Second,
	}

	return s
}

// Start begins listening for connections
func (s *WSServer) Start() error {
	s.logger.Info().Int("port", s.config.WSPort).Msg("websocket server starting")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server
func (s *WSServer) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("shutting down websocket server")
	s.hub.Shutdown()
	return s.httpServer.Shutdown(ctx)
}

// handleChat runs a guest conversation over a WebSocket connection. A client
// may resume an earlier session by passing ?session_id=.
func (s *WSServer) handleChat(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	sess := s.store.GetOrCreate(r.Context(), r.URL.Query().Get("session_id"))
	s.logger.Info().Str("session_id", sess.ID).Msg("chat connection opened")

	s.send(conn, messages.NewStatusMessage(sess.ID, "connected", "Session established"))

	for {
		_, data, err := conn.ReadMessage()
		if err != nil {
			s.logger.Info().Str("session_id", sess.ID).Msg("chat connection closed")
			return
		}

		var msg messages.ClientMessage
		if err := messages.Unmarshal(data, &msg); err != nil {
			s.send(conn, messages.NewErrorMessage(sess.ID, messages.ErrCodeInvalidMessage, "malformed message"))
			continue
		}

		switch msg.Type {
		case messages.TypeText:
			var payload messages.TextPayload
			if err := messages.Unmarshal(msg.Payload, &payload); err != nil || payload.Text == "" {
				s.send(conn, messages.NewErrorMessage(sess.ID, messages.ErrCodeInvalidMessage, "text payload required"))
				continue
			}
			sess.Lock()
			reply := s.orchestrator.Process(r.Context(), sess, payload.Text)
			sess.Unlock()
			s.send(conn, messages.NewTextMessage(sess.ID, reply))

		case "control":
			s.send(conn, messages.NewStatusMessage(sess.ID, "pong", ""))

		default:
			s.send(conn, messages.NewErrorMessage(sess.ID, messages.ErrCodeInvalidMessage, "unknown message type"))
		}
	}
}

// handleStaff subscribes a staff client to the notification feed.
func (s *WSServer) handleStaff(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn().Err(err).Msg("staff upgrade failed")
		return
	}

	s.hub.Add(conn)
	s.logger.Info().Msg("staff connection opened")

	// Drain the connection until it closes; staff only receives.
	go func() {
		defer func() {
			s.hub.Remove(conn)
			conn.Close()
			s.logger.Info().Msg("staff connection closed")
		}()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}

func (s *WSServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"ok","sessions":%d}`, s.store.Count())
}

func (s *WSServer) send(conn *websocket.Conn, msg *messages.ServerMessage) {
	data, err := messages.Marshal(msg)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to encode message")
		return
	}
	if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
		s.logger.Warn().Err(err).Msg("websocket write failed")
	}
}
