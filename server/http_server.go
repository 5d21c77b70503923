package server

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/tibino/marta/config"
	"github.com/tibino/marta/conversation"
	"github.com/tibino/marta/log"
	"github.com/tibino/marta/messages"
	"github.com/tibino/marta/responses"
	"github.com/tibino/marta/session"
)

const maxChatBodySize = 64 * 1024

// HTTPServer serves the plain HTTP chat API.
type HTTPServer struct {
	httpServer   *http.Server
	store        *session.Store
	orchestrator *conversation.Orchestrator
	config       *config.Config
	logger       zerolog.Logger
}

// NewHTTPServer wires the HTTP endpoints.
func NewHTTPServer(cfg *config.Config, store *session.Store, orchestrator *conversation.Orchestrator) *HTTPServer {
	s := &HTTPServer{
		store:        store,
		orchestrator: orchestrator,
		config:       cfg,
		logger:       log.WithComponent("http"),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/chat", s.handleChat)
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/menu-hoje", s.handleMenuToday)
	mux.HandleFunc("/", s.handleRoot)

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	return s
}

// Start begins listening for requests
func (s *HTTPServer) Start() error {
	s.logger.Info().Int("port", s.config.Port).Msg("http server starting")
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server
func (s *HTTPServer) Shutdown(ctx context.Context) error {
	s.logger.Info().Msg("shutting down http server")
	return s.httpServer.Shutdown(ctx)
}

// handleChat is the main chat endpoint.
func (s *HTTPServer) handleChat(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		w.WriteHeader(http.StatusMethodNotAllowed)
		return
	}

	body, err := io.ReadAll(io.LimitReader(r.Body, maxChatBodySize))
	if err != nil {
		s.writeError(w, http.StatusBadRequest, messages.ErrCodeInvalidMessage, "could not read request body")
		return
	}

	var req messages.ChatRequest
	if err := messages.Unmarshal(body, &req); err != nil || req.Text == "" {
		s.writeError(w, http.StatusBadRequest, messages.ErrCodeInvalidMessage, "expected a JSON body with a text field")
		return
	}

	sess := s.store.GetOrCreate(r.Context(), req.SessionID)
	sess.Lock()
	reply := s.orchestrator.Process(r.Context(), sess, req.Text)
	sess.Unlock()

	s.writeJSON(w, http.StatusOK, messages.ChatResponse{SessionID: sess.ID, Text: reply})
}

func (s *HTTPServer) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprintf(w, `{"status":"ok","sessions":%d}`, s.store.Count())
}

// handleMenuToday returns the daily specials for today.
func (s *HTTPServer) handleMenuToday(w http.ResponseWriter, _ *http.Request) {
	day := time.Now().Weekday()
	payload := struct {
		Day    string   `json:"dia"`
		Dishes []string `json:"pratos"`
	}{
		Day:    strings.ToLower(day.String()),
		Dishes: responses.SpecialsFor(day),
	}
	s.writeJSON(w, http.StatusOK, payload)
}

func (s *HTTPServer) handleRoot(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	fmt.Fprint(w, `{"message":"Marta is running. POST to /chat to talk to her."}`)
}

func (s *HTTPServer) writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := messages.Marshal(v)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
		w.WriteHeader(http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(data)
}

func (s *HTTPServer) writeError(w http.ResponseWriter, status int, code, msg string) {
	s.writeJSON(w, status, messages.NewErrorMessage("", code, msg))
}
