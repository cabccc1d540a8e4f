// Package gateway serves a chat surface over HTTP: a WebSocket endpoint for
// conversational turns against the orchestrator, plus read-only tool listing
// and health endpoints.
package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/neves/zen-bridge/internal/orchestrator"
	"github.com/neves/zen-bridge/internal/tools"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true // Allow all origins for local development
	},
}

// WSRequest is a client frame. Type is "chat", "clear" or "tools".
type WSRequest struct {
	Type  string `json:"type"`
	Input string `json:"input,omitempty"`
}

// WSResponse is a server frame answering one request.
type WSResponse struct {
	Type    string         `json:"type"`
	ID      string         `json:"id,omitempty"`
	Content string         `json:"content,omitempty"`
	Tools   []tools.Schema `json:"tools,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// Server exposes one orchestrator over HTTP/WebSocket. Turns from all
// connections funnel into the same conversation and are serialized by the
// orchestrator itself.
type Server struct {
	orch   *orchestrator.Orchestrator
	addr   string
	logger *zap.Logger
}

func New(orch *orchestrator.Orchestrator, addr string, logger *zap.Logger) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{orch: orch, addr: addr, logger: logger}
}

// Handler returns the HTTP routes.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/healthz", s.handleHealth)
	mux.HandleFunc("/tools", s.handleTools)
	return mux
}

// Run serves until ctx is cancelled.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.addr,
		Handler: s.Handler(),
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()
	s.logger.Info("gateway listening", zap.String("addr", s.addr))

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		return err
	}
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"status": "ok",
		"tools":  len(s.orch.ToolNames()),
	})
}

// handleTools lists the registered tool schemas, the only shape external
// clients may depend on.
func (s *Server) handleTools(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"tools": s.orch.Schemas(),
	})
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	s.logger.Info("websocket client connected", zap.String("remote", r.RemoteAddr))

	for {
		var req WSRequest
		if err := conn.ReadJSON(&req); err != nil {
			s.logger.Debug("websocket closed", zap.Error(err))
			return
		}

		resp := s.handleRequest(r.Context(), req)
		if err := conn.WriteJSON(resp); err != nil {
			s.logger.Warn("websocket write failed", zap.Error(err))
			return
		}
	}
}

func (s *Server) handleRequest(ctx context.Context, req WSRequest) WSResponse {
	switch req.Type {
	case "chat":
		if req.Input == "" {
			return WSResponse{Type: "error", Error: "input required"}
		}
		content := s.orch.ProcessRequest(ctx, req.Input)
		return WSResponse{
			Type:    "reply",
			ID:      uuid.NewString(),
			Content: content,
		}
	case "clear":
		s.orch.ClearHistory()
		return WSResponse{Type: "cleared"}
	case "tools":
		return WSResponse{Type: "tools", Tools: s.orch.Schemas()}
	default:
		return WSResponse{Type: "error", Error: "unknown request type: " + req.Type}
	}
}
