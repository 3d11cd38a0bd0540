// Package server exposes the query language over HTTP for the host UI: a
// websocket endpoint driving per-keystroke suggestions and previews, and
// REST endpoints for the submission path (parse + validate + param mapping).
package server

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/runlens/runlens/querylang"
)

// Server hosts the suggest service. Dynamic domains are held here behind a
// lock and snapshotted into a fresh engine per request, keeping each engine
// single-caller as the query package requires.
type Server struct {
	addr string
	log  *zap.SugaredLogger

	mu        sync.RWMutex
	workflows []string
	folders   []string

	httpServer *http.Server
}

// New creates a server listening on addr with the given initial domains.
func New(addr string, log *zap.SugaredLogger, workflows, folders []string) *Server {
	s := &Server{
		addr:      addr,
		log:       log,
		workflows: workflows,
		folders:   folders,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws/suggest", s.handleSuggestWS)
	mux.HandleFunc("/api/query/parse", s.handleParse)
	mux.HandleFunc("/api/query/validate", s.handleValidate)
	mux.HandleFunc("/api/health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:              addr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler returns the HTTP handler, exposed for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// SetDomains replaces the dynamic domains served to new requests.
func (s *Server) SetDomains(workflows, folders []string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.workflows = workflows
	s.folders = folders
}

// engine builds a fresh engine over the current domain snapshot.
func (s *Server) engine() *querylang.Engine {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return querylang.NewEngine(s.workflows, s.folders)
}

// Start runs the HTTP listener until it fails or Shutdown is called.
func (s *Server) Start() error {
	s.log.Infow("Suggest service listening", "addr", s.addr)
	err := s.httpServer.ListenAndServe()
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

// Shutdown drains connections and stops the listener.
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Infow("Suggest service shutting down")
	return s.httpServer.Shutdown(ctx)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
