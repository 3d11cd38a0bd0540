package server

import (
	"encoding/json"
	"net/http"

	"github.com/runlens/runlens/querylang"
)

type parseRequest struct {
	Query string `json:"query"`
}

type parseResponse struct {
	Filters    []querylang.ParsedFilter `json:"filters"`
	TextSearch string                   `json:"textSearch"`
	Params     map[string]string        `json:"params"`
}

type validateResponse struct {
	Valid bool `json:"valid"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// handleParse is the submission path: validate, parse, and map to the
// execution API params in one shot. Structurally incomplete queries are
// rejected with 422 before any parsing output is produced.
func (s *Server) handleParse(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	if !querylang.ValidateQuery(req.Query) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{Error: "query is structurally incomplete"})
		return
	}

	parsed := querylang.ParseQuery(req.Query)
	s.log.Debugw("Query parsed",
		"filters", len(parsed.Filters),
		"hasText", parsed.TextSearch != "",
	)

	writeJSON(w, http.StatusOK, parseResponse{
		Filters:    parsed.Filters,
		TextSearch: parsed.TextSearch,
		Params:     querylang.QueryToAPIParams(parsed),
	})
}

func (s *Server) handleValidate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req parseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid JSON body"})
		return
	}

	writeJSON(w, http.StatusOK, validateResponse{Valid: querylang.ValidateQuery(req.Query)})
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	s.mu.RLock()
	workflows, folders := len(s.workflows), len(s.folders)
	s.mu.RUnlock()

	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"workflows": workflows,
		"folders":   folders,
	})
}
