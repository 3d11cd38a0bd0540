package server

import (
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/runlens/runlens/querylang"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Maximum message size allowed from peer; queries are short strings.
	maxMessageSize = 64 * 1024
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 4096,
	// The host UI is served from a different origin in development.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// suggestRequest is one keystroke's worth of state from the host UI. When
// Preview is set the client is asking what accepting that suggestion would
// produce instead of asking for completions.
type suggestRequest struct {
	Input   string                `json:"input"`
	Cursor  int                   `json:"cursor"`
	Preview *querylang.Suggestion `json:"preview,omitempty"`
}

type suggestResponse struct {
	Context querylang.QueryContext     `json:"context"`
	Group   *querylang.SuggestionGroup `json:"group"`
	Valid   bool                       `json:"valid"`
	Preview string                     `json:"preview,omitempty"`
}

// handleSuggestWS drives the interactive path: one engine per connection,
// one request/response pair per keystroke.
func (s *Server) handleSuggestWS(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.log.Warnw("Websocket upgrade failed", "error", err)
		return
	}
	defer conn.Close()

	s.log.Debugw("Suggest session opened", "remote", conn.RemoteAddr())
	conn.SetReadLimit(maxMessageSize)

	engine := s.engine()
	for {
		var req suggestRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				s.log.Warnw("Suggest session read failed", "error", err)
			}
			return
		}

		// Pick up domain refreshes between keystrokes.
		engine = s.engine()

		resp := suggestResponse{
			Context: querylang.AnalyzeContext(req.Input, req.Cursor),
			Group:   engine.Suggest(req.Input, req.Cursor),
			Valid:   querylang.ValidateQuery(req.Input),
		}
		if req.Preview != nil {
			resp.Preview = engine.Preview(*req.Preview, req.Input, req.Cursor)
		}

		conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := conn.WriteJSON(resp); err != nil {
			s.log.Warnw("Suggest session write failed", "error", err)
			return
		}
	}
}
