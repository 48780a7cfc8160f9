package site

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
)

// maxRelated is how many related chapters accompany a placeholder answer.
const maxRelated = 3

// writeWait bounds each write to the chat socket.
const writeWait = 10 * time.Second

const (
	placeholderWithRelated = "The AI assistant is a placeholder in this edition of the book. These chapters look related to your question:"
	placeholderNoRelated   = "The AI assistant is a placeholder in this edition of the book. Browse the chapters in the sidebar to keep learning."
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// chatRequest is the incoming WebSocket message format.
type chatRequest struct {
	Type      string `json:"type"`       // "ask"
	SessionID string `json:"session_id"` // empty for new sessions
	Content   string `json:"content"`
}

// chatResponse is the outgoing WebSocket message format.
type chatResponse struct {
	Type      string         `json:"type"` // "response" or "error"
	SessionID string         `json:"session_id"`
	Content   string         `json:"content"`
	Related   []relatedEntry `json:"related,omitempty"`
}

type relatedEntry struct {
	Path  string `json:"path"`
	Title string `json:"title"`
}

func (s *Site) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("livebook: websocket upgrade: %v", err)
		return
	}
	defer conn.Close()

	for {
		_, msg, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Printf("livebook: websocket read: %v", err)
			}
			return
		}

		var req chatRequest
		if err := json.Unmarshal(msg, &req); err != nil {
			s.sendError(conn, "", "invalid message format")
			continue
		}

		if req.Content == "" {
			s.sendError(conn, req.SessionID, "content is required")
			continue
		}

		switch req.Type {
		case "ask":
			s.sendResponse(conn, s.placeholderAnswer(req))
		default:
			s.sendError(conn, req.SessionID, "unknown message type: "+req.Type)
		}
	}
}

// placeholderAnswer builds the canned reply, pointing at chapters that
// match the question. Nothing is generated or remembered.
func (s *Site) placeholderAnswer(req chatRequest) chatResponse {
	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	resp := chatResponse{
		Type:      "response",
		SessionID: sessionID,
		Content:   placeholderNoRelated,
	}
	for _, e := range Search(s.index, req.Content, maxRelated) {
		resp.Related = append(resp.Related, relatedEntry{Path: e.Path, Title: e.Title})
	}
	if len(resp.Related) > 0 {
		resp.Content = placeholderWithRelated
	}
	return resp
}

func (s *Site) sendResponse(conn *websocket.Conn, resp chatResponse) {
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("livebook: websocket write: %v", err)
	}
}

func (s *Site) sendError(conn *websocket.Conn, sessionID, message string) {
	resp := chatResponse{
		Type:      "error",
		SessionID: sessionID,
		Content:   message,
	}
	conn.SetWriteDeadline(time.Now().Add(writeWait))
	if err := conn.WriteJSON(resp); err != nil {
		log.Printf("livebook: websocket write error: %v", err)
	}
}
