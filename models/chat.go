package models

// ChatMessage is one turn of the visible conversation, replayed by the
// client on every call (the remote service keeps no state)
type ChatMessage struct {
	Role string `json:"role"` // user, assistant
	Text string `json:"text"`
}

// ChatRequest represents an incoming concierge message
type ChatRequest struct {
	SessionID string        `json:"session_id"`
	Message   string        `json:"message" binding:"required"`
	History   []ChatMessage `json:"history"`
}

// ChatResponse represents a concierge reply
type ChatResponse struct {
	Success   bool   `json:"success"`
	SessionID string `json:"session_id"`
	Message   string `json:"message"`
}
