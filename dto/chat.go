package dto

import "time"

// IncomingMessage là frame client gửi lên qua websocket
type IncomingMessage struct {
	Message string `json:"message"`
}

// BotFrame là frame server gửi về client (welcome và reply)
type BotFrame struct {
	Type      string `json:"type"`
	Message   string `json:"message"`
	Timestamp string `json:"timestamp"`
}

// ChatSessionResponse định nghĩa response cho một phiên chat
type ChatSessionResponse struct {
	ID           uint      `json:"id"`
	SessionID    string    `json:"session_id"`
	CreatedAt    time.Time `json:"created_at"`
	LastActivity time.Time `json:"last_activity"`
}

// ChatMessageResponse định nghĩa response cho một tin nhắn chat
type ChatMessageResponse struct {
	ID        uint      `json:"id"`
	SessionID string    `json:"session_id"`
	Message   string    `json:"message"`
	IsBot     bool      `json:"is_bot"`
	Timestamp time.Time `json:"timestamp"`
}
