package types

import (
	"time"

	"github.com/google/uuid"
)

type MessageRole string

const (
	RoleUser  MessageRole = "user"
	RoleModel MessageRole = "model"
)

// ChatMessage is one entry of a session's conversation. Seq is assigned
// when the message is appended; ReplyTo points a model reply at the user
// message that triggered it.
type ChatMessage struct {
	ID        uuid.UUID   `json:"id"`
	Seq       int64       `json:"seq"`
	ReplyTo   int64       `json:"reply_to,omitempty"`
	Role      MessageRole `json:"role"`
	Text      string      `json:"text"`
	Timestamp time.Time   `json:"timestamp"`
}

type SendMessageRequest struct {
	Message string `json:"message"`
}

type ChatHistory struct {
	Messages []ChatMessage `json:"messages"`
	Pending  int           `json:"pending"` // requests still in flight
}
