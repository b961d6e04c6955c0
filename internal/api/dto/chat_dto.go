package dto

import (
	"time"

	"github.com/spec-kit/agent-console/internal/domain"
)

// PostChatMessageRequest is the POST /api/chat/message body.
type PostChatMessageRequest struct {
	CustomerID int64  `json:"customer_id" validate:"required"`
	Message    string `json:"message" validate:"required"`
}

// ChatMessageResponse is one chat history row.
type ChatMessageResponse struct {
	ID         int64     `json:"id"`
	CustomerID int64     `json:"customer_id"`
	Message    string    `json:"message"`
	CreatedAt  time.Time `json:"created_at"`
}

// NewChatMessageResponse maps a chat row.
func NewChatMessageResponse(msg domain.ChatMessage) ChatMessageResponse {
	return ChatMessageResponse{
		ID:         msg.ID,
		CustomerID: msg.CustomerID,
		Message:    msg.Message,
		CreatedAt:  msg.CreatedAt,
	}
}
