package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/agent-console/internal/domain"
	"github.com/spec-kit/agent-console/internal/repository"
	apperrors "github.com/spec-kit/agent-console/pkg/util/errorutil"
)

// ChatService reads and appends a customer's chat history.
type ChatService struct {
	chat   repository.ChatRepository
	logger *zap.Logger
	now    func() time.Time
}

// NewChatService builds the service.
func NewChatService(chat repository.ChatRepository, logger *zap.Logger) *ChatService {
	return &ChatService{chat: chat, logger: logger, now: time.Now}
}

// History returns the customer's chat rows, oldest first. An unknown
// customer has an empty history.
func (s *ChatService) History(ctx context.Context, customerID int64) ([]domain.ChatMessage, error) {
	messages, err := s.chat.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return messages, nil
}

// PostMessage appends one chat row. Both customer_id and a non-empty
// message are required; nothing is stored otherwise.
func (s *ChatService) PostMessage(ctx context.Context, customerID int64, message string) (*domain.ChatMessage, error) {
	if customerID == 0 || strings.TrimSpace(message) == "" {
		return nil, apperrors.NewValidationError("missing required fields: customer_id and message", nil)
	}

	row := &domain.ChatMessage{
		CustomerID: customerID,
		Message:    message,
		CreatedAt:  s.now(),
	}
	if err := s.chat.Append(ctx, row); err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	s.logger.Debug("chat message stored",
		zap.Int64("customer_id", customerID),
		zap.Int64("message_id", row.ID),
	)
	return row, nil
}
