package memory

import (
	"context"

	"github.com/spec-kit/agent-console/internal/domain"
)

// ChatStore serves chat history rows from the in-memory tables.
type ChatStore struct {
	store *Store
}

// NewChatRepository builds the in-memory chat repository.
func NewChatRepository(store *Store) *ChatStore {
	return &ChatStore{store: store}
}

func (r *ChatStore) ListByCustomer(ctx context.Context, customerID int64) ([]domain.ChatMessage, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []domain.ChatMessage
	for _, msg := range r.store.chat {
		if msg.CustomerID == customerID {
			result = append(result, msg)
		}
	}
	return result, nil
}

func (r *ChatStore) Append(ctx context.Context, msg *domain.ChatMessage) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	msg.ID = r.store.nextChatID
	r.store.nextChatID++
	if msg.CreatedAt.IsZero() {
		msg.CreatedAt = r.store.now()
	}
	r.store.chat = append(r.store.chat, *msg)
	return nil
}
