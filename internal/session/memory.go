package session

import (
	"context"
	"sync"

	"github.com/spec-kit/agent-console/internal/domain"
)

// MemoryStore keeps sessions in a mutex-guarded map; the default
// backend.
type MemoryStore struct {
	mu       sync.RWMutex
	sessions map[string]domain.ConsoleSession
}

// NewMemoryStore builds an empty in-memory session store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{sessions: make(map[string]domain.ConsoleSession)}
}

func (s *MemoryStore) Put(ctx context.Context, session *domain.ConsoleSession) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = *session
	return nil
}

func (s *MemoryStore) Get(ctx context.Context, id string) (*domain.ConsoleSession, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := session
	return &clone, nil
}

func (s *MemoryStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
