package memory

import (
	"context"

	"github.com/spec-kit/agent-console/internal/domain"
	"github.com/spec-kit/agent-console/internal/repository"
)

// RequestStore serves the operator queue from the in-memory tables.
type RequestStore struct {
	store *Store
}

// NewRequestRepository builds the in-memory request repository.
func NewRequestRepository(store *Store) *RequestStore {
	return &RequestStore{store: store}
}

func (r *RequestStore) List(ctx context.Context) ([]domain.CustomerRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]domain.CustomerRequest, len(r.store.requests))
	copy(result, r.store.requests)
	return result, nil
}

func (r *RequestStore) GetByID(ctx context.Context, id int64) (*domain.CustomerRequest, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, request := range r.store.requests {
		if request.ID == id {
			clone := request
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

// AddRequest inserts a queue entry; used by seeding.
func (s *Store) AddRequest(request domain.CustomerRequest) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.requests = append(s.requests, request)
}
