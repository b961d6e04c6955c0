package memory

import (
	"context"
	"strings"

	"github.com/spec-kit/agent-console/internal/domain"
	"github.com/spec-kit/agent-console/internal/repository"
)

// AgentStore looks up console operators in the in-memory tables.
type AgentStore struct {
	store *Store
}

// NewAgentRepository builds the in-memory agent repository.
func NewAgentRepository(store *Store) *AgentStore {
	return &AgentStore{store: store}
}

func (r *AgentStore) GetByEmail(ctx context.Context, email string) (*domain.Agent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, agent := range r.store.agents {
		if strings.EqualFold(agent.Email, email) {
			clone := agent
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *AgentStore) GetByID(ctx context.Context, id int64) (*domain.Agent, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, agent := range r.store.agents {
		if agent.ID == id {
			clone := agent
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

// AddAgent inserts an operator; used by seeding.
func (s *Store) AddAgent(agent domain.Agent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.agents = append(s.agents, agent)
}
