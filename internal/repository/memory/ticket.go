package memory

import (
	"context"
	"sort"

	"github.com/spec-kit/agent-console/internal/domain"
	"github.com/spec-kit/agent-console/internal/repository"
)

// TicketStore serves tickets and their event timelines from the
// in-memory tables.
type TicketStore struct {
	store *Store
}

// NewTicketRepository builds the in-memory ticket repository.
func NewTicketRepository(store *Store) *TicketStore {
	return &TicketStore{store: store}
}

func (r *TicketStore) List(ctx context.Context) ([]domain.Ticket, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]domain.Ticket, 0, len(r.store.tickets))
	for _, ticket := range r.store.tickets {
		result = append(result, *cloneTicket(ticket))
	}
	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

func (r *TicketStore) GetByID(ctx context.Context, id int64) (*domain.Ticket, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	ticket := r.store.findTicket(id)
	if ticket == nil {
		return nil, repository.ErrNotFound
	}
	return cloneTicket(ticket), nil
}

func (r *TicketStore) Create(ctx context.Context, ticket *domain.Ticket) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ticket.ID = r.store.nextTicketID
	r.store.nextTicketID++
	now := r.store.now()
	if ticket.CreatedAt.IsZero() {
		ticket.CreatedAt = now
	}
	if ticket.UpdatedAt.IsZero() {
		ticket.UpdatedAt = ticket.CreatedAt
	}
	r.store.tickets = append(r.store.tickets, cloneTicket(ticket))
	return nil
}

func (r *TicketStore) Patch(ctx context.Context, id int64, patch repository.TicketPatch) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ticket := r.store.findTicket(id)
	if ticket == nil {
		return repository.ErrNotFound
	}

	if patch.Subject != nil {
		ticket.Subject = *patch.Subject
	}
	if patch.Description != nil {
		ticket.Description = *patch.Description
	}
	if patch.Status != nil {
		ticket.Status = *patch.Status
	}
	if patch.Priority != nil {
		ticket.Priority = *patch.Priority
	}
	if patch.Channel != nil {
		channel := *patch.Channel
		ticket.Channel = &channel
	}
	if patch.AgentID != nil {
		agentID := *patch.AgentID
		ticket.AgentID = &agentID
	}
	if patch.ZohoDeskTicketID != nil {
		ref := *patch.ZohoDeskTicketID
		ticket.ZohoDeskTicketID = &ref
	}
	ticket.UpdatedAt = r.store.now()
	return nil
}

func (r *TicketStore) AppendEvent(ctx context.Context, ticketID int64, event *domain.TicketEvent) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	ticket := r.store.findTicket(ticketID)
	if ticket == nil {
		return repository.ErrNotFound
	}

	event.ID = int64(len(ticket.Events) + 1)
	ticket.Events = append(ticket.Events, *event)
	ticket.UpdatedAt = event.Date
	return nil
}
