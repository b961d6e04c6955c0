package repository

import (
	"context"
	"errors"

	"github.com/spec-kit/agent-console/internal/domain"
)

// ErrNotFound is returned when a row lookup or update matches nothing.
var ErrNotFound = errors.New("not found")

// CustomerRepository reads customer reference data.
type CustomerRepository interface {
	List(ctx context.Context) ([]domain.Customer, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
}

// ProductRepository reads devices registered to a customer.
type ProductRepository interface {
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.Product, error)
}

// ChatRepository reads and appends chat history rows.
type ChatRepository interface {
	ListByCustomer(ctx context.Context, customerID int64) ([]domain.ChatMessage, error)
	Append(ctx context.Context, msg *domain.ChatMessage) error
}

// RequestRepository serves the operator queue. The queue is a fixed
// in-memory list; only the memory store implements this.
type RequestRepository interface {
	List(ctx context.Context) ([]domain.CustomerRequest, error)
	GetByID(ctx context.Context, id int64) (*domain.CustomerRequest, error)
}

// AgentRepository looks up console operators.
type AgentRepository interface {
	GetByEmail(ctx context.Context, email string) (*domain.Agent, error)
	GetByID(ctx context.Context, id int64) (*domain.Agent, error)
}

// TicketPatch is the explicit update structure for PUT /api/tickets/:id:
// every field is present-or-absent, and applying a patch always bumps
// the ticket's updated_at.
type TicketPatch struct {
	Subject          *string
	Description      *string
	Status           *domain.TicketStatus
	Priority         *domain.TicketPriority
	Channel          *domain.Channel
	AgentID          *int64
	ZohoDeskTicketID *string
}

// IsEmpty reports whether the patch carries no fields.
func (p TicketPatch) IsEmpty() bool {
	return p.Subject == nil && p.Description == nil && p.Status == nil &&
		p.Priority == nil && p.Channel == nil && p.AgentID == nil &&
		p.ZohoDeskTicketID == nil
}

// TicketRepository encapsulates ticket and timeline persistence.
type TicketRepository interface {
	List(ctx context.Context) ([]domain.Ticket, error)
	GetByID(ctx context.Context, id int64) (*domain.Ticket, error)
	Create(ctx context.Context, ticket *domain.Ticket) error
	Patch(ctx context.Context, id int64, patch TicketPatch) error
	// AppendEvent assigns the event its sequence position, stores it and
	// refreshes the ticket's updated_at to the event date.
	AppendEvent(ctx context.Context, ticketID int64, event *domain.TicketEvent) error
}
