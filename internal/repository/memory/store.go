package memory

import (
	"sync"
	"time"

	"github.com/spec-kit/agent-console/internal/domain"
)

// Store is the in-memory database backing the console when no postgres
// DSN is configured. It plays the role the previous deployment gave a
// ":memory:" SQL database: flat tables, auto-increment ids, no
// transactions. A single mutex serializes access, which is all the
// single-operator usage model needs.
type Store struct {
	mu sync.RWMutex

	customers []domain.Customer
	products  []domain.Product
	chat      []domain.ChatMessage
	requests  []domain.CustomerRequest
	agents    []domain.Agent
	tickets   []*domain.Ticket

	nextChatID   int64
	nextTicketID int64

	now func() time.Time
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		nextChatID:   1,
		nextTicketID: 1,
		now:          time.Now,
	}
}

func (s *Store) findTicket(id int64) *domain.Ticket {
	for _, ticket := range s.tickets {
		if ticket.ID == id {
			return ticket
		}
	}
	return nil
}

func cloneTicket(ticket *domain.Ticket) *domain.Ticket {
	clone := *ticket
	clone.Events = make([]domain.TicketEvent, len(ticket.Events))
	copy(clone.Events, ticket.Events)
	return &clone
}
