package events

import (
	"time"

	"github.com/spec-kit/agent-console/internal/domain"
)

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventTicketCreated           EventType = "ticket_created"
	EventTicketStatusChanged     EventType = "ticket_status_changed"
	EventTicketAssignmentChanged EventType = "ticket_assignment_changed"
)

// Event represents a domain event emitted by services. The actor is
// the display name recorded on the resulting timeline entry.
type Event struct {
	Type      EventType
	TicketID  int64
	Actor     string
	Timestamp time.Time
	Payload   any
}

// TicketCreatedPayload accompanies EventTicketCreated.
type TicketCreatedPayload struct {
	Channel *domain.Channel
}

// TicketStatusChangedPayload accompanies EventTicketStatusChanged.
type TicketStatusChangedPayload struct {
	OldStatus domain.TicketStatus
	NewStatus domain.TicketStatus
}

// TicketAssignmentChangedPayload accompanies EventTicketAssignmentChanged.
type TicketAssignmentChangedPayload struct {
	AgentID int64
}
