package domain

import "time"

// TicketStatus enumerates lifecycle states for tickets. Status is set
// directly by the operator; no transition rules are enforced.
type TicketStatus string

const (
	TicketStatusOpen     TicketStatus = "Open"
	TicketStatusPending  TicketStatus = "Pending"
	TicketStatusResolved TicketStatus = "Resolved"
	TicketStatusClosed   TicketStatus = "Closed"
)

// TicketPriority enumerates urgency.
type TicketPriority string

const (
	TicketPriorityLow    TicketPriority = "Low"
	TicketPriorityMedium TicketPriority = "Medium"
	TicketPriorityHigh   TicketPriority = "High"
	TicketPriorityUrgent TicketPriority = "Urgent"
)

// Ticket is the aggregate for support work items. Events is the
// append-only activity log owned by the ticket; ordering is insertion
// order and UpdatedAt is refreshed on every append.
type Ticket struct {
	ID               int64
	Subject          string
	Description      string
	Status           TicketStatus
	Priority         TicketPriority
	Category         string
	Channel          *Channel
	CustomerID       int64
	AgentID          *int64
	ZohoDeskTicketID *string
	CreatedAt        time.Time
	UpdatedAt        time.Time
	Events           []TicketEvent
}
