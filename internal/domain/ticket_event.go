package domain

import "time"

// TicketEventType captures what kind of timeline entry an event is.
type TicketEventType string

const (
	EventTypeCreated          TicketEventType = "created"
	EventTypeStatusChange     TicketEventType = "statusChange"
	EventTypeAssignmentChange TicketEventType = "assignmentChange"
	EventTypeNote             TicketEventType = "note"
	EventTypeCustomerMessage  TicketEventType = "customerMessage"
	EventTypeAgentMessage     TicketEventType = "agentMessage"
	EventTypeResolution       TicketEventType = "resolution"
)

// TicketEvent is one entry in a ticket's append-only activity log.
// ID is the event's position in the sequence, starting at 1.
type TicketEvent struct {
	ID      int64
	Date    time.Time
	Type    TicketEventType
	Content string
	Agent   string
	Status  *TicketStatus
	Private bool
}

// EventFilter narrows a timeline read. Zero value returns the public
// sequence; private entries are excluded unless IncludePrivate is set.
type EventFilter struct {
	Type           *TicketEventType
	IncludePrivate bool
}

// Matches reports whether the event passes the filter.
func (f EventFilter) Matches(event TicketEvent) bool {
	if event.Private && !f.IncludePrivate {
		return false
	}
	if f.Type != nil && event.Type != *f.Type {
		return false
	}
	return true
}
