package dto

import (
	"time"

	"github.com/spec-kit/agent-console/internal/domain"
	"github.com/spec-kit/agent-console/internal/repository"
)

// CreateTicketRequest is the POST /api/tickets body.
type CreateTicketRequest struct {
	Subject     string  `json:"subject" validate:"required"`
	Description string  `json:"description"`
	Status      string  `json:"status" validate:"omitempty,oneof=Open Pending Resolved Closed"`
	Priority    string  `json:"priority" validate:"omitempty,oneof=Low Medium High Urgent"`
	Channel     *string `json:"channel" validate:"omitempty,oneof=chat email phone sms video social"`
	CustomerID  int64   `json:"customer_id" validate:"required"`
	AgentID     *int64  `json:"agent_id"`
}

// UpdateTicketRequest is the PUT /api/tickets/:id body; every field is
// optional and only the present ones are applied.
type UpdateTicketRequest struct {
	Subject          *string `json:"subject"`
	Description      *string `json:"description"`
	Status           *string `json:"status" validate:"omitempty,oneof=Open Pending Resolved Closed"`
	Priority         *string `json:"priority" validate:"omitempty,oneof=Low Medium High Urgent"`
	Channel          *string `json:"channel" validate:"omitempty,oneof=chat email phone sms video social"`
	AgentID          *int64  `json:"agent_id"`
	ZohoDeskTicketID *string `json:"zoho_desk_ticket_id"`
}

// ToPatch converts the request body to the repository patch structure.
func (r UpdateTicketRequest) ToPatch() repository.TicketPatch {
	patch := repository.TicketPatch{
		Subject:          r.Subject,
		Description:      r.Description,
		AgentID:          r.AgentID,
		ZohoDeskTicketID: r.ZohoDeskTicketID,
	}
	if r.Status != nil {
		status := domain.TicketStatus(*r.Status)
		patch.Status = &status
	}
	if r.Priority != nil {
		priority := domain.TicketPriority(*r.Priority)
		patch.Priority = &priority
	}
	if r.Channel != nil {
		channel := domain.Channel(*r.Channel)
		patch.Channel = &channel
	}
	return patch
}

// CreateNoteRequest is the POST /api/tickets/:id/notes body.
type CreateNoteRequest struct {
	Content string `json:"content" validate:"required"`
	Private bool   `json:"private"`
}

// TicketResponse is one ticket row.
type TicketResponse struct {
	ID               int64                 `json:"id"`
	Subject          string                `json:"subject"`
	Description      string                `json:"description"`
	Status           domain.TicketStatus   `json:"status"`
	Priority         domain.TicketPriority `json:"priority"`
	Category         string                `json:"category,omitempty"`
	Channel          *domain.Channel       `json:"channel"`
	CustomerID       int64                 `json:"customer_id"`
	AgentID          *int64                `json:"agent_id"`
	ZohoDeskTicketID *string               `json:"zoho_desk_ticket_id"`
	CreatedAt        time.Time             `json:"created_at"`
	UpdatedAt        time.Time             `json:"updated_at"`
	Events           []TicketEventResponse `json:"events,omitempty"`
}

// TicketEventResponse is one timeline entry.
type TicketEventResponse struct {
	ID      int64                  `json:"id"`
	Date    time.Time              `json:"date"`
	Type    domain.TicketEventType `json:"type"`
	Content string                 `json:"content"`
	Agent   string                 `json:"agent,omitempty"`
	Status  *domain.TicketStatus   `json:"status,omitempty"`
	Private bool                   `json:"private"`
}

// NewTicketResponse maps a ticket, timeline included when loaded.
func NewTicketResponse(ticket *domain.Ticket) TicketResponse {
	resp := TicketResponse{
		ID:               ticket.ID,
		Subject:          ticket.Subject,
		Description:      ticket.Description,
		Status:           ticket.Status,
		Priority:         ticket.Priority,
		Category:         ticket.Category,
		Channel:          ticket.Channel,
		CustomerID:       ticket.CustomerID,
		AgentID:          ticket.AgentID,
		ZohoDeskTicketID: ticket.ZohoDeskTicketID,
		CreatedAt:        ticket.CreatedAt,
		UpdatedAt:        ticket.UpdatedAt,
	}
	for _, event := range ticket.Events {
		resp.Events = append(resp.Events, NewTicketEventResponse(event))
	}
	return resp
}

// NewTicketEventResponse maps a timeline entry.
func NewTicketEventResponse(event domain.TicketEvent) TicketEventResponse {
	return TicketEventResponse{
		ID:      event.ID,
		Date:    event.Date,
		Type:    event.Type,
		Content: event.Content,
		Agent:   event.Agent,
		Status:  event.Status,
		Private: event.Private,
	}
}
