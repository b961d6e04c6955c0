package service

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/spec-kit/agent-console/internal/domain"
	"github.com/spec-kit/agent-console/internal/events"
	"github.com/spec-kit/agent-console/internal/repository"
)

// TimelineProjector turns published ticket events into timeline
// entries, so every status or assignment change shows up in the
// ticket's activity log.
type TimelineProjector struct {
	tickets repository.TicketRepository
	agents  repository.AgentRepository
	logger  *zap.Logger
}

// NewTimelineProjector builds the projector.
func NewTimelineProjector(tickets repository.TicketRepository, agents repository.AgentRepository, logger *zap.Logger) *TimelineProjector {
	return &TimelineProjector{tickets: tickets, agents: agents, logger: logger}
}

// RegisterHandlers subscribes the projector to the dispatcher.
func (p *TimelineProjector) RegisterHandlers(dispatcher events.Dispatcher) {
	dispatcher.Subscribe(events.EventTicketCreated, p.onCreated)
	dispatcher.Subscribe(events.EventTicketStatusChanged, p.onStatusChanged)
	dispatcher.Subscribe(events.EventTicketAssignmentChanged, p.onAssignmentChanged)
}

func (p *TimelineProjector) onCreated(ctx context.Context, event events.Event) error {
	content := "Ticket created"
	if payload, ok := event.Payload.(events.TicketCreatedPayload); ok && payload.Channel != nil {
		content = fmt.Sprintf("Ticket created via %s", *payload.Channel)
	}
	return p.tickets.AppendEvent(ctx, event.TicketID, &domain.TicketEvent{
		Date:    event.Timestamp,
		Type:    domain.EventTypeCreated,
		Content: content,
		Agent:   event.Actor,
	})
}

func (p *TimelineProjector) onStatusChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketStatusChangedPayload)
	if !ok {
		return nil
	}
	newStatus := payload.NewStatus
	return p.tickets.AppendEvent(ctx, event.TicketID, &domain.TicketEvent{
		Date:    event.Timestamp,
		Type:    domain.EventTypeStatusChange,
		Content: fmt.Sprintf("Status changed to %s", newStatus),
		Agent:   event.Actor,
		Status:  &newStatus,
	})
}

func (p *TimelineProjector) onAssignmentChanged(ctx context.Context, event events.Event) error {
	payload, ok := event.Payload.(events.TicketAssignmentChangedPayload)
	if !ok {
		return nil
	}
	assignee := fmt.Sprintf("agent #%d", payload.AgentID)
	if agent, err := p.agents.GetByID(ctx, payload.AgentID); err == nil {
		assignee = agent.Name
	}
	return p.tickets.AppendEvent(ctx, event.TicketID, &domain.TicketEvent{
		Date:    event.Timestamp,
		Type:    domain.EventTypeAssignmentChange,
		Content: fmt.Sprintf("Assigned to %s", assignee),
		Agent:   event.Actor,
	})
}
