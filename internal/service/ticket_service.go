package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/agent-console/internal/domain"
	"github.com/spec-kit/agent-console/internal/events"
	"github.com/spec-kit/agent-console/internal/repository"
	apperrors "github.com/spec-kit/agent-console/pkg/util/errorutil"
)

// TicketCreateInput carries the fields of a ticket creation.
type TicketCreateInput struct {
	Subject     string
	Description string
	Status      domain.TicketStatus
	Priority    domain.TicketPriority
	Category    string
	Channel     *domain.Channel
	CustomerID  int64
	AgentID     *int64
}

// TicketService owns ticket CRUD and the event timeline.
type TicketService struct {
	tickets    repository.TicketRepository
	dispatcher events.Dispatcher
	logger     *zap.Logger
	now        func() time.Time
}

// NewTicketService builds the service.
func NewTicketService(tickets repository.TicketRepository, dispatcher events.Dispatcher, logger *zap.Logger) *TicketService {
	return &TicketService{tickets: tickets, dispatcher: dispatcher, logger: logger, now: time.Now}
}

// List returns all tickets, newest first.
func (s *TicketService) List(ctx context.Context) ([]domain.Ticket, error) {
	tickets, err := s.tickets.List(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return tickets, nil
}

// Get returns one ticket with its full event timeline.
func (s *TicketService) Get(ctx context.Context, id int64) (*domain.Ticket, error) {
	ticket, err := s.tickets.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": id})
		}
		return nil, apperrors.NewStorageError(err)
	}
	return ticket, nil
}

// Create validates required fields, applies defaults and stores the
// ticket; a "created" timeline event is appended via the dispatcher.
func (s *TicketService) Create(ctx context.Context, input TicketCreateInput) (*domain.Ticket, error) {
	if strings.TrimSpace(input.Subject) == "" || input.CustomerID == 0 {
		return nil, apperrors.NewValidationError("missing required fields: subject and customer_id", nil)
	}
	if input.Status == "" {
		input.Status = domain.TicketStatusOpen
	}
	if input.Priority == "" {
		input.Priority = domain.TicketPriorityMedium
	}

	ticket := &domain.Ticket{
		Subject:     input.Subject,
		Description: input.Description,
		Status:      input.Status,
		Priority:    input.Priority,
		Category:    input.Category,
		Channel:     input.Channel,
		CustomerID:  input.CustomerID,
		AgentID:     input.AgentID,
	}
	if err := s.tickets.Create(ctx, ticket); err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	if err := s.dispatcher.Publish(ctx, events.Event{
		Type:      events.EventTicketCreated,
		TicketID:  ticket.ID,
		Actor:     "System",
		Timestamp: ticket.CreatedAt,
		Payload:   events.TicketCreatedPayload{Channel: ticket.Channel},
	}); err != nil {
		return nil, err
	}

	s.logger.Info("ticket created", zap.Int64("ticket_id", ticket.ID), zap.Int64("customer_id", ticket.CustomerID))
	return ticket, nil
}

// Patch applies a present-or-absent field update, always bumping
// updated_at. Status and assignment changes are reflected on the
// timeline through published events.
func (s *TicketService) Patch(ctx context.Context, id int64, patch repository.TicketPatch, actor string) error {
	if patch.IsEmpty() {
		return apperrors.NewValidationError("no fields provided for update", nil)
	}
	if actor == "" {
		actor = "System"
	}

	before, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	if err := s.tickets.Patch(ctx, id, patch); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewNotFound("ticket", map[string]any{"id": id})
		}
		return apperrors.NewStorageError(err)
	}

	now := s.now()
	if patch.Status != nil && *patch.Status != before.Status {
		if err := s.dispatcher.Publish(ctx, events.Event{
			Type:      events.EventTicketStatusChanged,
			TicketID:  id,
			Actor:     actor,
			Timestamp: now,
			Payload: events.TicketStatusChangedPayload{
				OldStatus: before.Status,
				NewStatus: *patch.Status,
			},
		}); err != nil {
			return err
		}
	}
	if patch.AgentID != nil && (before.AgentID == nil || *before.AgentID != *patch.AgentID) {
		if err := s.dispatcher.Publish(ctx, events.Event{
			Type:      events.EventTicketAssignmentChanged,
			TicketID:  id,
			Actor:     actor,
			Timestamp: now,
			Payload:   events.TicketAssignmentChangedPayload{AgentID: *patch.AgentID},
		}); err != nil {
			return err
		}
	}
	return nil
}

// ListEvents returns the ticket's timeline narrowed by the filter.
// Private entries are excluded unless the filter asks for them.
func (s *TicketService) ListEvents(ctx context.Context, id int64, filter domain.EventFilter) ([]domain.TicketEvent, error) {
	ticket, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	result := make([]domain.TicketEvent, 0, len(ticket.Events))
	for _, event := range ticket.Events {
		if filter.Matches(event) {
			result = append(result, event)
		}
	}
	return result, nil
}

// AppendNote adds a note event to the ticket's timeline; the only
// direct event mutation the console offers.
func (s *TicketService) AppendNote(ctx context.Context, id int64, author, content string, private bool) (*domain.TicketEvent, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return nil, apperrors.NewValidationError("note content required", nil)
	}
	if author == "" {
		author = "System"
	}

	event := &domain.TicketEvent{
		Date:    s.now(),
		Type:    domain.EventTypeNote,
		Content: content,
		Agent:   author,
		Private: private,
	}
	if err := s.tickets.AppendEvent(ctx, id, event); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("ticket", map[string]any{"id": id})
		}
		return nil, apperrors.NewStorageError(err)
	}
	return event, nil
}
