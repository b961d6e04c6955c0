package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/agent-console/internal/api/dto"
	"github.com/spec-kit/agent-console/internal/auth"
	"github.com/spec-kit/agent-console/internal/domain"
	"github.com/spec-kit/agent-console/internal/service"
	apperrors "github.com/spec-kit/agent-console/pkg/util/errorutil"
	"github.com/spec-kit/agent-console/pkg/validation"
)

// TicketsHandler exposes ticket CRUD and the event timeline.
type TicketsHandler struct {
	tickets *service.TicketService
}

// NewTicketsHandler constructs handler.
func NewTicketsHandler(tickets *service.TicketService) *TicketsHandler {
	return &TicketsHandler{tickets: tickets}
}

// List handles GET /api/tickets, newest first.
func (h *TicketsHandler) List(c *fiber.Ctx) error {
	tickets, err := h.tickets.List(c.UserContext())
	if err != nil {
		return err
	}

	resp := make([]dto.TicketResponse, 0, len(tickets))
	for i := range tickets {
		resp = append(resp, dto.NewTicketResponse(&tickets[i]))
	}
	return c.JSON(resp)
}

// Get handles GET /api/tickets/:id.
func (h *TicketsHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("ticket id must be numeric", nil)
	}

	ticket, err := h.tickets.Get(c.UserContext(), int64(id))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewTicketResponse(ticket))
}

// Create handles POST /api/tickets and answers 201 {id, message}.
func (h *TicketsHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if strings.TrimSpace(req.Subject) == "" || req.CustomerID == 0 {
		return apperrors.NewValidationError("missing required fields: subject and customer_id", nil)
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	input := service.TicketCreateInput{
		Subject:     req.Subject,
		Description: req.Description,
		Status:      domain.TicketStatus(req.Status),
		Priority:    domain.TicketPriority(req.Priority),
		CustomerID:  req.CustomerID,
		AgentID:     req.AgentID,
	}
	if req.Channel != nil {
		channel := domain.Channel(*req.Channel)
		input.Channel = &channel
	}

	ticket, err := h.tickets.Create(c.UserContext(), input)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"id":      ticket.ID,
		"message": "Ticket created successfully",
	})
}

// Update handles PUT /api/tickets/:id and answers {message}.
func (h *TicketsHandler) Update(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("ticket id must be numeric", nil)
	}

	var req dto.UpdateTicketRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	if err := h.tickets.Patch(c.UserContext(), int64(id), req.ToPatch(), actorName(c)); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Ticket updated successfully"})
}

// ListEvents handles GET /api/tickets/:id/events. Query params: type
// narrows to one event type, include_private reveals private notes.
func (h *TicketsHandler) ListEvents(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("ticket id must be numeric", nil)
	}

	filter := domain.EventFilter{
		IncludePrivate: c.QueryBool("include_private"),
	}
	if typeParam := c.Query("type"); typeParam != "" {
		eventType := domain.TicketEventType(typeParam)
		filter.Type = &eventType
	}

	events, err := h.tickets.ListEvents(c.UserContext(), int64(id), filter)
	if err != nil {
		return err
	}

	resp := make([]dto.TicketEventResponse, 0, len(events))
	for _, event := range events {
		resp = append(resp, dto.NewTicketEventResponse(event))
	}
	return c.JSON(resp)
}

// AppendNote handles POST /api/tickets/:id/notes.
func (h *TicketsHandler) AppendNote(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("ticket id must be numeric", nil)
	}

	var req dto.CreateNoteRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	event, err := h.tickets.AppendNote(c.UserContext(), int64(id), actorName(c), req.Content, req.Private)
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewTicketEventResponse(*event))
}

// actorName resolves the acting operator for timeline attribution; the
// store endpoints are open so a principal may be absent.
func actorName(c *fiber.Ctx) string {
	if principal, ok := auth.PrincipalFromContext(c); ok && principal.Agent != nil {
		return principal.Agent.Name
	}
	return "System"
}
