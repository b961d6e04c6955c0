package handlers

import (
	"net/http"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/agent-console/internal/api/dto"
	"github.com/spec-kit/agent-console/internal/auth"
	"github.com/spec-kit/agent-console/internal/domain"
	"github.com/spec-kit/agent-console/internal/service"
	apperrors "github.com/spec-kit/agent-console/pkg/util/errorutil"
	"github.com/spec-kit/agent-console/pkg/validation"
)

// QueueHandler serves the operator's request queue.
type QueueHandler struct {
	queue *service.QueueService
}

// NewQueueHandler constructs handler.
func NewQueueHandler(queue *service.QueueService) *QueueHandler {
	return &QueueHandler{queue: queue}
}

// List handles GET /api/requests. Filters arrive as query params:
// status, channel, category, priority, search, sort_by.
func (h *QueueHandler) List(c *fiber.Ctx) error {
	filter := service.QueueFilter{
		Status:   c.Query("status"),
		Channel:  c.Query("channel"),
		Category: c.Query("category"),
		Priority: c.Query("priority"),
		Search:   c.Query("search"),
		SortBy:   service.QueueSort(c.Query("sort_by")),
	}

	requests, err := h.queue.List(c.UserContext(), filter)
	if err != nil {
		return err
	}

	now := time.Now()
	resp := make([]dto.RequestResponse, 0, len(requests))
	for _, request := range requests {
		resp = append(resp, dto.NewRequestResponse(request, now))
	}
	return c.JSON(resp)
}

// Select handles POST /api/requests/:id/select: it snapshots the
// request into a fresh console session for the verification gate.
func (h *QueueHandler) Select(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("request id must be numeric", nil)
	}

	var req dto.SelectRequestRequest
	if len(c.Body()) > 0 {
		if err := c.BodyParser(&req); err != nil {
			return apperrors.NewValidationError("invalid payload", nil)
		}
		if err := validation.Struct(req); err != nil {
			return err
		}
	}

	principal, ok := auth.PrincipalFromContext(c)
	if !ok || principal.Agent == nil {
		return apperrors.NewUnauthorized("agent principal missing")
	}

	session, err := h.queue.Select(c.UserContext(), principal.Agent.ID, int64(id), domain.ProfileViewType(req.ViewType))
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(dto.NewSessionResponse(session))
}
