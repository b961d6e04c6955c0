package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/agent-console/internal/api/dto"
	"github.com/spec-kit/agent-console/internal/service"
	apperrors "github.com/spec-kit/agent-console/pkg/util/errorutil"
	"github.com/spec-kit/agent-console/pkg/validation"
)

// AgentsHandler exposes operator login.
type AgentsHandler struct {
	auth *service.AuthService
}

// NewAgentsHandler constructs handler.
func NewAgentsHandler(authService *service.AuthService) *AgentsHandler {
	return &AgentsHandler{auth: authService}
}

// Login handles POST /api/agents/login.
func (h *AgentsHandler) Login(c *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	result, err := h.auth.Login(c.UserContext(), req.Email, req.Password)
	if err != nil {
		return err
	}
	return c.JSON(dto.LoginResponse{
		Token:     result.Token,
		ExpiresAt: result.ExpiresAt,
		Agent:     dto.NewAgentResponse(result.Agent),
	})
}
