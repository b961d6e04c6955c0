package dto

import (
	"time"

	"github.com/spec-kit/agent-console/internal/domain"
)

// LoginRequest is the POST /api/agents/login body.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// AgentResponse is the public view of an operator.
type AgentResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginResponse carries the signed token.
type LoginResponse struct {
	Token     string        `json:"token"`
	ExpiresAt time.Time     `json:"expires_at"`
	Agent     AgentResponse `json:"agent"`
}

// NewAgentResponse maps an operator.
func NewAgentResponse(agent *domain.Agent) AgentResponse {
	return AgentResponse{ID: agent.ID, Name: agent.Name, Email: agent.Email}
}
