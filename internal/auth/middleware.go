package auth

import (
	"errors"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/agent-console/internal/domain"
	"github.com/spec-kit/agent-console/internal/repository"
	apperrors "github.com/spec-kit/agent-console/pkg/util/errorutil"
)

const principalKey = "auth_principal"

// Principal is the authenticated console operator.
type Principal struct {
	Agent *domain.Agent
}

// Middleware validates bearer tokens and loads the agent principal.
// Only the console routes are guarded; the store API is open.
type Middleware struct {
	tokens *TokenManager
	agents repository.AgentRepository
}

// NewMiddleware constructs middleware.
func NewMiddleware(tokens *TokenManager, agents repository.AgentRepository) *Middleware {
	return &Middleware{tokens: tokens, agents: agents}
}

// Handle enforces authentication for protected routes.
func (m *Middleware) Handle(c *fiber.Ctx) error {
	authHeader := c.Get("Authorization")
	if authHeader == "" {
		return apperrors.NewUnauthorized("missing authorization header")
	}

	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return apperrors.NewUnauthorized("invalid authorization header")
	}

	claims, err := m.tokens.ParseToken(parts[1])
	if err != nil {
		return apperrors.NewUnauthorized("invalid token")
	}

	agent, err := m.agents.GetByID(c.Context(), claims.AgentID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperrors.NewUnauthorized("agent not found")
		}
		return err
	}

	c.Locals(principalKey, &Principal{Agent: agent})
	return c.Next()
}

// PrincipalFromContext retrieves the authenticated agent.
func PrincipalFromContext(c *fiber.Ctx) (*Principal, bool) {
	val := c.Locals(principalKey)
	if val == nil {
		return nil, false
	}
	principal, ok := val.(*Principal)
	return principal, ok
}
