package service

import (
	"context"
	"errors"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/agent-console/internal/auth"
	"github.com/spec-kit/agent-console/internal/domain"
	"github.com/spec-kit/agent-console/internal/repository"
	apperrors "github.com/spec-kit/agent-console/pkg/util/errorutil"
)

// AuthService authenticates console operators and issues their tokens.
type AuthService struct {
	agents repository.AgentRepository
	tokens *auth.TokenManager
	logger *zap.Logger
}

// NewAuthService builds the service.
func NewAuthService(agents repository.AgentRepository, tokens *auth.TokenManager, logger *zap.Logger) *AuthService {
	return &AuthService{agents: agents, tokens: tokens, logger: logger}
}

// LoginResult carries the signed token and the agent it belongs to.
type LoginResult struct {
	Token     string
	ExpiresAt time.Time
	Agent     *domain.Agent
}

// Login checks the operator's credentials and returns a signed token.
// Unknown emails and wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	agent, err := s.agents.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewUnauthorized("invalid credentials")
		}
		return nil, apperrors.NewStorageError(err)
	}

	if err := auth.ComparePassword(agent.PasswordHash, password); err != nil {
		return nil, apperrors.NewUnauthorized("invalid credentials")
	}

	token, expiresAt, err := s.tokens.GenerateToken(agent.ID, agent.Name)
	if err != nil {
		return nil, apperrors.NewInternalError(err)
	}

	s.logger.Info("agent logged in", zap.Int64("agent_id", agent.ID), zap.String("email", agent.Email))
	return &LoginResult{Token: token, ExpiresAt: expiresAt, Agent: agent}, nil
}
