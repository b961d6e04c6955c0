package service

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/agent-console/internal/domain"
	"github.com/spec-kit/agent-console/internal/repository"
	"github.com/spec-kit/agent-console/internal/session"
	apperrors "github.com/spec-kit/agent-console/pkg/util/errorutil"
)

// QueueSort selects the queue ordering.
type QueueSort string

const (
	SortWaitTime  QueueSort = "waitTime"
	SortPriority  QueueSort = "priority"
	SortCreatedAt QueueSort = "createdAt"
)

// QueueFilter is a conjunction of equality predicates plus a substring
// search; empty fields match everything.
type QueueFilter struct {
	Status   string
	Channel  string
	Category string
	Priority string
	Search   string
	SortBy   QueueSort
}

// QueueService presents the operator with an ordered, filtered view of
// pending customer requests and turns a selection into a console
// session.
type QueueService struct {
	requests repository.RequestRepository
	sessions session.Store
	logger   *zap.Logger
	now      func() time.Time
}

// NewQueueService builds the service.
func NewQueueService(requests repository.RequestRepository, sessions session.Store, logger *zap.Logger) *QueueService {
	return &QueueService{requests: requests, sessions: sessions, logger: logger, now: time.Now}
}

// List returns the requests passing every filter predicate, ordered by
// the selected sort key. Wait-time ordering uses real elapsed time
// since the request was created, longest waiting first.
func (s *QueueService) List(ctx context.Context, filter QueueFilter) ([]domain.CustomerRequest, error) {
	requests, err := s.requests.List(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	filtered := make([]domain.CustomerRequest, 0, len(requests))
	for _, request := range requests {
		if matchesFilter(request, filter) {
			filtered = append(filtered, request)
		}
	}

	switch filter.SortBy {
	case SortPriority:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].Priority.Rank() < filtered[j].Priority.Rank()
		})
	case SortCreatedAt:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.After(filtered[j].CreatedAt)
		})
	default:
		sort.SliceStable(filtered, func(i, j int) bool {
			return filtered[i].CreatedAt.Before(filtered[j].CreatedAt)
		})
	}

	return filtered, nil
}

// Select snapshots the request into a fresh console session and hands
// it to the verification gate.
func (s *QueueService) Select(ctx context.Context, agentID, requestID int64, viewType domain.ProfileViewType) (*domain.ConsoleSession, error) {
	request, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("request", map[string]any{"id": requestID})
		}
		return nil, apperrors.NewStorageError(err)
	}

	if viewType == "" {
		viewType = domain.ViewSupport
	}

	consoleSession := &domain.ConsoleSession{
		ID:      uuid.NewString(),
		AgentID: agentID,
		Customer: domain.CustomerSnapshot{
			ID:    request.CustomerID,
			Name:  request.CustomerName,
			Email: request.CustomerEmail,
			Phone: request.CustomerPhone,
		},
		Request: domain.RequestSnapshot{
			ID:          request.ID,
			Type:        request.RequestType,
			Description: request.Description,
			Channel:     request.Channel,
		},
		ViewType:  viewType,
		CreatedAt: s.now(),
	}

	if err := s.sessions.Put(ctx, consoleSession); err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	s.logger.Info("request selected",
		zap.Int64("request_id", request.ID),
		zap.Int64("customer_id", request.CustomerID),
		zap.String("session_id", consoleSession.ID),
	)
	return consoleSession, nil
}

func matchesFilter(request domain.CustomerRequest, filter QueueFilter) bool {
	if filter.Status != "" && !strings.EqualFold(string(request.Status), filter.Status) {
		return false
	}
	if filter.Channel != "" && !strings.EqualFold(string(request.Channel), filter.Channel) {
		return false
	}
	if filter.Category != "" && !strings.EqualFold(string(request.Category), filter.Category) {
		return false
	}
	if filter.Priority != "" && !strings.EqualFold(string(request.Priority), filter.Priority) {
		return false
	}
	if filter.Search != "" {
		query := strings.ToLower(filter.Search)
		haystacks := []string{
			request.CustomerName,
			request.CustomerEmail,
			request.CustomerPhone,
			request.RequestType,
			request.Description,
		}
		for _, haystack := range haystacks {
			if strings.Contains(strings.ToLower(haystack), query) {
				return true
			}
		}
		return false
	}
	return true
}
