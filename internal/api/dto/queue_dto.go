package dto

import (
	"time"

	"github.com/spec-kit/agent-console/internal/domain"
)

// RequestResponse is one queue entry. WaitSeconds is real elapsed time
// since the request was created.
type RequestResponse struct {
	ID            int64                  `json:"id"`
	CustomerID    int64                  `json:"customer_id"`
	CustomerName  string                 `json:"customer_name"`
	CustomerEmail string                 `json:"customer_email"`
	CustomerPhone string                 `json:"customer_phone"`
	RequestType   string                 `json:"request_type"`
	Category      domain.IssueCategory   `json:"category"`
	Channel       domain.Channel         `json:"channel"`
	Status        domain.RequestStatus   `json:"status"`
	Priority      domain.RequestPriority `json:"priority"`
	CreatedAt     time.Time              `json:"created_at"`
	Description   string                 `json:"description"`
	WaitSeconds   int64                  `json:"wait_seconds"`
}

// NewRequestResponse maps a queue entry, computing its wait time.
func NewRequestResponse(request domain.CustomerRequest, now time.Time) RequestResponse {
	return RequestResponse{
		ID:            request.ID,
		CustomerID:    request.CustomerID,
		CustomerName:  request.CustomerName,
		CustomerEmail: request.CustomerEmail,
		CustomerPhone: request.CustomerPhone,
		RequestType:   request.RequestType,
		Category:      request.Category,
		Channel:       request.Channel,
		Status:        request.Status,
		Priority:      request.Priority,
		CreatedAt:     request.CreatedAt,
		Description:   request.Description,
		WaitSeconds:   int64(request.WaitTime(now).Seconds()),
	}
}

// SelectRequestRequest is the POST /api/requests/:id/select body.
type SelectRequestRequest struct {
	ViewType string `json:"view_type" validate:"omitempty,oneof=profile devices support"`
}
