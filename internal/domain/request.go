package domain

import "time"

// RequestStatus enumerates queue states for incoming requests.
type RequestStatus string

const (
	RequestStatusNew        RequestStatus = "New"
	RequestStatusInProgress RequestStatus = "In Progress"
	RequestStatusPending    RequestStatus = "Pending"
	RequestStatusEscalated  RequestStatus = "Escalated"
	RequestStatusResolved   RequestStatus = "Resolved"
)

// Channel identifies how the customer reached support.
type Channel string

const (
	ChannelChat   Channel = "chat"
	ChannelEmail  Channel = "email"
	ChannelPhone  Channel = "phone"
	ChannelSMS    Channel = "sms"
	ChannelVideo  Channel = "video"
	ChannelSocial Channel = "social"
)

// IssueCategory buckets requests by problem area.
type IssueCategory string

const (
	CategoryConnectivity IssueCategory = "connectivity"
	CategoryAccount      IssueCategory = "account"
	CategoryDelivery     IssueCategory = "delivery"
	CategoryDevice       IssueCategory = "device"
)

// RequestPriority enumerates queue urgency.
type RequestPriority string

const (
	PriorityLow    RequestPriority = "Low"
	PriorityMedium RequestPriority = "Medium"
	PriorityHigh   RequestPriority = "High"
	PriorityUrgent RequestPriority = "Urgent"
)

// Rank orders priorities for queue sorting; lower sorts first.
func (p RequestPriority) Rank() int {
	switch p {
	case PriorityUrgent:
		return 0
	case PriorityHigh:
		return 1
	case PriorityMedium:
		return 2
	case PriorityLow:
		return 3
	default:
		return 4
	}
}

// CustomerRequest is one entry in the operator's queue. The customer
// contact fields are denormalized so the queue renders without a join.
type CustomerRequest struct {
	ID            int64
	CustomerID    int64
	CustomerName  string
	CustomerEmail string
	CustomerPhone string
	RequestType   string
	Category      IssueCategory
	Channel       Channel
	Status        RequestStatus
	Priority      RequestPriority
	CreatedAt     time.Time
	Description   string
}

// WaitTime reports how long the request has been sitting in the queue.
func (r CustomerRequest) WaitTime(now time.Time) time.Duration {
	if now.Before(r.CreatedAt) {
		return 0
	}
	return now.Sub(r.CreatedAt)
}
