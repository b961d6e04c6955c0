package dto

import (
	"time"

	"github.com/spec-kit/agent-console/internal/domain"
)

// SendCodeRequest asks for a one-time code over a channel.
type SendCodeRequest struct {
	Method string `json:"method" validate:"required,oneof=email_code phone_code"`
}

// VerifyRequest is one verification attempt; only the fields of the
// chosen method are read.
type VerifyRequest struct {
	Method        string `json:"method" validate:"required,oneof=pin email_code phone_code security_question device_ownership"`
	PIN           string `json:"pin"`
	Code          string `json:"code"`
	QuestionIndex int    `json:"question_index"`
	Answer        string `json:"answer"`
	SerialNumber  string `json:"serial_number"`
}

// SessionResponse is the operator's console session.
type SessionResponse struct {
	ID         string                    `json:"id"`
	AgentID    int64                     `json:"agent_id"`
	Customer   domain.CustomerSnapshot   `json:"customer"`
	Request    domain.RequestSnapshot    `json:"request"`
	ViewType   domain.ProfileViewType    `json:"view_type"`
	CodeIssued bool                      `json:"code_issued"`
	Verified   bool                      `json:"verified"`
	Method     domain.VerificationMethod `json:"method,omitempty"`
	VerifiedAt *time.Time                `json:"verified_at,omitempty"`
	CreatedAt  time.Time                 `json:"created_at"`
}

// NewSessionResponse maps a console session.
func NewSessionResponse(s *domain.ConsoleSession) SessionResponse {
	return SessionResponse{
		ID:         s.ID,
		AgentID:    s.AgentID,
		Customer:   s.Customer,
		Request:    s.Request,
		ViewType:   s.ViewType,
		CodeIssued: s.CodeIssued,
		Verified:   s.Verified,
		Method:     s.Method,
		VerifiedAt: s.VerifiedAt,
		CreatedAt:  s.CreatedAt,
	}
}

// CallResponse reports the call clock after a start or stop.
type CallResponse struct {
	SessionID       string     `json:"session_id"`
	CallStartedAt   *time.Time `json:"call_started_at,omitempty"`
	DurationSeconds int64      `json:"duration_seconds"`
}
