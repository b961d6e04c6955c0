package domain

import "time"

// VerificationMethod is one of the credential types an operator can use
// to gate access to a customer profile.
type VerificationMethod string

const (
	MethodPIN              VerificationMethod = "pin"
	MethodEmailCode        VerificationMethod = "email_code"
	MethodPhoneCode        VerificationMethod = "phone_code"
	MethodSecurityQuestion VerificationMethod = "security_question"
	MethodDeviceOwnership  VerificationMethod = "device_ownership"
)

// ProfileViewType selects which tab the profile view opens on.
type ProfileViewType string

const (
	ViewProfile ProfileViewType = "profile"
	ViewDevices ProfileViewType = "devices"
	ViewSupport ProfileViewType = "support"
)

// CustomerSnapshot carries the contact data captured when a request is
// picked from the queue.
type CustomerSnapshot struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Phone string `json:"phone"`
}

// RequestSnapshot carries the request metadata captured at selection.
type RequestSnapshot struct {
	ID          int64   `json:"id"`
	Type        string  `json:"type"`
	Description string  `json:"description"`
	Channel     Channel `json:"channel"`
}

// VerificationData records the outcome of a verification attempt.
type VerificationData struct {
	Method     VerificationMethod `json:"method"`
	Verified   bool               `json:"verified"`
	VerifiedAt *time.Time         `json:"verified_at,omitempty"`
	Reason     string             `json:"reason,omitempty"`
}

// ConsoleSession is the operator's working state for one selected
// request: the snapshot taken from the queue, the verification gate
// state, and the active-call clock. It replaces the browser-local
// session blobs of the previous console with typed server-side state.
type ConsoleSession struct {
	ID            string             `json:"id"`
	AgentID       int64              `json:"agent_id"`
	Customer      CustomerSnapshot   `json:"customer"`
	Request       RequestSnapshot    `json:"request"`
	ViewType      ProfileViewType    `json:"view_type"`
	CodeIssued    bool               `json:"code_issued"`
	CodeChannel   VerificationMethod `json:"code_channel,omitempty"`
	Verified      bool               `json:"verified"`
	Method        VerificationMethod `json:"method,omitempty"`
	VerifiedAt    *time.Time         `json:"verified_at,omitempty"`
	CallStartedAt *time.Time         `json:"call_started_at,omitempty"`
	CreatedAt     time.Time          `json:"created_at"`
}

// CallDuration reports elapsed time on the active call, zero when no
// call is running.
func (s *ConsoleSession) CallDuration(now time.Time) time.Duration {
	if s.CallStartedAt == nil || now.Before(*s.CallStartedAt) {
		return 0
	}
	return now.Sub(*s.CallStartedAt)
}
