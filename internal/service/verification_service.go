package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/spec-kit/agent-console/internal/domain"
	"github.com/spec-kit/agent-console/internal/repository"
	"github.com/spec-kit/agent-console/internal/session"
	apperrors "github.com/spec-kit/agent-console/pkg/util/errorutil"
)

// SecurityQuestions is the fixed question list offered by the gate;
// a customer's stored answers are indexed by position in this list.
var SecurityQuestions = []string{
	"What is your mother's maiden name?",
	"What was the name of your first pet?",
	"What city were you born in?",
}

const verificationCodeLength = 6

// AttemptInput is the method-specific payload of a verification
// attempt; only the fields for the chosen method are read.
type AttemptInput struct {
	Method        domain.VerificationMethod
	PIN           string
	Code          string
	QuestionIndex int
	Answer        string
	SerialNumber  string
}

// VerificationService gates access to a customer profile: an operator
// must pass one verification method before the session unlocks.
// Failures are soft: the session stays unverified and the operator can
// retry; there is no lockout or attempt counter.
type VerificationService struct {
	sessions  session.Store
	customers repository.CustomerRepository
	products  repository.ProductRepository
	logger    *zap.Logger
	now       func() time.Time
}

// NewVerificationService builds the service.
func NewVerificationService(sessions session.Store, customers repository.CustomerRepository, products repository.ProductRepository, logger *zap.Logger) *VerificationService {
	return &VerificationService{
		sessions:  sessions,
		customers: customers,
		products:  products,
		logger:    logger,
		now:       time.Now,
	}
}

// Get loads a console session.
func (s *VerificationService) Get(ctx context.Context, sessionID string) (*domain.ConsoleSession, error) {
	consoleSession, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		if errors.Is(err, session.ErrNotFound) {
			return nil, apperrors.NewNotFound("session", map[string]any{"id": sessionID})
		}
		return nil, apperrors.NewStorageError(err)
	}
	return consoleSession, nil
}

// Clear drops the session; called when the operator goes back to the
// queue.
func (s *VerificationService) Clear(ctx context.Context, sessionID string) error {
	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return apperrors.NewStorageError(err)
	}
	return nil
}

// SendCode simulates dispatching a one-time code over the chosen
// channel and marks the session as awaiting that code. No code value
// is stored; any code of the right length passes the later attempt.
func (s *VerificationService) SendCode(ctx context.Context, sessionID string, method domain.VerificationMethod) (*domain.ConsoleSession, error) {
	if method != domain.MethodEmailCode && method != domain.MethodPhoneCode {
		return nil, apperrors.NewValidationError("send-code requires the email_code or phone_code method", nil)
	}

	consoleSession, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	consoleSession.CodeIssued = true
	consoleSession.CodeChannel = method
	if err := s.sessions.Put(ctx, consoleSession); err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	destination := consoleSession.Customer.Email
	if method == domain.MethodPhoneCode {
		destination = consoleSession.Customer.Phone
	}
	s.logger.Info("verification code dispatched",
		zap.String("session_id", sessionID),
		zap.String("channel", string(method)),
		zap.String("destination", destination),
	)
	return consoleSession, nil
}

// Attempt evaluates one credential for the session's customer. On
// acceptance the session becomes verified with a timestamp; on
// rejection the returned record carries a retryable reason and the
// session is left untouched.
func (s *VerificationService) Attempt(ctx context.Context, sessionID string, input AttemptInput) (*domain.VerificationData, error) {
	consoleSession, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	var reason string
	switch input.Method {
	case domain.MethodPIN:
		reason = s.checkPIN(input)
	case domain.MethodEmailCode, domain.MethodPhoneCode:
		reason = s.checkCode(consoleSession, input)
	case domain.MethodSecurityQuestion:
		reason, err = s.checkSecurityQuestion(ctx, consoleSession, input)
	case domain.MethodDeviceOwnership:
		reason, err = s.checkDeviceOwnership(ctx, consoleSession, input)
	default:
		return nil, apperrors.NewValidationError("unknown verification method", map[string]any{"method": input.Method})
	}
	if err != nil {
		return nil, err
	}

	if reason != "" {
		return &domain.VerificationData{Method: input.Method, Verified: false, Reason: reason}, nil
	}

	verifiedAt := s.now()
	consoleSession.Verified = true
	consoleSession.Method = input.Method
	consoleSession.VerifiedAt = &verifiedAt
	consoleSession.CodeIssued = false
	consoleSession.CodeChannel = ""
	if err := s.sessions.Put(ctx, consoleSession); err != nil {
		return nil, apperrors.NewStorageError(err)
	}

	s.logger.Info("customer verified",
		zap.String("session_id", sessionID),
		zap.Int64("customer_id", consoleSession.Customer.ID),
		zap.String("method", string(input.Method)),
	)
	return &domain.VerificationData{Method: input.Method, Verified: true, VerifiedAt: &verifiedAt}, nil
}

func (s *VerificationService) checkPIN(input AttemptInput) string {
	if strings.TrimSpace(input.PIN) == "" {
		return "please enter the customer verification PIN"
	}
	return ""
}

func (s *VerificationService) checkCode(consoleSession *domain.ConsoleSession, input AttemptInput) string {
	if !consoleSession.CodeIssued || consoleSession.CodeChannel != input.Method {
		return "no code has been sent for this method yet"
	}
	if len(strings.TrimSpace(input.Code)) != verificationCodeLength {
		return fmt.Sprintf("the verification code must be %d characters", verificationCodeLength)
	}
	return ""
}

func (s *VerificationService) checkSecurityQuestion(ctx context.Context, consoleSession *domain.ConsoleSession, input AttemptInput) (string, error) {
	customer, err := s.lookupCustomer(ctx, consoleSession.Customer.ID)
	if err != nil {
		return "", err
	}
	if input.QuestionIndex < 0 || input.QuestionIndex >= len(SecurityQuestions) ||
		input.QuestionIndex >= len(customer.SecurityAnswers) {
		return "", apperrors.NewValidationError("unknown security question", map[string]any{"index": input.QuestionIndex})
	}

	expected := strings.ToLower(strings.TrimSpace(customer.SecurityAnswers[input.QuestionIndex]))
	given := strings.ToLower(strings.TrimSpace(input.Answer))
	if given == "" || given != expected {
		return "the answer does not match our records", nil
	}
	return "", nil
}

func (s *VerificationService) checkDeviceOwnership(ctx context.Context, consoleSession *domain.ConsoleSession, input AttemptInput) (string, error) {
	products, err := s.products.ListByCustomer(ctx, consoleSession.Customer.ID)
	if err != nil {
		return "", apperrors.NewStorageError(err)
	}
	for _, product := range products {
		if product.SerialNumber == input.SerialNumber {
			return "", nil
		}
	}
	return "the serial number does not match any device on the account", nil
}

// StartCall begins the session's call clock; a no-op when a call is
// already running.
func (s *VerificationService) StartCall(ctx context.Context, sessionID string) (*domain.ConsoleSession, error) {
	consoleSession, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if consoleSession.CallStartedAt == nil {
		startedAt := s.now()
		consoleSession.CallStartedAt = &startedAt
		if err := s.sessions.Put(ctx, consoleSession); err != nil {
			return nil, apperrors.NewStorageError(err)
		}
	}
	return consoleSession, nil
}

// EndCall stops the call clock and reports the elapsed duration.
func (s *VerificationService) EndCall(ctx context.Context, sessionID string) (*domain.ConsoleSession, time.Duration, error) {
	consoleSession, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, 0, err
	}
	duration := consoleSession.CallDuration(s.now())
	if consoleSession.CallStartedAt != nil {
		consoleSession.CallStartedAt = nil
		if err := s.sessions.Put(ctx, consoleSession); err != nil {
			return nil, 0, apperrors.NewStorageError(err)
		}
	}
	return consoleSession, duration, nil
}

func (s *VerificationService) lookupCustomer(ctx context.Context, customerID int64) (*domain.Customer, error) {
	customer, err := s.customers.GetByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, apperrors.NewNotFound("customer", map[string]any{"id": customerID})
		}
		return nil, apperrors.NewStorageError(err)
	}
	return customer, nil
}
