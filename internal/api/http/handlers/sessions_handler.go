package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/agent-console/internal/api/dto"
	"github.com/spec-kit/agent-console/internal/domain"
	"github.com/spec-kit/agent-console/internal/service"
	apperrors "github.com/spec-kit/agent-console/pkg/util/errorutil"
	"github.com/spec-kit/agent-console/pkg/validation"
)

// SessionsHandler exposes the verification gate and the call clock on
// a console session.
type SessionsHandler struct {
	verification *service.VerificationService
}

// NewSessionsHandler constructs handler.
func NewSessionsHandler(verification *service.VerificationService) *SessionsHandler {
	return &SessionsHandler{verification: verification}
}

// Get handles GET /api/sessions/:id.
func (h *SessionsHandler) Get(c *fiber.Ctx) error {
	session, err := h.verification.Get(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSessionResponse(session))
}

// Delete handles DELETE /api/sessions/:id; called when the operator
// returns to the queue.
func (h *SessionsHandler) Delete(c *fiber.Ctx) error {
	if err := h.verification.Clear(c.UserContext(), c.Params("id")); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "Session cleared"})
}

// SendCode handles POST /api/sessions/:id/send-code.
func (h *SessionsHandler) SendCode(c *fiber.Ctx) error {
	var req dto.SendCodeRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	session, err := h.verification.SendCode(c.UserContext(), c.Params("id"), domain.VerificationMethod(req.Method))
	if err != nil {
		return err
	}
	return c.JSON(dto.NewSessionResponse(session))
}

// Verify handles POST /api/sessions/:id/verify: one verification
// attempt. Both outcomes answer 200; a rejection carries its reason.
func (h *SessionsHandler) Verify(c *fiber.Ctx) error {
	var req dto.VerifyRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	result, err := h.verification.Attempt(c.UserContext(), c.Params("id"), service.AttemptInput{
		Method:        domain.VerificationMethod(req.Method),
		PIN:           req.PIN,
		Code:          req.Code,
		QuestionIndex: req.QuestionIndex,
		Answer:        req.Answer,
		SerialNumber:  req.SerialNumber,
	})
	if err != nil {
		return err
	}
	return c.JSON(result)
}

// StartCall handles POST /api/sessions/:id/call.
func (h *SessionsHandler) StartCall(c *fiber.Ctx) error {
	session, err := h.verification.StartCall(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.CallResponse{
		SessionID:     session.ID,
		CallStartedAt: session.CallStartedAt,
	})
}

// EndCall handles DELETE /api/sessions/:id/call and reports the
// elapsed call duration.
func (h *SessionsHandler) EndCall(c *fiber.Ctx) error {
	session, duration, err := h.verification.EndCall(c.UserContext(), c.Params("id"))
	if err != nil {
		return err
	}
	return c.JSON(dto.CallResponse{
		SessionID:       session.ID,
		DurationSeconds: int64(duration.Seconds()),
	})
}
