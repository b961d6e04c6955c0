package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/agent-console/internal/api/dto"
	"github.com/spec-kit/agent-console/internal/service"
	apperrors "github.com/spec-kit/agent-console/pkg/util/errorutil"
	"github.com/spec-kit/agent-console/pkg/validation"
)

// ChatHandler serves a customer's chat history.
type ChatHandler struct {
	chat *service.ChatService
}

// NewChatHandler constructs handler.
func NewChatHandler(chat *service.ChatService) *ChatHandler {
	return &ChatHandler{chat: chat}
}

// History handles GET /api/customers/:id/chat.
func (h *ChatHandler) History(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("customer id must be numeric", nil)
	}

	messages, err := h.chat.History(c.UserContext(), int64(id))
	if err != nil {
		return err
	}

	resp := make([]dto.ChatMessageResponse, 0, len(messages))
	for _, msg := range messages {
		resp = append(resp, dto.NewChatMessageResponse(msg))
	}
	return c.JSON(resp)
}

// Post handles POST /api/chat/message and answers {id}.
func (h *ChatHandler) Post(c *fiber.Ctx) error {
	var req dto.PostChatMessageRequest
	if err := c.BodyParser(&req); err != nil {
		return apperrors.NewValidationError("invalid payload", nil)
	}
	if err := validation.Struct(req); err != nil {
		return err
	}

	msg, err := h.chat.PostMessage(c.UserContext(), req.CustomerID, req.Message)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"id": msg.ID})
}
