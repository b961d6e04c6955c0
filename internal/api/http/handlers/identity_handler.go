package handlers

import (
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/agent-console/internal/api/dto"
)

// IdentityHandler serves the stub identity check. There is no lookup:
// presence of all three fields is the whole test.
type IdentityHandler struct{}

// NewIdentityHandler constructs handler.
func NewIdentityHandler() *IdentityHandler {
	return &IdentityHandler{}
}

// Verify handles POST /api/verify-identity.
func (h *IdentityHandler) Verify(c *fiber.Ctx) error {
	var req dto.VerifyIdentityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"verified": false,
			"message":  "invalid payload",
		})
	}

	if strings.TrimSpace(req.AccountNumber) == "" ||
		strings.TrimSpace(req.Email) == "" ||
		strings.TrimSpace(req.PIN) == "" {
		return c.Status(http.StatusBadRequest).JSON(fiber.Map{
			"verified": false,
			"message":  "accountNumber, email and pin are required",
		})
	}

	return c.JSON(fiber.Map{"verified": true})
}
