package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/agent-console/internal/api/dto"
	"github.com/spec-kit/agent-console/internal/service"
	apperrors "github.com/spec-kit/agent-console/pkg/util/errorutil"
)

// CustomersHandler serves customer reference data.
type CustomersHandler struct {
	customers *service.CustomerService
}

// NewCustomersHandler constructs handler.
func NewCustomersHandler(customers *service.CustomerService) *CustomersHandler {
	return &CustomersHandler{customers: customers}
}

// List handles GET /api/customers.
func (h *CustomersHandler) List(c *fiber.Ctx) error {
	customers, err := h.customers.List(c.UserContext())
	if err != nil {
		return err
	}

	resp := make([]dto.CustomerResponse, 0, len(customers))
	for i := range customers {
		resp = append(resp, dto.NewCustomerResponse(&customers[i]))
	}
	return c.JSON(resp)
}

// Get handles GET /api/customers/:id. A missing row answers 200 with a
// null body, matching the single-row fetch it maps to.
func (h *CustomersHandler) Get(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return apperrors.NewValidationError("customer id must be numeric", nil)
	}

	customer, err := h.customers.Get(c.UserContext(), int64(id))
	if err != nil {
		return err
	}
	if customer == nil {
		return c.JSON(nil)
	}
	return c.JSON(dto.NewCustomerResponse(customer))
}
