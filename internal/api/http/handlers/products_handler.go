package handlers

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/agent-console/internal/api/dto"
	"github.com/spec-kit/agent-console/internal/service"
	apperrors "github.com/spec-kit/agent-console/pkg/util/errorutil"
)

// ProductsHandler serves the devices registered to a customer.
type ProductsHandler struct {
	customers *service.CustomerService
}

// NewProductsHandler constructs handler.
func NewProductsHandler(customers *service.CustomerService) *ProductsHandler {
	return &ProductsHandler{customers: customers}
}

// ListByCustomer handles GET /api/products/:customerId.
func (h *ProductsHandler) ListByCustomer(c *fiber.Ctx) error {
	customerID, err := c.ParamsInt("customerId")
	if err != nil {
		return apperrors.NewValidationError("customer id must be numeric", nil)
	}

	products, err := h.customers.ListProducts(c.UserContext(), int64(customerID))
	if err != nil {
		return err
	}

	resp := make([]dto.ProductResponse, 0, len(products))
	for _, product := range products {
		resp = append(resp, dto.NewProductResponse(product))
	}
	return c.JSON(resp)
}
