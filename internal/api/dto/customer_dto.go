package dto

import "github.com/spec-kit/agent-console/internal/domain"

// CustomerResponse is one customer row. Security answers never leave
// the server.
type CustomerResponse struct {
	ID          int64                `json:"id"`
	Name        string               `json:"name"`
	Email       string               `json:"email"`
	Phone       string               `json:"phone"`
	Plan        string               `json:"plan"`
	DeviceCount int                  `json:"device_count"`
	Status      domain.AccountStatus `json:"status"`
}

// NewCustomerResponse maps a customer.
func NewCustomerResponse(customer *domain.Customer) CustomerResponse {
	return CustomerResponse{
		ID:          customer.ID,
		Name:        customer.Name,
		Email:       customer.Email,
		Phone:       customer.Phone,
		Plan:        customer.Plan,
		DeviceCount: customer.DeviceCount,
		Status:      customer.Status,
	}
}
