package dto

import (
	"time"

	"github.com/spec-kit/agent-console/internal/domain"
)

// ProductResponse is one registered device.
type ProductResponse struct {
	ID           int64               `json:"id"`
	CustomerID   int64               `json:"customer_id"`
	Name         string              `json:"name"`
	Type         string              `json:"type"`
	SerialNumber string              `json:"serial_number"`
	Status       domain.DeviceStatus `json:"status"`
	Firmware     string              `json:"firmware"`
	Location     string              `json:"location"`
	LastActive   time.Time           `json:"last_active"`
}

// NewProductResponse maps a device.
func NewProductResponse(product domain.Product) ProductResponse {
	return ProductResponse{
		ID:           product.ID,
		CustomerID:   product.CustomerID,
		Name:         product.Name,
		Type:         product.Type,
		SerialNumber: product.SerialNumber,
		Status:       product.Status,
		Firmware:     product.Firmware,
		Location:     product.Location,
		LastActive:   product.LastActive,
	}
}
