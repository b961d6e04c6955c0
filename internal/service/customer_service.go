package service

import (
	"context"
	"errors"

	"github.com/spec-kit/agent-console/internal/domain"
	"github.com/spec-kit/agent-console/internal/repository"
	apperrors "github.com/spec-kit/agent-console/pkg/util/errorutil"
)

// CustomerService reads customer reference data and registered devices.
type CustomerService struct {
	customers repository.CustomerRepository
	products  repository.ProductRepository
}

// NewCustomerService builds the service.
func NewCustomerService(customers repository.CustomerRepository, products repository.ProductRepository) *CustomerService {
	return &CustomerService{customers: customers, products: products}
}

// List returns all customers.
func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	customers, err := s.customers.List(ctx)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return customers, nil
}

// Get returns one customer, or (nil, nil) when the id matches no row.
func (s *CustomerService) Get(ctx context.Context, id int64) (*domain.Customer, error) {
	customer, err := s.customers.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, nil
		}
		return nil, apperrors.NewStorageError(err)
	}
	return customer, nil
}

// ListProducts returns the devices registered to a customer; an unknown
// customer simply has no devices.
func (s *CustomerService) ListProducts(ctx context.Context, customerID int64) ([]domain.Product, error) {
	products, err := s.products.ListByCustomer(ctx, customerID)
	if err != nil {
		return nil, apperrors.NewStorageError(err)
	}
	return products, nil
}
