package memory

import (
	"context"

	"github.com/spec-kit/agent-console/internal/domain"
)

// ProductStore serves device rows from the in-memory tables.
type ProductStore struct {
	store *Store
}

// NewProductRepository builds the in-memory product repository.
func NewProductRepository(store *Store) *ProductStore {
	return &ProductStore{store: store}
}

func (r *ProductStore) ListByCustomer(ctx context.Context, customerID int64) ([]domain.Product, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	var result []domain.Product
	for _, product := range r.store.products {
		if product.CustomerID == customerID {
			result = append(result, product)
		}
	}
	return result, nil
}

// AddProduct inserts a device row; used by seeding.
func (s *Store) AddProduct(product domain.Product) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, product)
}
