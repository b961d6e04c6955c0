package memory

import (
	"context"

	"github.com/spec-kit/agent-console/internal/domain"
	"github.com/spec-kit/agent-console/internal/repository"
)

// CustomerStore serves customer reference data from the in-memory tables.
type CustomerStore struct {
	store *Store
}

// NewCustomerRepository builds the in-memory customer repository.
func NewCustomerRepository(store *Store) *CustomerStore {
	return &CustomerStore{store: store}
}

func (r *CustomerStore) List(ctx context.Context) ([]domain.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	result := make([]domain.Customer, len(r.store.customers))
	copy(result, r.store.customers)
	return result, nil
}

func (r *CustomerStore) GetByID(ctx context.Context, id int64) (*domain.Customer, error) {
	r.store.mu.RLock()
	defer r.store.mu.RUnlock()

	for _, customer := range r.store.customers {
		if customer.ID == id {
			clone := customer
			return &clone, nil
		}
	}
	return nil, repository.ErrNotFound
}

// AddCustomer inserts reference data; used by seeding.
func (s *Store) AddCustomer(customer domain.Customer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.customers = append(s.customers, customer)
}
