package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/SscSPs/customer_ledger_api/internal/apperrors"
	"github.com/SscSPs/customer_ledger_api/internal/core/domain"
	portsrepo "github.com/SscSPs/customer_ledger_api/internal/core/ports/repositories"
)

type customerRepository struct {
	store *Store
}

var _ portsrepo.CustomerRepositoryFacade = (*customerRepository)(nil)

func (r *customerRepository) SaveCustomer(_ context.Context, customer domain.Customer) (*domain.Customer, error) {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextCustomerID++
	customer.CustomerID = s.nextCustomerID
	customer.CreatedAt = s.now()
	s.customers[customer.CustomerID] = customer
	return &customer, nil
}

func (r *customerRepository) FindCustomerByID(_ context.Context, customerID int64) (*domain.Customer, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	c, ok := s.customers[customerID]
	if !ok {
		return nil, fmt.Errorf("%w: customer %d", apperrors.ErrNotFound, customerID)
	}
	return &c, nil
}

func (r *customerRepository) ListCustomers(_ context.Context) ([]domain.Customer, error) {
	s := r.store
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Customer, 0, len(s.customers))
	for _, c := range s.customers {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CustomerID < out[j].CustomerID })
	return out, nil
}

func (r *customerRepository) UpdateCustomer(_ context.Context, customer domain.Customer) error {
	s := r.store
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.customers[customer.CustomerID]
	if !ok {
		return fmt.Errorf("%w: customer %d", apperrors.ErrNotFound, customer.CustomerID)
	}
	customer.CreatedAt = existing.CreatedAt
	s.customers[customer.CustomerID] = customer
	return nil
}
