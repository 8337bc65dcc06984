package service

import (
	"context"

	"github.com/spec-kit/crm-service/internal/domain"
	"github.com/spec-kit/crm-service/internal/repository"
)

// CustomerService handles customer CRUD.
type CustomerService struct {
	customers repository.CustomerRepository
}

// NewCustomerService builds the service.
func NewCustomerService(customers repository.CustomerRepository) *CustomerService {
	return &CustomerService{customers: customers}
}

// List returns all customers.
func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.customers.List(ctx)
}

// Get returns a customer by id.
func (s *CustomerService) Get(ctx context.Context, id string) (*domain.Customer, error) {
	return s.customers.GetByID(ctx, id)
}

// Create stores a new customer.
func (s *CustomerService) Create(ctx context.Context, customer *domain.Customer) error {
	return s.customers.Create(ctx, customer)
}

// Update modifies an existing customer.
func (s *CustomerService) Update(ctx context.Context, customer *domain.Customer) error {
	return s.customers.Update(ctx, customer)
}

// Delete removes a customer.
func (s *CustomerService) Delete(ctx context.Context, id string) error {
	return s.customers.Delete(ctx, id)
}
