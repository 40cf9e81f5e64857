package service

import (
	"context"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/repository"
)

type customerService struct {
	store repository.Store
}

func NewCustomerService(store repository.Store) CustomerService {
	return &customerService{store: store}
}

func (s *customerService) CreateAccount(ctx context.Context, customer *domain.Customer) error {
	// Duplicate license surfaces as ErrConflict from the gateway.
	return s.store.Customers().Create(ctx, customer)
}

func (s *customerService) GetCustomer(ctx context.Context, dlicense string) (*domain.Customer, error) {
	return s.store.Customers().GetByLicense(ctx, dlicense)
}
