package postgres

import (
	"context"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/repository"
)

type customerRepository struct {
	db repository.DBTX
}

func NewCustomerRepository(db repository.DBTX) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (dlicense, cellphone, name, address) VALUES ($1, $2, $3, $4)`
	_, err := r.db.ExecContext(ctx, query, c.DriverLicense, c.Cellphone, c.Name, c.Address)
	return translateErr("create customer", err)
}

func (r *customerRepository) GetByLicense(ctx context.Context, dlicense string) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT dlicense, cellphone, name, address FROM customers WHERE dlicense = $1`
	err := r.db.QueryRowContext(ctx, query, dlicense).
		Scan(&c.DriverLicense, &c.Cellphone, &c.Name, &c.Address)
	if err != nil {
		return nil, translateErr("get customer", err)
	}
	return c, nil
}
