package service

import (
	"context"
	"time"

	"vehiclerental-backend/internal/domain"
)

type VehicleService interface {
	// FindVehicles returns available vehicles matching the optional filters,
	// ordered by vehicle id. An empty result is not an error.
	FindVehicles(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error)
}

type RentalService interface {
	CreateReservation(ctx context.Context, params domain.ReservationParams) (int32, error)
	CreateRentalFromReservation(ctx context.Context, confNo int32) (int32, error)
	CreateRentalWithoutReservation(ctx context.Context, params domain.ReservationParams) (int32, error)
	ReturnVehicle(ctx context.Context, rid int32, returnedAt time.Time, endOdometer float64, fullTank bool) (*domain.ReturnReceipt, error)
	GetRental(ctx context.Context, rid int32) (*domain.Rental, error)
}

type CustomerService interface {
	CreateAccount(ctx context.Context, customer *domain.Customer) error
	GetCustomer(ctx context.Context, dlicense string) (*domain.Customer, error)
}

type BranchService interface {
	AddBranch(ctx context.Context, branch *domain.Branch) error
	RemoveBranch(ctx context.Context, id int32) error
	RenameBranch(ctx context.Context, id int32, name string) error
	ListBranches(ctx context.Context) ([]domain.Branch, error)
}
