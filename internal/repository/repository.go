package repository

import (
	"context"
	"database/sql"
	"time"

	"vehiclerental-backend/internal/domain"
)

// DBTX is satisfied by both *sql.DB and *sql.Tx so the same repository
// implementations serve autocommit reads and transactional writes.
type DBTX interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type VehicleRepository interface {
	FindAvailable(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error)
	GetByID(ctx context.Context, vid int32) (*domain.Vehicle, error)
	// GetByIDForUpdate locks the vehicle row for the remainder of the
	// enclosing transaction. Must only be called inside WithinTx.
	GetByIDForUpdate(ctx context.Context, vid int32) (*domain.Vehicle, error)
	SetStatus(ctx context.Context, vid int32, status domain.VehicleStatus) error
	RecordReturn(ctx context.Context, vid int32, odometer float64, status domain.VehicleStatus) error
}

type VehicleTypeRepository interface {
	GetByName(ctx context.Context, name string) (*domain.VehicleType, error)
	GetByVehicle(ctx context.Context, vid int32) (*domain.VehicleType, error)
}

type ReservationRepository interface {
	Create(ctx context.Context, res *domain.Reservation) error
	GetByConfNo(ctx context.Context, confNo int32) (*domain.Reservation, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rt *domain.Rental) error
	GetByID(ctx context.Context, rid int32) (*domain.Rental, error)
	GetDetail(ctx context.Context, rid int32) (*domain.RentalDetail, error)
	Close(ctx context.Context, rid int32, returnedAt time.Time, endOdometer float64, fullTank bool, finalCost float64) error
	ListOverdue(ctx context.Context, asOf time.Time) ([]domain.RentalDetail, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByLicense(ctx context.Context, dlicense string) (*domain.Customer, error)
}

type BranchRepository interface {
	Insert(ctx context.Context, b *domain.Branch) error
	// Delete and UpdateName report the affected row count so callers can
	// warn on absent ids instead of failing.
	Delete(ctx context.Context, id int32) (int64, error)
	UpdateName(ctx context.Context, id int32, name string) (int64, error)
	List(ctx context.Context) ([]domain.Branch, error)
}

// Store is the gateway to the relational backend. WithinTx runs fn against
// repositories bound to a single transaction; the transaction commits only
// when fn returns nil and is rolled back otherwise, so no statement's effect
// survives a later failure within the same logical operation.
type Store interface {
	Vehicles() VehicleRepository
	VehicleTypes() VehicleTypeRepository
	Reservations() ReservationRepository
	Rentals() RentalRepository
	Customers() CustomerRepository
	Branches() BranchRepository
	WithinTx(ctx context.Context, fn func(Store) error) error
}
