package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB

	vehicles     repository.VehicleRepository
	vehicleTypes repository.VehicleTypeRepository
	reservations repository.ReservationRepository
	rentals      repository.RentalRepository
	customers    repository.CustomerRepository
	branches     repository.BranchRepository
}

func NewStore(db *sql.DB) *Store {
	return newStore(db, db)
}

func newStore(db *sql.DB, q repository.DBTX) *Store {
	return &Store{
		db:           db,
		vehicles:     NewVehicleRepository(q),
		vehicleTypes: NewVehicleTypeRepository(q),
		reservations: NewReservationRepository(q),
		rentals:      NewRentalRepository(q),
		customers:    NewCustomerRepository(q),
		branches:     NewBranchRepository(q),
	}
}

func (s *Store) Vehicles() repository.VehicleRepository         { return s.vehicles }
func (s *Store) VehicleTypes() repository.VehicleTypeRepository { return s.vehicleTypes }
func (s *Store) Reservations() repository.ReservationRepository { return s.reservations }
func (s *Store) Rentals() repository.RentalRepository           { return s.rentals }
func (s *Store) Customers() repository.CustomerRepository       { return s.customers }
func (s *Store) Branches() repository.BranchRepository          { return s.branches }

// WithinTx runs fn against a transaction-bound copy of the store. Services
// call this once at the operation boundary; nesting is not supported.
func (s *Store) WithinTx(ctx context.Context, fn func(repository.Store) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", domain.ErrPersistence)
	}
	defer tx.Rollback()

	if err := fn(newStore(s.db, tx)); err != nil {
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit transaction: %v: %w", err, domain.ErrPersistence)
	}
	return nil
}

// translateErr maps driver faults onto the domain error taxonomy at the
// gateway boundary.
func translateErr(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, domain.ErrNotFound)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code.Name() == "unique_violation" {
		return fmt.Errorf("%s: %w", op, domain.ErrConflict)
	}
	return fmt.Errorf("%s: %v: %w", op, err, domain.ErrPersistence)
}
