package service

import (
	"context"
	"time"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/repository"

	"github.com/stretchr/testify/mock"
)

type MockVehicleRepo struct {
	mock.Mock
}

func (m *MockVehicleRepo) FindAvailable(ctx context.Context, filter domain.VehicleFilter) ([]domain.Vehicle, error) {
	args := m.Called(ctx, filter)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepo) GetByID(ctx context.Context, vid int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, vid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepo) GetByIDForUpdate(ctx context.Context, vid int32) (*domain.Vehicle, error) {
	args := m.Called(ctx, vid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Vehicle), args.Error(1)
}

func (m *MockVehicleRepo) SetStatus(ctx context.Context, vid int32, status domain.VehicleStatus) error {
	args := m.Called(ctx, vid, status)
	return args.Error(0)
}

func (m *MockVehicleRepo) RecordReturn(ctx context.Context, vid int32, odometer float64, status domain.VehicleStatus) error {
	args := m.Called(ctx, vid, odometer, status)
	return args.Error(0)
}

type MockVehicleTypeRepo struct {
	mock.Mock
}

func (m *MockVehicleTypeRepo) GetByName(ctx context.Context, name string) (*domain.VehicleType, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehicleType), args.Error(1)
}

func (m *MockVehicleTypeRepo) GetByVehicle(ctx context.Context, vid int32) (*domain.VehicleType, error) {
	args := m.Called(ctx, vid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.VehicleType), args.Error(1)
}

type MockReservationRepo struct {
	mock.Mock
}

func (m *MockReservationRepo) Create(ctx context.Context, res *domain.Reservation) error {
	args := m.Called(ctx, res)
	return args.Error(0)
}

func (m *MockReservationRepo) GetByConfNo(ctx context.Context, confNo int32) (*domain.Reservation, error) {
	args := m.Called(ctx, confNo)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Reservation), args.Error(1)
}

type MockRentalRepo struct {
	mock.Mock
}

func (m *MockRentalRepo) Create(ctx context.Context, rt *domain.Rental) error {
	args := m.Called(ctx, rt)
	return args.Error(0)
}

func (m *MockRentalRepo) GetByID(ctx context.Context, rid int32) (*domain.Rental, error) {
	args := m.Called(ctx, rid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

func (m *MockRentalRepo) GetDetail(ctx context.Context, rid int32) (*domain.RentalDetail, error) {
	args := m.Called(ctx, rid)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RentalDetail), args.Error(1)
}

func (m *MockRentalRepo) Close(ctx context.Context, rid int32, returnedAt time.Time, endOdometer float64, fullTank bool, finalCost float64) error {
	args := m.Called(ctx, rid, returnedAt, endOdometer, fullTank, finalCost)
	return args.Error(0)
}

func (m *MockRentalRepo) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.RentalDetail, error) {
	args := m.Called(ctx, asOf)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.RentalDetail), args.Error(1)
}

type MockCustomerRepo struct {
	mock.Mock
}

func (m *MockCustomerRepo) Create(ctx context.Context, c *domain.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockCustomerRepo) GetByLicense(ctx context.Context, dlicense string) (*domain.Customer, error) {
	args := m.Called(ctx, dlicense)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}

type MockBranchRepo struct {
	mock.Mock
}

func (m *MockBranchRepo) Insert(ctx context.Context, b *domain.Branch) error {
	args := m.Called(ctx, b)
	return args.Error(0)
}

func (m *MockBranchRepo) Delete(ctx context.Context, id int32) (int64, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBranchRepo) UpdateName(ctx context.Context, id int32, name string) (int64, error) {
	args := m.Called(ctx, id, name)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockBranchRepo) List(ctx context.Context) ([]domain.Branch, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Branch), args.Error(1)
}

// MockStore hands out the mock repositories and runs WithinTx callbacks
// against itself, so tests observe the same calls a real transaction would.
type MockStore struct {
	VehicleRepo     MockVehicleRepo
	VehicleTypeRepo MockVehicleTypeRepo
	ReservationRepo MockReservationRepo
	RentalRepo      MockRentalRepo
	CustomerRepo    MockCustomerRepo
	BranchRepo      MockBranchRepo
}

func (m *MockStore) Vehicles() repository.VehicleRepository         { return &m.VehicleRepo }
func (m *MockStore) VehicleTypes() repository.VehicleTypeRepository { return &m.VehicleTypeRepo }
func (m *MockStore) Reservations() repository.ReservationRepository { return &m.ReservationRepo }
func (m *MockStore) Rentals() repository.RentalRepository           { return &m.RentalRepo }
func (m *MockStore) Customers() repository.CustomerRepository       { return &m.CustomerRepo }
func (m *MockStore) Branches() repository.BranchRepository          { return &m.BranchRepo }

func (m *MockStore) WithinTx(ctx context.Context, fn func(repository.Store) error) error {
	return fn(m)
}
