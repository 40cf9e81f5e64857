package service

import (
	"context"
	"fmt"
	"time"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/logger"
	"vehiclerental-backend/internal/pricing"
	"vehiclerental-backend/internal/repository"
)

type rentalService struct {
	store repository.Store
}

func NewRentalService(store repository.Store) RentalService {
	return &rentalService{store: store}
}

// CreateReservation finds an available vehicle for the requested type,
// location and window, and books it. Among multiple candidates the one with
// the lowest vehicle id wins; FindAvailable orders by vid so the choice is
// deterministic.
func (s *rentalService) CreateReservation(ctx context.Context, params domain.ReservationParams) (int32, error) {
	var confNo int32
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		matches, err := tx.Vehicles().FindAvailable(ctx, domain.VehicleFilter{
			TypeName: params.VehicleTypeName,
			Location: params.Location,
			Window:   &params.Window,
		})
		if err != nil {
			return err
		}
		if len(matches) == 0 {
			return fmt.Errorf("create reservation: %w", domain.ErrNoAvailability)
		}

		res := &domain.Reservation{
			VehicleID:     matches[0].ID,
			DriverLicense: params.DriverLicense,
			Start:         params.Window.Start,
			End:           params.Window.End,
			Card:          params.Card,
		}
		if err := tx.Reservations().Create(ctx, res); err != nil {
			return err
		}
		confNo = res.ConfNo
		return nil
	})
	if err != nil {
		return 0, err
	}
	logger.Info("Reservation created", "conf_no", confNo)
	return confNo, nil
}

// CreateRentalFromReservation converts a reservation into an active rental.
// The vehicle row is locked for the duration of the transaction so the
// availability check and the insert cannot interleave with a competing
// rental; the UNIQUE constraint on rentals.conf_no backstops the race across
// sessions.
func (s *rentalService) CreateRentalFromReservation(ctx context.Context, confNo int32) (int32, error) {
	var rid int32
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		res, err := tx.Reservations().GetByConfNo(ctx, confNo)
		if err != nil {
			return err
		}

		vehicle, err := tx.Vehicles().GetByIDForUpdate(ctx, res.VehicleID)
		if err != nil {
			return err
		}
		if vehicle.Status != domain.VehicleStatusAvailable {
			return fmt.Errorf("vehicle %d is %s: %w", vehicle.ID, vehicle.Status, domain.ErrConflict)
		}

		rental := &domain.Rental{
			ConfNo:        confNo,
			StartOdometer: vehicle.Odometer,
		}
		if err := tx.Rentals().Create(ctx, rental); err != nil {
			return err
		}
		if err := tx.Vehicles().SetStatus(ctx, vehicle.ID, domain.VehicleStatusRented); err != nil {
			return err
		}
		rid = rental.ID
		return nil
	})
	if err != nil {
		return 0, err
	}
	logger.Info("Rental created", "rid", rid, "conf_no", confNo)
	return rid, nil
}

// CreateRentalWithoutReservation is the walk-up path: reserve and convert in
// sequence. Whichever step fails first decides the outcome; a conversion
// failure leaves the committed reservation behind, same as two separate calls.
func (s *rentalService) CreateRentalWithoutReservation(ctx context.Context, params domain.ReservationParams) (int32, error) {
	confNo, err := s.CreateReservation(ctx, params)
	if err != nil {
		return 0, err
	}
	return s.CreateRentalFromReservation(ctx, confNo)
}

// ReturnVehicle closes a rental exactly once, persists the return fields and
// final cost, releases the vehicle, and hands back the full cost breakdown.
func (s *rentalService) ReturnVehicle(ctx context.Context, rid int32, returnedAt time.Time, endOdometer float64, fullTank bool) (*domain.ReturnReceipt, error) {
	var receipt *domain.ReturnReceipt
	err := s.store.WithinTx(ctx, func(tx repository.Store) error {
		detail, err := tx.Rentals().GetDetail(ctx, rid)
		if err != nil {
			return err
		}
		if detail.ReturnedAt != nil {
			return fmt.Errorf("rental %d already returned: %w", rid, domain.ErrConflict)
		}

		rates, err := tx.VehicleTypes().GetByVehicle(ctx, detail.VehicleID)
		if err != nil {
			return err
		}

		receipt = pricing.ComputeReceipt(detail, rates, returnedAt, endOdometer, fullTank)

		if err := tx.Rentals().Close(ctx, rid, returnedAt, endOdometer, fullTank, receipt.TotalCost); err != nil {
			return err
		}
		return tx.Vehicles().RecordReturn(ctx, detail.VehicleID, endOdometer, domain.VehicleStatusAvailable)
	})
	if err != nil {
		return nil, err
	}
	logger.Info("Vehicle returned", "rid", rid, "total_cost", receipt.TotalCost)
	return receipt, nil
}

func (s *rentalService) GetRental(ctx context.Context, rid int32) (*domain.Rental, error) {
	return s.store.Rentals().GetByID(ctx, rid)
}
