package postgres

import (
	"context"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/repository"
)

type vehicleTypeRepository struct {
	db repository.DBTX
}

func NewVehicleTypeRepository(db repository.DBTX) repository.VehicleTypeRepository {
	return &vehicleTypeRepository{db: db}
}

func (r *vehicleTypeRepository) GetByName(ctx context.Context, name string) (*domain.VehicleType, error) {
	vt := &domain.VehicleType{}
	query := `SELECT vtname, hourly_rate, kilo_rate, kilo_limit_per_hour, tank_refill_fee FROM vehicle_types WHERE vtname = $1`
	err := r.db.QueryRowContext(ctx, query, name).
		Scan(&vt.Name, &vt.HourlyRate, &vt.KiloRate, &vt.KiloLimitPerHour, &vt.TankRefillFee)
	if err != nil {
		return nil, translateErr("get vehicle type", err)
	}
	return vt, nil
}

// GetByVehicle resolves the rate card through the vehicle's type name.
func (r *vehicleTypeRepository) GetByVehicle(ctx context.Context, vid int32) (*domain.VehicleType, error) {
	vt := &domain.VehicleType{}
	query := `SELECT vt.vtname, vt.hourly_rate, vt.kilo_rate, vt.kilo_limit_per_hour, vt.tank_refill_fee
	          FROM vehicles v JOIN vehicle_types vt ON v.vtname = vt.vtname WHERE v.vid = $1`
	err := r.db.QueryRowContext(ctx, query, vid).
		Scan(&vt.Name, &vt.HourlyRate, &vt.KiloRate, &vt.KiloLimitPerHour, &vt.TankRefillFee)
	if err != nil {
		return nil, translateErr("get vehicle rate card", err)
	}
	return vt, nil
}
