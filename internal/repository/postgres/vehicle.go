package postgres

import (
	"context"
	"fmt"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/repository"
)

type vehicleRepository struct {
	db repository.DBTX
}

func NewVehicleRepository(db repository.DBTX) repository.VehicleRepository {
	return &vehicleRepository{db: db}
}

const vehicleColumns = `vid, vlicense, make, year, color, odometer, status, vtname, location`

func (r *vehicleRepository) FindAvailable(ctx context.Context, f domain.VehicleFilter) ([]domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE status = $1`
	args := []any{domain.VehicleStatusAvailable}
	argIdx := 2

	if f.TypeName != "" {
		query += fmt.Sprintf(" AND vtname = $%d", argIdx)
		args = append(args, f.TypeName)
		argIdx++
	}
	if f.Location != "" {
		query += fmt.Sprintf(" AND location = $%d", argIdx)
		args = append(args, f.Location)
		argIdx++
	}
	if f.Window != nil {
		// Open-interval overlap: an existing reservation blocks the vehicle
		// when existing.start < requested.end AND existing.end > requested.start.
		query += fmt.Sprintf(` AND NOT EXISTS (SELECT 1 FROM reservations res WHERE res.vid = vehicles.vid AND res.start_timestamp < $%d AND res.end_timestamp > $%d)`, argIdx, argIdx+1)
		args = append(args, f.Window.End, f.Window.Start)
		argIdx += 2
	}
	query += " ORDER BY vid"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, translateErr("find available vehicles", err)
	}
	defer rows.Close()

	var vehicles []domain.Vehicle
	for rows.Next() {
		var v domain.Vehicle
		if err := rows.Scan(&v.ID, &v.License, &v.Make, &v.Year, &v.Color, &v.Odometer, &v.Status, &v.TypeName, &v.Location); err != nil {
			return nil, translateErr("scan vehicle", err)
		}
		vehicles = append(vehicles, v)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr("iterate vehicles", err)
	}
	return vehicles, nil
}

func (r *vehicleRepository) GetByID(ctx context.Context, vid int32) (*domain.Vehicle, error) {
	return r.get(ctx, vid, false)
}

func (r *vehicleRepository) GetByIDForUpdate(ctx context.Context, vid int32) (*domain.Vehicle, error) {
	return r.get(ctx, vid, true)
}

func (r *vehicleRepository) get(ctx context.Context, vid int32, forUpdate bool) (*domain.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE vid = $1`
	if forUpdate {
		query += " FOR UPDATE"
	}
	v := &domain.Vehicle{}
	err := r.db.QueryRowContext(ctx, query, vid).
		Scan(&v.ID, &v.License, &v.Make, &v.Year, &v.Color, &v.Odometer, &v.Status, &v.TypeName, &v.Location)
	if err != nil {
		return nil, translateErr("get vehicle", err)
	}
	return v, nil
}

func (r *vehicleRepository) SetStatus(ctx context.Context, vid int32, status domain.VehicleStatus) error {
	query := `UPDATE vehicles SET status = $1 WHERE vid = $2`
	res, err := r.db.ExecContext(ctx, query, status, vid)
	if err != nil {
		return translateErr("set vehicle status", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("set vehicle status: %w", domain.ErrNotFound)
	}
	return nil
}

func (r *vehicleRepository) RecordReturn(ctx context.Context, vid int32, odometer float64, status domain.VehicleStatus) error {
	query := `UPDATE vehicles SET odometer = $1, status = $2 WHERE vid = $3`
	res, err := r.db.ExecContext(ctx, query, odometer, status, vid)
	if err != nil {
		return translateErr("record vehicle return", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("record vehicle return: %w", domain.ErrNotFound)
	}
	return nil
}
