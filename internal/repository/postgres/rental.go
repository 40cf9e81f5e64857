package postgres

import (
	"context"
	"fmt"
	"time"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/repository"
)

type rentalRepository struct {
	db repository.DBTX
}

func NewRentalRepository(db repository.DBTX) repository.RentalRepository {
	return &rentalRepository{db: db}
}

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	// conf_no carries a UNIQUE constraint; a second rental against the same
	// reservation surfaces as ErrConflict.
	query := `INSERT INTO rentals (conf_no, start_odometer) VALUES ($1, $2) RETURNING rid`
	err := r.db.QueryRowContext(ctx, query, rt.ConfNo, rt.StartOdometer).Scan(&rt.ID)
	return translateErr("create rental", err)
}

func (r *rentalRepository) GetByID(ctx context.Context, rid int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := `SELECT rid, conf_no, start_odometer, return_timestamp, end_odometer, full_tank, final_cost
	          FROM rentals WHERE rid = $1`
	err := r.db.QueryRowContext(ctx, query, rid).
		Scan(&rt.ID, &rt.ConfNo, &rt.StartOdometer, &rt.ReturnedAt, &rt.EndOdometer, &rt.FullTank, &rt.FinalCost)
	if err != nil {
		return nil, translateErr("get rental", err)
	}
	return rt, nil
}

func (r *rentalRepository) GetDetail(ctx context.Context, rid int32) (*domain.RentalDetail, error) {
	d := &domain.RentalDetail{}
	query := `SELECT rent.rid, rent.conf_no, res.vid, rent.start_odometer, res.start_timestamp, res.end_timestamp, rent.return_timestamp
	          FROM rentals rent JOIN reservations res ON rent.conf_no = res.conf_no WHERE rent.rid = $1`
	err := r.db.QueryRowContext(ctx, query, rid).
		Scan(&d.RentalID, &d.ConfNo, &d.VehicleID, &d.StartOdometer, &d.PromisedStart, &d.PromisedEnd, &d.ReturnedAt)
	if err != nil {
		return nil, translateErr("get rental detail", err)
	}
	return d, nil
}

func (r *rentalRepository) Close(ctx context.Context, rid int32, returnedAt time.Time, endOdometer float64, fullTank bool, finalCost float64) error {
	query := `UPDATE rentals SET return_timestamp = $1, end_odometer = $2, full_tank = $3, final_cost = $4
	          WHERE rid = $5 AND return_timestamp IS NULL`
	res, err := r.db.ExecContext(ctx, query, returnedAt, endOdometer, fullTank, finalCost, rid)
	if err != nil {
		return translateErr("close rental", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("close rental: %w", domain.ErrConflict)
	}
	return nil
}

func (r *rentalRepository) ListOverdue(ctx context.Context, asOf time.Time) ([]domain.RentalDetail, error) {
	query := `SELECT rent.rid, rent.conf_no, res.vid, rent.start_odometer, res.start_timestamp, res.end_timestamp, rent.return_timestamp
	          FROM rentals rent JOIN reservations res ON rent.conf_no = res.conf_no
	          WHERE rent.return_timestamp IS NULL AND res.end_timestamp < $1
	          ORDER BY res.end_timestamp`
	rows, err := r.db.QueryContext(ctx, query, asOf)
	if err != nil {
		return nil, translateErr("list overdue rentals", err)
	}
	defer rows.Close()

	var details []domain.RentalDetail
	for rows.Next() {
		var d domain.RentalDetail
		if err := rows.Scan(&d.RentalID, &d.ConfNo, &d.VehicleID, &d.StartOdometer, &d.PromisedStart, &d.PromisedEnd, &d.ReturnedAt); err != nil {
			return nil, translateErr("scan overdue rental", err)
		}
		details = append(details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, translateErr("iterate overdue rentals", err)
	}
	return details, nil
}
