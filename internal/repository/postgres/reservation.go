package postgres

import (
	"context"

	"vehiclerental-backend/internal/domain"
	"vehiclerental-backend/internal/repository"
)

type reservationRepository struct {
	db repository.DBTX
}

func NewReservationRepository(db repository.DBTX) repository.ReservationRepository {
	return &reservationRepository{db: db}
}

func (r *reservationRepository) Create(ctx context.Context, res *domain.Reservation) error {
	query := `INSERT INTO reservations (vid, dlicense, start_timestamp, end_timestamp, card_name, card_no, exp_date)
	          VALUES ($1, $2, $3, $4, $5, $6, $7) RETURNING conf_no`
	err := r.db.QueryRowContext(ctx, query, res.VehicleID, res.DriverLicense, res.Start, res.End,
		res.Card.Name, res.Card.Number, res.Card.Expiry).Scan(&res.ConfNo)
	return translateErr("create reservation", err)
}

func (r *reservationRepository) GetByConfNo(ctx context.Context, confNo int32) (*domain.Reservation, error) {
	res := &domain.Reservation{}
	query := `SELECT conf_no, vid, dlicense, start_timestamp, end_timestamp, card_name, card_no, exp_date
	          FROM reservations WHERE conf_no = $1`
	err := r.db.QueryRowContext(ctx, query, confNo).
		Scan(&res.ConfNo, &res.VehicleID, &res.DriverLicense, &res.Start, &res.End,
			&res.Card.Name, &res.Card.Number, &res.Card.Expiry)
	if err != nil {
		return nil, translateErr("get reservation", err)
	}
	return res, nil
}
