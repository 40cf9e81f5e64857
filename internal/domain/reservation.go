package domain

import "time"

// PaymentCard is the card snapshot stored with a reservation.
type PaymentCard struct {
	Name   string    `json:"card_name"`
	Number string    `json:"card_no"`
	Expiry time.Time `json:"exp_date"`
}

// Reservation binds one vehicle to one customer for a promised window.
// Immutable once created; referenced by at most one rental.
type Reservation struct {
	ConfNo        int32       `json:"conf_no"`
	VehicleID     int32       `json:"vid"`
	DriverLicense string      `json:"dlicense"`
	Start         time.Time   `json:"start_timestamp"`
	End           time.Time   `json:"end_timestamp"`
	Card          PaymentCard `json:"card"`
}

// ReservationParams carries everything needed to open a reservation.
type ReservationParams struct {
	VehicleTypeName string      `json:"vtname"`
	Location        string      `json:"location"`
	DriverLicense   string      `json:"dlicense"`
	Window          Window      `json:"window"`
	Card            PaymentCard `json:"card"`
}
