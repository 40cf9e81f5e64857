package domain

import "time"

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "Available"
	VehicleStatusRented      VehicleStatus = "Rented"
	VehicleStatusMaintenance VehicleStatus = "Maintenance"
)

type Vehicle struct {
	ID       int32         `json:"vid"`
	License  string        `json:"vlicense"`
	Make     string        `json:"make"`
	Year     int32         `json:"year"`
	Color    string        `json:"color"`
	Odometer float64       `json:"odometer"`
	Status   VehicleStatus `json:"status"`
	TypeName string        `json:"vtname"`
	Location string        `json:"location"`
}

// VehicleType is the rate card for a class of vehicles. Read-only reference
// data as far as the rental flow is concerned.
type VehicleType struct {
	Name             string  `json:"vtname"`
	HourlyRate       float64 `json:"hourly_rate"`
	KiloRate         float64 `json:"kilo_rate"`
	KiloLimitPerHour float64 `json:"kilo_limit_per_hour"`
	TankRefillFee    float64 `json:"tank_refill_fee"`
}

// Window is a promised rental period: [Start, End).
type Window struct {
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
}

// VehicleFilter enumerates the optional availability-search predicates.
// Zero values mean the predicate is skipped.
type VehicleFilter struct {
	TypeName string
	Location string
	Window   *Window
}
