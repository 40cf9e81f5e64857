package domain

import "time"

// Rental is an active or closed rental. The four return fields are either
// all nil (open) or all set (closed); return processing closes a rental
// exactly once.
type Rental struct {
	ID            int32      `json:"rid"`
	ConfNo        int32      `json:"conf_no"`
	StartOdometer float64    `json:"start_odometer"`
	ReturnedAt    *time.Time `json:"return_timestamp,omitempty"`
	EndOdometer   *float64   `json:"end_odometer,omitempty"`
	FullTank      *bool      `json:"full_tank,omitempty"`
	FinalCost     *float64   `json:"final_cost,omitempty"`
}

func (r *Rental) Closed() bool {
	return r.ReturnedAt != nil
}

// RentalDetail is a rental joined to its reservation, as loaded for return
// processing and overdue reporting.
type RentalDetail struct {
	RentalID      int32      `json:"rid"`
	ConfNo        int32      `json:"conf_no"`
	VehicleID     int32      `json:"vid"`
	StartOdometer float64    `json:"start_odometer"`
	PromisedStart time.Time  `json:"promised_start"`
	PromisedEnd   time.Time  `json:"promised_end"`
	ReturnedAt    *time.Time `json:"return_timestamp,omitempty"`
}

// ReturnReceipt is the informational cost breakdown handed back after a
// return. The rental row is the record of truth; the receipt just carries
// every intermediate value for display and audit.
type ReturnReceipt struct {
	ConfNo                  int32   `json:"conf_no"`
	RentalID                int32   `json:"rid"`
	HourlyRate              float64 `json:"hourly_rate"`
	HoursCharged            int32   `json:"hours_charged"`
	HourlySubtotal          float64 `json:"hourly_subtotal"`
	KiloRate                float64 `json:"kilo_rate"`
	KilometersOverAllowance float64 `json:"kilometers_over_allowance"`
	DistanceSubtotal        float64 `json:"distance_subtotal"`
	FuelSubtotal            float64 `json:"fuel_subtotal"`
	TotalCost               float64 `json:"total_cost"`
}
