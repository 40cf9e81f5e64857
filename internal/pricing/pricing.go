package pricing

import (
	"math"
	"time"

	"vehiclerental-backend/internal/domain"
)

// HoursCharged returns the billable hour count for a rental. The customer
// pays for at least the reserved duration, and for the full actual duration
// when the vehicle comes back late. Each term is truncated toward zero to
// whole hours before the comparison.
func HoursCharged(promisedStart, promisedEnd, returnedAt time.Time) int32 {
	reserved := int32(promisedEnd.Sub(promisedStart) / time.Hour)
	actual := int32(returnedAt.Sub(promisedStart) / time.Hour)
	if actual > reserved {
		return actual
	}
	return reserved
}

// KilometersOverAllowance is the distance quantity billed at the per-kilometer
// rate: max(0, allowed - used). As written it is positive only when the
// vehicle stayed UNDER its allowance, so the term prices under-use rather
// than overage.
// TODO: confirm the sign of the allowance term with billing; flipping it to
// max(0, used - allowed) changes every receipt and needs a rate-card review.
func KilometersOverAllowance(kilometersAllowed, kilometersUsed float64) float64 {
	return math.Max(0, kilometersAllowed-kilometersUsed)
}

// ComputeReceipt builds the full cost breakdown for a vehicle return.
// Invariant: TotalCost == HourlySubtotal + DistanceSubtotal + FuelSubtotal.
func ComputeReceipt(detail *domain.RentalDetail, rates *domain.VehicleType, returnedAt time.Time, endOdometer float64, fullTank bool) *domain.ReturnReceipt {
	hours := HoursCharged(detail.PromisedStart, detail.PromisedEnd, returnedAt)
	kilometersAllowed := float64(hours) * rates.KiloLimitPerHour
	kilometersUsed := endOdometer - detail.StartOdometer
	kilometersOver := KilometersOverAllowance(kilometersAllowed, kilometersUsed)

	hourlySubtotal := float64(hours) * rates.HourlyRate
	distanceSubtotal := kilometersOver * rates.KiloRate
	fuelSubtotal := rates.TankRefillFee
	if fullTank {
		fuelSubtotal = 0
	}

	return &domain.ReturnReceipt{
		ConfNo:                  detail.ConfNo,
		RentalID:                detail.RentalID,
		HourlyRate:              rates.HourlyRate,
		HoursCharged:            hours,
		HourlySubtotal:          hourlySubtotal,
		KiloRate:                rates.KiloRate,
		KilometersOverAllowance: kilometersOver,
		DistanceSubtotal:        distanceSubtotal,
		FuelSubtotal:            fuelSubtotal,
		TotalCost:               hourlySubtotal + distanceSubtotal + fuelSubtotal,
	}
}
