package pricing

import (
	"testing"
	"time"

	"vehiclerental-backend/internal/domain"

	"github.com/stretchr/testify/assert"
)

var compact = &domain.VehicleType{
	Name:             "Compact",
	HourlyRate:       5,
	KiloRate:         0.2,
	KiloLimitPerHour: 20,
	TankRefillFee:    15,
}

func TestHoursCharged(t *testing.T) {
	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		end      time.Time
		returned time.Time
		expected int32
	}{
		{"On time", start.Add(3 * time.Hour), start.Add(3 * time.Hour), 3},
		{"Late return bills actual", start.Add(3 * time.Hour), start.Add(5 * time.Hour), 5},
		{"Early return still bills reserved", start.Add(3 * time.Hour), start.Add(1 * time.Hour), 3},
		{"Each term truncates before the max", start.Add(2*time.Hour + 59*time.Minute), start.Add(3*time.Hour + 1*time.Minute), 3},
		{"Truncated reserved term wins", start.Add(3*time.Hour + 45*time.Minute), start.Add(2 * time.Hour), 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, HoursCharged(start, tt.end, tt.returned))
		})
	}
}

func TestKilometersOverAllowance(t *testing.T) {
	t.Run("Under allowance yields the difference", func(t *testing.T) {
		assert.Equal(t, 10.0, KilometersOverAllowance(60, 50))
	})

	t.Run("Over allowance floors at zero", func(t *testing.T) {
		assert.Equal(t, 0.0, KilometersOverAllowance(60, 75))
	})
}

func TestComputeReceipt(t *testing.T) {
	start := time.Date(2024, 6, 1, 9, 0, 0, 0, time.UTC)
	detail := &domain.RentalDetail{
		RentalID:      9,
		ConfNo:        41,
		VehicleID:     3,
		StartOdometer: 1000,
		PromisedStart: start,
		PromisedEnd:   start.Add(3 * time.Hour),
	}

	t.Run("On-time return with full tank", func(t *testing.T) {
		receipt := ComputeReceipt(detail, compact, start.Add(3*time.Hour), 1050, true)

		assert.Equal(t, int32(3), receipt.HoursCharged)
		assert.Equal(t, 15.0, receipt.HourlySubtotal)
		assert.Equal(t, 10.0, receipt.KilometersOverAllowance) // 60 allowed - 50 used
		assert.Equal(t, 2.0, receipt.DistanceSubtotal)
		assert.Equal(t, 0.0, receipt.FuelSubtotal)
		assert.Equal(t, 17.0, receipt.TotalCost)
	})

	t.Run("Late return without full tank", func(t *testing.T) {
		receipt := ComputeReceipt(detail, compact, start.Add(5*time.Hour), 1050, false)

		assert.Equal(t, int32(5), receipt.HoursCharged)
		assert.Equal(t, 25.0, receipt.HourlySubtotal)
		assert.Equal(t, 50.0, receipt.KilometersOverAllowance) // 100 allowed - 50 used
		assert.Equal(t, 10.0, receipt.DistanceSubtotal)
		assert.Equal(t, 15.0, receipt.FuelSubtotal)
		assert.Equal(t, 50.0, receipt.TotalCost)
	})

	t.Run("Total always equals the sum of subtotals", func(t *testing.T) {
		returns := []struct {
			at       time.Time
			odometer float64
			fullTank bool
		}{
			{start.Add(3 * time.Hour), 1050, true},
			{start.Add(5 * time.Hour), 1200, false},
			{start.Add(1 * time.Hour), 1000, false},
		}
		for _, r := range returns {
			receipt := ComputeReceipt(detail, compact, r.at, r.odometer, r.fullTank)
			assert.Equal(t, receipt.HourlySubtotal+receipt.DistanceSubtotal+receipt.FuelSubtotal, receipt.TotalCost)
		}
	})

	t.Run("Receipt carries the identifiers and rates", func(t *testing.T) {
		receipt := ComputeReceipt(detail, compact, start.Add(3*time.Hour), 1050, true)
		assert.Equal(t, int32(41), receipt.ConfNo)
		assert.Equal(t, int32(9), receipt.RentalID)
		assert.Equal(t, 5.0, receipt.HourlyRate)
		assert.Equal(t, 0.2, receipt.KiloRate)
	})
}
