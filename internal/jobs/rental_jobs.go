package jobs

import (
	"context"
	"time"

	"vehiclerental-backend/internal/logger"
)

// ReportOverdueRentals logs every open rental whose promised end has passed.
// Diagnostic only; the rental row is untouched until the vehicle comes back
// through return processing.
func (jr *JobRunner) ReportOverdueRentals() {
	jr.runWithRecovery("ReportOverdueRentals", func() {
		ctx := context.Background()

		overdue, err := jr.store.Rentals().ListOverdue(ctx, time.Now())
		if err != nil {
			logger.Error("Failed to list overdue rentals", "error", err)
			return
		}

		logger.Info("Overdue rentals", "count", len(overdue))
		for _, d := range overdue {
			logger.Warn("Rental past promised end",
				"rid", d.RentalID,
				"conf_no", d.ConfNo,
				"vid", d.VehicleID,
				"promised_end", d.PromisedEnd)
		}
	})
}
