package jobs

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"fulfillment/internal/core/application/usecases/queries"
)

// OverdueDeliveryJob watches for deliveries that left with a driver but
// were never finalized. It runs every minute, is read-only, and surfaces
// overdue records through the log so operations can chase them.
type OverdueDeliveryJob struct {
	handler   queries.GetOverdueDeliveriesQueryHandler
	olderThan time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOverdueDeliveryJob creates the overdue-delivery watchdog. olderThan
// is how long a delivery may stay Out for Delivery before it is flagged.
func NewOverdueDeliveryJob(
	handler queries.GetOverdueDeliveriesQueryHandler,
	olderThan time.Duration,
	logger *slog.Logger,
) *OverdueDeliveryJob {
	return &OverdueDeliveryJob{
		handler:   handler,
		olderThan: olderThan,
		cron:      cron.New(),
		logger:    logger.With("component", "overdue_delivery_job"),
	}
}

// Start begins the watchdog on a once-per-minute schedule.
func (j *OverdueDeliveryJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", func() {
		ctx := context.Background()

		query, err := queries.NewGetOverdueDeliveriesQuery(j.olderThan)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue delivery job misconfigured", "error", err)
			return
		}

		overdue, err := j.handler.Handle(ctx, query)
		if err != nil {
			j.logger.ErrorContext(ctx, "Overdue delivery job failed", "error", err)
			return
		}

		for _, d := range overdue {
			j.logger.WarnContext(ctx, "Delivery overdue",
				"delivery_id", d.ID,
				"order_id", d.OrderID,
				"tracking_ref", d.TrackingRef,
				"driver_id", d.DriverID,
				"last_updated", d.UpdatedAt,
			)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue delivery job started (running every minute)")
	return nil
}

// Stop stops the watchdog.
func (j *OverdueDeliveryJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue delivery job stopped")
}
