package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueDeliveryJob *OverdueDeliveryJob
}

// NewJobManager creates a job manager with all required jobs.
func NewJobManager(
	overdueHandler queries.GetOverdueDeliveriesQueryHandler,
	overdueThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueDeliveryJob: NewOverdueDeliveryJob(overdueHandler, overdueThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueDeliveryJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue delivery job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueDeliveryJob.Stop()
}
