package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"pharmaledger/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	shipmentWatchJob *ShipmentWatchJob
}

// NewJobManager creates a new job manager with all required jobs.
func NewJobManager(
	inTransitShipmentsHandler queries.GetInTransitShipmentsQueryHandler,
	staleThreshold time.Duration,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		shipmentWatchJob: NewShipmentWatchJob(inTransitShipmentsHandler, staleThreshold, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.shipmentWatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start shipment watch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.shipmentWatchJob.Stop()
}
