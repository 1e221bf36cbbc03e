package jobs

import (
	"fmt"
	"log/slog"

	"sales/internal/core/application/usecases/commands"
	"sales/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	shipmentDispatchJob *ShipmentDispatchJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes handlers as dependencies to wire up the job execution.
func NewJobManager(
	shipOrderHandler commands.ShipOrderCommandHandler,
	pendingHandler queries.GetAwaitingShipmentOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		shipmentDispatchJob: NewShipmentDispatchJob(shipOrderHandler, pendingHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.shipmentDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start shipment dispatch job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.shipmentDispatchJob.Stop()
}
