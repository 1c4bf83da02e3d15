package jobs

import (
	"fmt"
	"log/slog"

	"logistrans/internal/core/application/usecases/commands"
)

// JobManager coordinates the application's scheduled jobs.
type JobManager struct {
	maintenanceCheckJob *MaintenanceCheckJob
}

// NewJobManager creates a job manager wiring the maintenance sweep to its
// command handler.
func NewJobManager(
	maintenanceHandler commands.NotifyMaintenanceDueCommandHandler,
	maintenanceSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		maintenanceCheckJob: NewMaintenanceCheckJob(maintenanceHandler, maintenanceSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.maintenanceCheckJob.Start(); err != nil {
		return fmt.Errorf("failed to start maintenance check job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.maintenanceCheckJob.Stop()
}
