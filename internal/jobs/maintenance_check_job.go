package jobs

import (
	"context"
	"log/slog"

	"logistrans/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// MaintenanceCheckJob periodically sweeps the fleet for vehicles whose
// mileage reached the next maintenance threshold and notifies admins.
// The sweep never changes vehicle statuses itself.
type MaintenanceCheckJob struct {
	handler  commands.NotifyMaintenanceDueCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewMaintenanceCheckJob creates the maintenance sweep job. The schedule is a
// standard five-field cron expression, e.g. "0 * * * *" for hourly.
func NewMaintenanceCheckJob(
	handler commands.NotifyMaintenanceDueCommandHandler,
	schedule string,
	logger *slog.Logger,
) *MaintenanceCheckJob {
	return &MaintenanceCheckJob{
		handler:  handler,
		cron:     cron.New(),
		schedule: schedule,
		logger:   logger.With("component", "maintenance_check_job"),
	}
}

// Start schedules the maintenance sweep.
func (j *MaintenanceCheckJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, err := commands.NewNotifyMaintenanceDueCommand()
		if err != nil {
			j.logger.ErrorContext(ctx, "Maintenance sweep command invalid", "error", err)
			return
		}

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Maintenance sweep failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(),
		"Maintenance check job started", "schedule", j.schedule)
	return nil
}

// Stop stops the maintenance sweep.
func (j *MaintenanceCheckJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Maintenance check job stopped")
}
