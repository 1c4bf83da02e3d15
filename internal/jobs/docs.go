// Package jobs provides scheduled background tasks for the logistics system.
//
// Jobs are cron-based (github.com/robfig/cron/v3) and managed through
// JobManager:
//
//	jobManager := jobs.NewJobManager(maintenanceHandler, "0 * * * *", logger)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// MaintenanceCheckJob sweeps the fleet on its schedule and notifies admins
// about vehicles due for maintenance. It only produces notifications; moving
// a vehicle into or out of maintenance stays a deliberate operator action.
package jobs
