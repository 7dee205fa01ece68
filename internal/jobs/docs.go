// Package jobs provides the scheduled background tasks of the transport
// system, built on github.com/robfig/cron/v3 with second-level schedules.
//
// # Available Jobs
//
// 1. StockReportJob - Periodically logs a snapshot of the warehouse inventory
// 2. MetricsRefreshJob - Periodically pushes the warehouse stock into the prometheus gauges
//
// # Usage
//
// The JobManager bundles both jobs behind a single lifecycle:
//
//	jobManager := jobs.NewJobManager(inventoryHandler, appMetrics, "*/30 * * * * *", "*/5 * * * * *", logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules are six-field cron expressions with a seconds column and come
// from configuration. Both jobs also expose RunOnce so the composition root
// can prime a fresh snapshot at startup.
//
// # Error Handling
//
// - Failed runs are logged and the schedule keeps ticking
// - Failed job starts stop any already running jobs
package jobs
