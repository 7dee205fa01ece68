package jobs

import (
	"context"
	"fmt"

	"orehaul/internal/core/application/usecases/queries"
	"orehaul/internal/pkg/metrics"

	"go.uber.org/zap"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	stockReportJob    *StockReportJob
	metricsRefreshJob *MetricsRefreshJob
}

// NewJobManager creates a new job manager with all required jobs.
// Both jobs read through the warehouse inventory query handler.
func NewJobManager(
	inventoryHandler queries.GetWarehouseInventoryQueryHandler,
	m *metrics.Metrics,
	stockReportSchedule string,
	metricsRefreshSchedule string,
	logger *zap.Logger,
) *JobManager {
	return &JobManager{
		stockReportJob:    NewStockReportJob(inventoryHandler, stockReportSchedule, logger),
		metricsRefreshJob: NewMetricsRefreshJob(inventoryHandler, m, metricsRefreshSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.stockReportJob.Start(); err != nil {
		return fmt.Errorf("failed to start %s job: %w", jm.stockReportJob.Name(), err)
	}

	if err := jm.metricsRefreshJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.stockReportJob.Stop()
		return fmt.Errorf("failed to start %s job: %w", jm.metricsRefreshJob.Name(), err)
	}

	return nil
}

// RunAllOnce runs every job a single time outside its schedule.
// Called at startup so the stock gauges and the first stock report do not
// wait for the first cron tick.
func (jm *JobManager) RunAllOnce(ctx context.Context) error {
	if err := jm.stockReportJob.RunOnce(ctx); err != nil {
		return fmt.Errorf("%s job failed: %w", jm.stockReportJob.Name(), err)
	}

	if err := jm.metricsRefreshJob.RunOnce(ctx); err != nil {
		return fmt.Errorf("%s job failed: %w", jm.metricsRefreshJob.Name(), err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.metricsRefreshJob.Stop()
	jm.stockReportJob.Stop()
}
