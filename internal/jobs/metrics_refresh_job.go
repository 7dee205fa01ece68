package jobs

import (
	"context"

	"orehaul/internal/core/application/usecases/queries"
	"orehaul/internal/pkg/metrics"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// MetricsRefreshJob periodically pushes the warehouse stock into the
// prometheus gauges. Counters track flows as they happen; the gauges mirror
// the absolute stock levels and need a fresh snapshot.
type MetricsRefreshJob struct {
	handler  queries.GetWarehouseInventoryQueryHandler
	metrics  *metrics.Metrics
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewMetricsRefreshJob creates a job that refreshes the stock gauges on the
// given six-field cron schedule.
func NewMetricsRefreshJob(
	handler queries.GetWarehouseInventoryQueryHandler,
	m *metrics.Metrics,
	schedule string,
	logger *zap.Logger,
) *MetricsRefreshJob {
	return &MetricsRefreshJob{
		handler:  handler,
		metrics:  m,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With(zap.String("component", "metrics_refresh_job")),
	}
}

// Name returns the job identifier used in logs and start errors.
func (j *MetricsRefreshJob) Name() string {
	return "metrics_refresh"
}

// RunOnce refreshes the stock gauges immediately.
func (j *MetricsRefreshJob) RunOnce(ctx context.Context) error {
	query := queries.NewGetWarehouseInventoryQuery()

	inventory, err := j.handler.Handle(ctx, query)
	if err != nil {
		return err
	}

	for _, stock := range inventory.Stocks {
		j.metrics.SetStock(stock.MineralType, stock.Tons)
	}
	j.metrics.SetTotalStock(inventory.TotalTons)

	return nil
}

// Start begins the periodic gauge refresh.
func (j *MetricsRefreshJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		if err := j.RunOnce(context.Background()); err != nil {
			j.logger.Error("metrics refresh failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("metrics refresh job started", zap.String("schedule", j.schedule))

	return nil
}

// Stop stops the periodic refresh.
func (j *MetricsRefreshJob) Stop() {
	j.cron.Stop()
	j.logger.Info("metrics refresh job stopped")
}
