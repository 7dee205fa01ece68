package jobs

import (
	"context"

	"orehaul/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// StockReportJob periodically logs a snapshot of the warehouse inventory.
// Each run emits one structured line with the stock per mineral type and
// the total stored tonnage.
type StockReportJob struct {
	handler  queries.GetWarehouseInventoryQueryHandler
	schedule string
	cron     *cron.Cron
	logger   *zap.Logger
}

// NewStockReportJob creates a job that reports inventory on the given
// six-field cron schedule.
func NewStockReportJob(
	handler queries.GetWarehouseInventoryQueryHandler,
	schedule string,
	logger *zap.Logger,
) *StockReportJob {
	return &StockReportJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With(zap.String("component", "stock_report_job")),
	}
}

// Name returns the job identifier used in logs and start errors.
func (j *StockReportJob) Name() string {
	return "stock_report"
}

// RunOnce reports the current inventory immediately.
func (j *StockReportJob) RunOnce(ctx context.Context) error {
	query := queries.NewGetWarehouseInventoryQuery()

	inventory, err := j.handler.Handle(ctx, query)
	if err != nil {
		return err
	}

	fields := make([]zap.Field, 0, len(inventory.Stocks)+1)
	for _, stock := range inventory.Stocks {
		fields = append(fields, zap.Float64(stock.MineralType, stock.Tons))
	}
	fields = append(fields, zap.Float64("total_tons", inventory.TotalTons))

	j.logger.Info("warehouse stock", fields...)

	return nil
}

// Start begins the periodic inventory reporting.
func (j *StockReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		if err := j.RunOnce(context.Background()); err != nil {
			j.logger.Error("stock report failed", zap.Error(err))
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("stock report job started", zap.String("schedule", j.schedule))

	return nil
}

// Stop stops the periodic reporting.
func (j *StockReportJob) Stop() {
	j.cron.Stop()
	j.logger.Info("stock report job stopped")
}
