package jobs

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mealorders/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// DefaultLowStockSchedule runs the report at the start of every minute.
const DefaultLowStockSchedule = "0 * * * * *"

// LowStockReader is satisfied by queries.GetLowStockItemsQueryHandler.
type LowStockReader interface {
	Handle(ctx context.Context, query queries.GetLowStockItemsQuery) ([]queries.ItemView, error)
}

// LowStockReportJob logs a warning for every available item whose stock fell below the
// threshold.
type LowStockReportJob struct {
	reader   LowStockReader
	query    queries.GetLowStockItemsQuery
	schedule string
	timeout  time.Duration
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewLowStockReportJob creates the job. schedule is a six field cron expression with
// seconds; empty means DefaultLowStockSchedule.
func NewLowStockReportJob(
	reader LowStockReader,
	threshold int,
	schedule string,
	logger *slog.Logger,
) (*LowStockReportJob, error) {
	query, err := queries.NewGetLowStockItemsQuery(threshold)
	if err != nil {
		return nil, err
	}
	if schedule == "" {
		schedule = DefaultLowStockSchedule
	}
	return &LowStockReportJob{
		reader:   reader,
		query:    query,
		schedule: schedule,
		timeout:  30 * time.Second,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "low_stock_report_job"),
	}, nil
}

// Start schedules the report. An invalid schedule is returned as an error.
func (j *LowStockReportJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, func() {
		ctx, cancel := context.WithTimeout(context.Background(), j.timeout)
		defer cancel()
		j.Run(ctx)
	}); err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Low stock report job started",
		"schedule", j.schedule,
		"threshold", j.query.Threshold())
	return nil
}

// Run produces one report. Failures are logged; the next tick tries again.
func (j *LowStockReportJob) Run(ctx context.Context) {
	items, err := j.reader.Handle(ctx, j.query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Low stock report failed", "error", err)
		return
	}

	for _, item := range items {
		j.logger.WarnContext(ctx, "Item is running low on stock",
			"item_id", item.ID.String(),
			"menu_id", item.MenuID.String(),
			"name", item.Name,
			"stock", item.Stock,
			"threshold", j.query.Threshold())
	}
}

// Stop stops scheduling and waits for a running report to finish.
func (j *LowStockReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Low stock report job stopped")
}
