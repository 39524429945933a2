package jobs

import (
	"context"
	"fmt"
	"log/slog"

	"grubdash/internal/core/application/usecases/queries"
	"grubdash/internal/core/domain/model/order"

	"github.com/robfig/cron/v3"
)

// StoreReport is a point-in-time summary of the store.
type StoreReport struct {
	Dishes   int
	Orders   int
	ByStatus map[order.Status]int
}

// StoreReportJob periodically logs a StoreReport.
type StoreReportJob struct {
	schedule   string
	listDishes queries.ListDishesQueryHandler
	listOrders queries.ListOrdersQueryHandler
	cron       *cron.Cron
	logger     *slog.Logger
}

// NewStoreReportJob creates the job. The schedule is parsed when the job starts.
func NewStoreReportJob(
	schedule string,
	listDishes queries.ListDishesQueryHandler,
	listOrders queries.ListOrdersQueryHandler,
	logger *slog.Logger,
) *StoreReportJob {
	return &StoreReportJob{
		schedule:   schedule,
		listDishes: listDishes,
		listOrders: listOrders,
		cron:       cron.New(),
		logger:     logger.With("component", "store_report_job"),
	}
}

// Report builds a summary through the list queries.
func (j *StoreReportJob) Report(ctx context.Context) (StoreReport, error) {
	dishes, err := j.listDishes.Handle(ctx, queries.NewListDishesQuery())
	if err != nil {
		return StoreReport{}, fmt.Errorf("list dishes: %w", err)
	}

	orders, err := j.listOrders.Handle(ctx, queries.NewListOrdersQuery())
	if err != nil {
		return StoreReport{}, fmt.Errorf("list orders: %w", err)
	}

	report := StoreReport{
		Dishes:   len(dishes),
		Orders:   len(orders),
		ByStatus: make(map[order.Status]int),
	}
	for _, o := range orders {
		report.ByStatus[o.Status()]++
	}
	return report, nil
}

// Run builds and logs one report.
func (j *StoreReportJob) Run(ctx context.Context) {
	report, err := j.Report(ctx)
	if err != nil {
		j.logger.ErrorContext(ctx, "Store report job failed", "error", err)
		return
	}

	j.logger.InfoContext(ctx, "Store report",
		"dishes", report.Dishes,
		"orders", report.Orders,
		order.Pending.String(), report.ByStatus[order.Pending],
		order.Preparing.String(), report.ByStatus[order.Preparing],
		order.OutForDelivery.String(), report.ByStatus[order.OutForDelivery],
		order.Delivered.String(), report.ByStatus[order.Delivered],
	)
}

// Start schedules the job.
func (j *StoreReportJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		j.Run(context.Background())
	})
	if err != nil {
		return fmt.Errorf("schedule %q: %w", j.schedule, err)
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Store report job started", "schedule", j.schedule)
	return nil
}

// Stop stops the scheduler and waits for a running report to finish.
func (j *StoreReportJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Store report job stopped")
}
