package jobs

import (
	"fmt"
	"log/slog"

	"grubdash/internal/core/application/usecases/queries"
)

// job is a scheduled task that can be started and stopped.
type job interface {
	Start() error
	Stop()
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	jobs   []job
	logger *slog.Logger
}

// NewJobManager creates a job manager. An empty reportSchedule leaves the store
// report job out.
func NewJobManager(
	reportSchedule string,
	listDishes queries.ListDishesQueryHandler,
	listOrders queries.ListOrdersQueryHandler,
	logger *slog.Logger,
) *JobManager {
	jm := &JobManager{logger: logger.With("component", "job_manager")}
	if reportSchedule != "" {
		jm.jobs = append(jm.jobs, NewStoreReportJob(reportSchedule, listDishes, listOrders, logger))
	}
	return jm
}

// StartAll starts all scheduled jobs.
// When a job fails to start, the jobs already started are stopped again.
func (jm *JobManager) StartAll() error {
	for i, j := range jm.jobs {
		if err := j.Start(); err != nil {
			for _, started := range jm.jobs[:i] {
				started.Stop()
			}
			return fmt.Errorf("failed to start job %d: %w", i, err)
		}
	}

	jm.logger.Info("Jobs started", "count", len(jm.jobs))
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	for _, j := range jm.jobs {
		j.Stop()
	}
}

// Len returns the number of configured jobs.
func (jm *JobManager) Len() int {
	return len(jm.jobs)
}
