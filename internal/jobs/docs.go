// Package jobs provides scheduled background tasks built on github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. StoreReportJob - logs the size of both collections and the order status breakdown
//
// # Usage
//
//	jobManager, err := jobs.NewJobManager(config.ReportSchedule, listDishes, listOrders, logger)
//	if err != nil {
//		log.Fatal("Failed to configure jobs:", err)
//	}
//
//	jobManager.StartAll()
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Schedules use the standard five-field cron syntax or descriptors such as "@every 1m".
// An empty schedule disables the job.
package jobs
