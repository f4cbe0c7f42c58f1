// Package jobs provides scheduled background tasks for the meal ordering platform.
//
// Jobs are cron based and use github.com/robfig/cron/v3 with a seconds field.
//
// # Available Jobs
//
// 1. LowStockReportJob - Logs a warning for every available item whose stock is below the
// configured threshold. Runs once a minute unless LOW_STOCK_CRON says otherwise.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	lowStock, err := jobs.NewLowStockReportJob(lowStockHandler, 5, "", logger)
//	if err != nil {
//		return err
//	}
//	jobManager := jobs.NewJobManager(lowStock)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - A failing run is logged and retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
