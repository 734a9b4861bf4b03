// Package jobs provides scheduled background tasks for the supply-chain
// engine.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations over the ledger.
//
// # Available Jobs
//
// 1. ShipmentWatchJob - Runs every minute to surface consignments that have
// been in transit longer than the configured stale threshold
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(inTransitShipmentsHandler, staleThreshold, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed sweep is logged and retried on the next tick; the job never
// mutates ledger state, so a missed sweep only delays the alert.
package jobs
