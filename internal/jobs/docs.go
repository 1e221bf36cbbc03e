// Package jobs provides scheduled background tasks for the sales order system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations.
//
// # Available Jobs
//
// 1. ShipmentDispatchJob - Runs every ten seconds to hand approved orders over to the carrier
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(shipOrderHandler, pendingHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Error Handling
//
// - Refused transitions and vanished orders are expected races and are skipped quietly
// - Query failures and unexpected dispatch failures are logged as system issues
package jobs
