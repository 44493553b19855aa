// Package jobs provides scheduled background tasks for the restaurant service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3.
//
// # Available Jobs
//
// 1. LateOrderJob - Runs every 30 seconds to re-evaluate urgency flags on
// active orders and log the ones that are late or coming due.
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(activeRestaurantsHandler, activeOrdersHandler, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Error Handling
//
// The late-order job logs failures and moves on; a failed scan for one
// restaurant never blocks the others, and the next tick retries everything.
package jobs
