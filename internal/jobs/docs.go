// Package jobs provides scheduled background tasks for the requisition system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic sweeps the requisition lifecycle needs.
//
// # Available Jobs
//
// 1. DispatchReleaseJob - Runs every second to move packaged requisitions into the dispatch-ready pool
// 2. BatchAssignmentJob - Runs every second to group dispatch-ready requisitions into delivery batches
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(releaseHandler, assignHandler, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both jobs use the cron expression "* * * * * *" which means they run every
// second. The release job feeds the assignment job: a requisition released in
// one sweep becomes a batching candidate in the next.
//
// # Error Handling
//
// - Assignment job ignores the empty-pool case (ErrNoRequisitionsReady)
// - Release job logs all errors as they indicate system issues
// - Failed job starts will stop any already running jobs
package jobs
