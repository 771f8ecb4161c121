package jobs

import (
	"fmt"
	"log/slog"

	"requisition/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	dispatchReleaseJob *DispatchReleaseJob
	batchAssignmentJob *BatchAssignmentJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	releaseHandler commands.ReleaseForDispatchCommandHandler,
	assignHandler commands.AssignBatchCommandHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		dispatchReleaseJob: NewDispatchReleaseJob(releaseHandler, logger),
		batchAssignmentJob: NewBatchAssignmentJob(assignHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.dispatchReleaseJob.Start(); err != nil {
		return fmt.Errorf("failed to start dispatch release job: %w", err)
	}

	if err := jm.batchAssignmentJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.dispatchReleaseJob.Stop()
		return fmt.Errorf("failed to start batch assignment job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.batchAssignmentJob.Stop()
	jm.dispatchReleaseJob.Stop()
}
