package jobs

import (
	"context"
	"errors"
	"log/slog"

	"requisition/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// BatchAssignmentJob manages the scheduled grouping of dispatch-ready
// requisitions into delivery batches. Runs every second so a requisition
// never waits long after becoming dispatch-ready.
type BatchAssignmentJob struct {
	handler commands.AssignBatchCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewBatchAssignmentJob creates a new job for assigning delivery batches.
// Uses AssignBatchCommandHandler to sweep the dispatch-ready pool every second.
func NewBatchAssignmentJob(handler commands.AssignBatchCommandHandler, logger *slog.Logger) *BatchAssignmentJob {
	return &BatchAssignmentJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "batch_assignment_job"),
	}
}

// Start begins the batch assignment job to run every second.
func (j *BatchAssignmentJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewAssignBatchCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty dispatch-ready pool is the normal idle state, not a failure
			if !errors.Is(err, commands.ErrNoRequisitionsReady) {
				j.logger.ErrorContext(ctx, "Batch assignment job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Batch assignment job started (running every second)")
	return nil
}

// Stop stops the batch assignment job.
func (j *BatchAssignmentJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Batch assignment job stopped")
}
