package jobs

import (
	"context"
	"log/slog"

	"requisition/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DispatchReleaseJob manages the scheduled release of packaged requisitions.
// Runs every second to move packaged requisitions into the dispatch-ready pool.
type DispatchReleaseJob struct {
	handler commands.ReleaseForDispatchCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDispatchReleaseJob creates a new job for releasing packaged requisitions.
// Uses ReleaseForDispatchCommandHandler to sweep the packaged pool every second.
func NewDispatchReleaseJob(handler commands.ReleaseForDispatchCommandHandler, logger *slog.Logger) *DispatchReleaseJob {
	return &DispatchReleaseJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "dispatch_release_job"),
	}
}

// Start begins the dispatch release job to run every second.
func (j *DispatchReleaseJob) Start() error {
	_, err := j.cron.AddFunc("* * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReleaseForDispatchCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Dispatch release job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Dispatch release job started (running every second)")
	return nil
}

// Stop stops the dispatch release job.
func (j *DispatchReleaseJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Dispatch release job stopped")
}
