// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3.
//
// DispatchJob periodically matches the oldest pending order with the nearest
// available courier. "Nothing to dispatch" outcomes (no pending orders, no
// free couriers, none in range) are expected business scenarios and are
// logged at debug level only.
package jobs

import (
	"context"
	"errors"
	"log/slog"

	"github.com/robfig/cron/v3"

	"domicilios/internal/core/application/usecases/commands"
	"domicilios/internal/core/domain/services"
)

// DefaultDispatchSchedule runs the dispatcher every ten seconds.
const DefaultDispatchSchedule = "*/10 * * * * *"

// DispatchJob auto-assigns pending orders on a cron schedule.
type DispatchJob struct {
	handler  commands.DispatchPendingCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewDispatchJob creates a dispatch job with the given cron schedule.
// An empty schedule falls back to DefaultDispatchSchedule.
func NewDispatchJob(
	handler commands.DispatchPendingCommandHandler,
	schedule string,
	logger *slog.Logger,
) *DispatchJob {
	if schedule == "" {
		schedule = DefaultDispatchSchedule
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &DispatchJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "dispatch_job"),
	}
}

// Start begins running the dispatcher on its schedule.
func (j *DispatchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.Info("dispatch job started", "schedule", j.schedule)
	return nil
}

// Stop stops the dispatch job.
func (j *DispatchJob) Stop() {
	j.cron.Stop()
	j.logger.Info("dispatch job stopped")
}

func (j *DispatchJob) run() {
	ctx := context.Background()
	cmd := commands.NewDispatchPendingCommand()

	err := j.handler.Handle(ctx, cmd)
	if err == nil {
		j.logger.InfoContext(ctx, "dispatched pending order to courier")
		return
	}

	if errors.Is(err, commands.ErrNoPendingOrders) ||
		errors.Is(err, commands.ErrNoFreeCouriersFound) ||
		errors.Is(err, services.ErrNoCourierInRange) {
		j.logger.DebugContext(ctx, "nothing to dispatch", "reason", err)
		return
	}

	j.logger.ErrorContext(ctx, "dispatch job failed", "error", err)
}
