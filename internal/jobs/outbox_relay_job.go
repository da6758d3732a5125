package jobs

import (
	"context"
	"log/slog"

	"supplychain/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DefaultOutboxRelaySchedule runs the relay every second.
const DefaultOutboxRelaySchedule = "* * * * * *"

// RelayOutboxHandler runs one relay pass over the outbox.
type RelayOutboxHandler interface {
	Handle(ctx context.Context, cmd commands.RelayOutboxCommand) error
}

// OutboxRelayJob periodically publishes stored contract events.
// A pass that is still running when the next one is due is skipped.
type OutboxRelayJob struct {
	handler  RelayOutboxHandler
	cmd      commands.RelayOutboxCommand
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewOutboxRelayJob creates a relay job handling at most batchSize messages per pass.
func NewOutboxRelayJob(handler RelayOutboxHandler, batchSize int, schedule string, logger *slog.Logger) (*OutboxRelayJob, error) {
	cmd, err := commands.NewRelayOutboxCommand(batchSize)
	if err != nil {
		return nil, err
	}
	if schedule == "" {
		schedule = DefaultOutboxRelaySchedule
	}

	return &OutboxRelayJob{
		handler:  handler,
		cmd:      cmd,
		schedule: schedule,
		cron: cron.New(
			cron.WithSeconds(),
			cron.WithChain(cron.Recover(cron.DefaultLogger), cron.SkipIfStillRunning(cron.DefaultLogger)),
		),
		logger: logger.With("component", "outbox_relay_job"),
	}, nil
}

// Start schedules the relay.
func (j *OutboxRelayJob) Start() error {
	if _, err := j.cron.AddFunc(j.schedule, j.run); err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Outbox relay job started",
		"schedule", j.schedule,
		"batch_size", j.cmd.BatchSize(),
	)
	return nil
}

// Stop unschedules the relay and waits for a running pass to finish.
func (j *OutboxRelayJob) Stop() {
	<-j.cron.Stop().Done()
	j.logger.InfoContext(context.Background(), "Outbox relay job stopped")
}

func (j *OutboxRelayJob) run() {
	ctx := context.Background()

	if err := j.handler.Handle(ctx, j.cmd); err != nil {
		j.logger.ErrorContext(ctx, "Outbox relay job failed", "error", err)
	}
}
