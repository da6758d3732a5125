// Package jobs provides scheduled background tasks for the contract registry.
//
// Jobs are built on github.com/robfig/cron/v3 with second precision.
//
// # Available Jobs
//
// OutboxRelayJob publishes ContractCreated and ContractDelivered events that
// command handlers stored in the outbox. By default it runs every second and
// skips a tick while the previous pass is still running.
//
// # Usage
//
//	relay, err := jobs.NewOutboxRelayJob(&relayHandler, cfg.OutboxBatchSize, cfg.OutboxRelaySchedule, logger)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	jobManager := jobs.NewJobManager(relay)
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//	defer jobManager.StopAll()
//
// # Error Handling
//
// A failed pass is logged; unpublished messages stay in the outbox and are
// retried on the next tick.
package jobs
