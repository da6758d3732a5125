package commands

import (
	"context"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/ports"
)

// RelayOutboxCommandHandler publishes stored ContractCreated/ContractDelivered
// events and marks them as processed.
//
// Messages are published oldest first. The first publish failure ends the pass:
// messages published before it are marked processed, the failed one and the
// rest stay in the outbox for the next pass.
type RelayOutboxCommandHandler struct {
	uowFactory OutboxUoWFactory
	publisher  ports.EventPublisher
}

// NewRelayOutboxCommandHandler creates a relay handler.
func NewRelayOutboxCommandHandler(uowFactory OutboxUoWFactory, publisher ports.EventPublisher) RelayOutboxCommandHandler {
	return RelayOutboxCommandHandler{
		uowFactory: uowFactory,
		publisher:  publisher,
	}
}

// Handle runs one relay pass.
func (h *RelayOutboxCommandHandler) Handle(ctx context.Context, cmd RelayOutboxCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.OutboxRepository()
	messages, err := repo.GetUnprocessed(ctx, cmd.BatchSize())
	if err != nil {
		return err
	}
	if len(messages) == 0 {
		return nil
	}

	published := make([]kernel.UUID, 0, len(messages))
	var publishErr error
	for _, message := range messages {
		if publishErr = h.publisher.Publish(ctx, message); publishErr != nil {
			publishErr = fmt.Errorf("publish %s %s: %w", message.Name, message.ID, publishErr)
			break
		}
		published = append(published, message.ID)
	}

	if len(published) > 0 {
		if err = repo.MarkProcessed(ctx, published...); err != nil {
			return err
		}
		if err = uow.Commit(ctx); err != nil {
			return err
		}
	}

	return publishErr
}
