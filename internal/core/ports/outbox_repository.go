package ports

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"supplychain/internal/core/domain/model/kernel"
)

// OutboxMessage is a domain event stored for relay to external collaborators.
type OutboxMessage struct {
	ID          kernel.UUID
	Name        string
	AggregateID kernel.UUID
	OccurredAt  time.Time
	Payload     []byte
}

// NewOutboxMessage serializes a domain event into an outbox message.
// The message reuses the event id, so a relayed message can be traced back to its event.
func NewOutboxMessage(event kernel.DomainEvent) (OutboxMessage, error) {
	payload, err := json.Marshal(event)
	if err != nil {
		return OutboxMessage{}, fmt.Errorf("marshal %s event: %w", event.EventName(), err)
	}

	return OutboxMessage{
		ID:          event.EventID(),
		Name:        event.EventName(),
		AggregateID: event.AggregateID(),
		OccurredAt:  event.OccurredAt(),
		Payload:     payload,
	}, nil
}

// OutboxRepository gives the relay access to stored, not yet published events.
// Messages are written by units of work in the same atomic write as the aggregate
// that recorded them.
type OutboxRepository interface {
	// GetUnprocessed returns up to limit unpublished messages, oldest first.
	// Within a unit of work the returned messages stay reserved until it ends,
	// so concurrent relay passes never publish the same message twice.
	GetUnprocessed(ctx context.Context, limit int) ([]OutboxMessage, error)

	// MarkProcessed records that the given messages have been published.
	MarkProcessed(ctx context.Context, ids ...kernel.UUID) error
}

// EventPublisher hands a stored event to the collaborators that observe the registry.
type EventPublisher interface {
	Publish(ctx context.Context, message OutboxMessage) error
}
