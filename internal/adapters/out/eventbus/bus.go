// Package eventbus delivers relayed outbox messages to in-process subscribers.
package eventbus

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"supplychain/internal/core/ports"
)

// Handler receives one published message.
type Handler func(ctx context.Context, message ports.OutboxMessage) error

// Bus implements ports.EventPublisher. Subscribers are called synchronously,
// in subscription order.
type Bus struct {
	mu          sync.RWMutex
	subscribers map[string][]Handler
	logger      *slog.Logger
}

// New creates an empty bus.
func New(logger *slog.Logger) *Bus {
	return &Bus{
		subscribers: make(map[string][]Handler),
		logger:      logger.With("component", "eventbus"),
	}
}

// Subscribe registers handler for messages named name.
func (b *Bus) Subscribe(name string, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.subscribers[name] = append(b.subscribers[name], handler)
}

// Publish hands message to every subscriber of its name. All subscribers are
// called even if one fails; their errors are joined.
func (b *Bus) Publish(ctx context.Context, message ports.OutboxMessage) error {
	b.mu.RLock()
	handlers := b.subscribers[message.Name]
	b.mu.RUnlock()

	var errs []error
	for i, handler := range handlers {
		if err := handler(ctx, message); err != nil {
			errs = append(errs, fmt.Errorf("subscriber %d: %w", i, err))
		}
	}

	if err := errors.Join(errs...); err != nil {
		b.logger.ErrorContext(ctx, "event delivery failed",
			"event", message.Name,
			"event_id", message.ID.String(),
			"contract_id", message.AggregateID.String(),
			"error", err,
		)
		return err
	}

	b.logger.InfoContext(ctx, "event published",
		"event", message.Name,
		"event_id", message.ID.String(),
		"contract_id", message.AggregateID.String(),
		"subscribers", len(handlers),
	)
	return nil
}
