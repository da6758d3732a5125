package leveldb

import (
	"context"
	"encoding/json"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/ports"

	"github.com/syndtr/goleveldb/leveldb"
)

// eventSource is an aggregate that records domain events.
type eventSource interface {
	DomainEvents() []kernel.DomainEvent
	ClearDomainEvents()
}

type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate eventSource
}

// UnitOfWorkFactory creates units of work over one Store.
type UnitOfWorkFactory struct {
	store *Store
}

// NewUnitOfWorkFactory creates a factory for leveldb units of work.
func NewUnitOfWorkFactory(store *Store) *UnitOfWorkFactory {
	return &UnitOfWorkFactory{store: store}
}

// Create produces a new UnitOfWork. Each instance must be used by one goroutine.
func (f *UnitOfWorkFactory) Create() ports.UnitOfWork {
	return &UnitOfWork{
		store: f.store,
		held:  make(map[string]func()),
	}
}

// UnitOfWork buffers writes in a leveldb.Batch and applies them atomically on Commit.
// Keys locked through its repositories stay locked until Commit or Rollback.
type UnitOfWork struct {
	store             *Store
	batch             *leveldb.Batch
	held              map[string]func()
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling Begin on an active unit of work is a no-op.
func (uow *UnitOfWork) Begin(_ context.Context) error {
	if uow.batch != nil {
		return nil
	}

	uow.batch = new(leveldb.Batch)
	return nil
}

// Commit stores the outbox messages of tracked aggregates next to the buffered
// writes and applies everything in one write. Locks are released either way.
func (uow *UnitOfWork) Commit(_ context.Context) error {
	if uow.batch == nil {
		return ErrNoActiveTransaction
	}
	defer uow.end()

	for _, tracked := range uow.trackedAggregates {
		for _, event := range tracked.Aggregate.DomainEvents() {
			message, err := ports.NewOutboxMessage(event)
			if err != nil {
				return err
			}
			value, err := json.Marshal(outboxFromMessage(message))
			if err != nil {
				return fmt.Errorf("leveldb: encode outbox message %s: %w", message.ID, err)
			}
			uow.batch.Put(outboxKey(message.ID), value)
		}
	}

	if err := uow.store.db.Write(uow.batch, uow.store.wo); err != nil {
		return fmt.Errorf("leveldb: commit: %w", err)
	}

	for _, tracked := range uow.trackedAggregates {
		tracked.Aggregate.ClearDomainEvents()
	}
	return nil
}

// Rollback discards buffered writes and releases held locks.
func (uow *UnitOfWork) Rollback(_ context.Context) error {
	if uow.batch == nil {
		return ErrNoActiveTransaction
	}

	uow.end()
	return nil
}

// ContractRepository returns a contract repository bound to this unit of work.
func (uow *UnitOfWork) ContractRepository() ports.ContractRepository {
	return NewContractRepository(uow.store, uow)
}

// OutboxRepository returns an outbox repository bound to this unit of work.
func (uow *UnitOfWork) OutboxRepository() ports.OutboxRepository {
	return NewOutboxRepository(uow.store, uow)
}

// TrackAggregate registers an aggregate whose events are stored on Commit.
func (uow *UnitOfWork) TrackAggregate(id kernel.UUID, aggregate eventSource) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *UnitOfWork) active() bool {
	return uow.batch != nil
}

// lock takes the store lock for key unless this unit of work already holds it.
func (uow *UnitOfWork) lock(key string) {
	if _, ok := uow.held[key]; ok {
		return
	}
	uow.held[key] = uow.store.locks.lock(key)
}

func (uow *UnitOfWork) end() {
	uow.batch = nil
	uow.trackedAggregates = nil
	for key, unlock := range uow.held {
		unlock()
		delete(uow.held, key)
	}
}
