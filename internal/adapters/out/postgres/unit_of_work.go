// Package postgres provides the GORM-based implementation of the Unit of Work pattern.
//
// A GormUnitOfWork wraps one database transaction. Repositories obtained from it
// run inside that transaction and report the aggregates they write; on Commit the
// domain events of those aggregates are inserted into the outbox table in the same
// transaction, so a contract row and its ContractCreated/ContractDelivered
// messages become visible together.
//
// Usage:
//
//	factory := NewGormUnitOfWorkFactory(db)
//	uow := factory.Create()
//
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	repo := uow.ContractRepository()
//	c, err := repo.GetForUpdate(ctx, key) // row locked until the transaction ends
//	if err != nil {
//	    return err
//	}
//	if err = c.MarkAsDelivered(t); err != nil {
//	    return err
//	}
//	if err = repo.Update(ctx, c); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance belongs to one goroutine; concurrent operations
// create their own instances from the factory.
package postgres

import (
	"context"

	"supplychain/internal/adapters/out/postgres/contractrepo"
	"supplychain/internal/adapters/out/postgres/outboxrepo"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/ports"

	"gorm.io/gorm"
)

// eventSource is an aggregate that records domain events.
type eventSource interface {
	DomainEvents() []kernel.DomainEvent
	ClearDomainEvents()
}

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate any
}

// GormUnitOfWorkFactory creates UnitOfWork instances using GORM database connections.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{})
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state and aggregate tracking.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction and the aggregates written in it.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin starts a transaction. Calling Begin on an active unit of work does not
// create a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		err := uow.tx.Error
		uow.tx = nil
		return err
	}

	return nil
}

// Commit stores the outbox messages of tracked aggregates and commits the transaction.
// If storing the messages fails the transaction is rolled back.
//
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	if err := uow.storeEvents(ctx); err != nil {
		uow.tx.Rollback()
		uow.reset()
		return err
	}

	err := uow.tx.Commit().Error
	if err == nil {
		for _, tracked := range uow.trackedAggregates {
			if source, ok := tracked.Aggregate.(eventSource); ok {
				source.ClearDomainEvents()
			}
		}
	}
	uow.reset()
	return err
}

// Rollback discards the transaction and releases its row locks.
//
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.reset()
	return err
}

// ContractRepository provides contract persistence within the unit of work.
// Outside a transaction it runs on the main connection and GetForUpdate locks nothing.
func (uow *GormUnitOfWork) ContractRepository() ports.ContractRepository {
	return contractrepo.NewGormContractRepository(uow.conn(), uow)
}

// OutboxRepository provides outbox access within the unit of work.
func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackAggregate registers an aggregate written within this unit of work.
// Repositories call it after each successful Add or Update.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate any) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

func (uow *GormUnitOfWork) storeEvents(ctx context.Context) error {
	messages := make([]ports.OutboxMessage, 0)
	for _, tracked := range uow.trackedAggregates {
		source, ok := tracked.Aggregate.(eventSource)
		if !ok {
			continue
		}
		for _, event := range source.DomainEvents() {
			message, err := ports.NewOutboxMessage(event)
			if err != nil {
				return err
			}
			messages = append(messages, message)
		}
	}

	return outboxrepo.NewGormOutboxRepository(uow.tx).Add(ctx, messages...)
}

func (uow *GormUnitOfWork) reset() {
	uow.tx = nil
	uow.trackedAggregates = make([]trackedAggregate, 0)
}
