package leveldb

import (
	"context"
	"encoding/json"
	"fmt"

	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/ports"

	"github.com/syndtr/goleveldb/leveldb/util"
)

// OutboxRepository implements ports.OutboxRepository. Processed messages are deleted.
type OutboxRepository struct {
	store *Store
	uow   *UnitOfWork
}

// NewOutboxRepository creates an outbox repository bound to uow.
func NewOutboxRepository(store *Store, uow *UnitOfWork) *OutboxRepository {
	return &OutboxRepository{
		store: store,
		uow:   uow,
	}
}

// GetUnprocessed returns up to limit pending messages in id order, which is
// creation order for time-ordered ids. The outbox stays reserved for this
// unit of work until it ends.
func (r *OutboxRepository) GetUnprocessed(_ context.Context, limit int) ([]ports.OutboxMessage, error) {
	if r.uow == nil || !r.uow.active() {
		return nil, ErrNoActiveTransaction
	}
	r.uow.lock(outboxLockKey)

	iter := r.store.db.NewIterator(util.BytesPrefix([]byte(outboxPrefix)), nil)
	defer iter.Release()

	messages := make([]ports.OutboxMessage, 0)
	for len(messages) < limit && iter.Next() {
		var record outboxRecord
		if err := json.Unmarshal(iter.Value(), &record); err != nil {
			return nil, fmt.Errorf("leveldb: decode %s: %w", iter.Key(), err)
		}

		message, err := outboxToMessage(record)
		if err != nil {
			return nil, err
		}
		messages = append(messages, message)
	}
	if err := iter.Error(); err != nil {
		return nil, fmt.Errorf("leveldb: scan outbox: %w", err)
	}

	return messages, nil
}

// MarkProcessed buffers the deletion of the given messages.
func (r *OutboxRepository) MarkProcessed(_ context.Context, ids ...kernel.UUID) error {
	if r.uow == nil || !r.uow.active() {
		return ErrNoActiveTransaction
	}

	for _, id := range ids {
		r.uow.batch.Delete(outboxKey(id))
	}
	return nil
}
