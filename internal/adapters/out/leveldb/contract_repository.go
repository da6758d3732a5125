package leveldb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"supplychain/internal/core/domain/model/contract"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"github.com/syndtr/goleveldb/leveldb"
	"github.com/syndtr/goleveldb/leveldb/util"
)

// ContractRepository implements ports.ContractRepository on the embedded store.
type ContractRepository struct {
	store *Store
	uow   *UnitOfWork
}

// NewContractRepository creates a repository. A nil uow gives a read-only repository.
func NewContractRepository(store *Store, uow *UnitOfWork) *ContractRepository {
	return &ContractRepository{
		store: store,
		uow:   uow,
	}
}

// Add buffers a new record. The key stays locked until the unit of work ends.
func (r *ContractRepository) Add(_ context.Context, aggregate *contract.Contract) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.writable() {
		return ErrNoActiveTransaction
	}

	key := contractKey(aggregate.ID())
	r.uow.lock(string(key))

	exists, err := r.store.db.Has(key, nil)
	if err != nil {
		return fmt.Errorf("leveldb: check contract %s: %w", aggregate.ID(), err)
	}
	if exists {
		return errs.NewValueIsInvalidErrorWithCause(
			"contract id",
			fmt.Errorf("contract %s already exists", aggregate.ID()),
		)
	}

	now := time.Now().UTC()
	record := fromDomain(aggregate)
	record.Version = 1
	record.CreatedAt = now
	record.UpdatedAt = now

	if err = r.put(key, record); err != nil {
		return err
	}

	r.uow.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update buffers the new delivery state of an existing record.
func (r *ContractRepository) Update(_ context.Context, aggregate *contract.Contract) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}
	if !r.writable() {
		return ErrNoActiveTransaction
	}

	key := contractKey(aggregate.ID())
	r.uow.lock(string(key))

	stored, err := r.load(aggregate.ID())
	if err != nil {
		return err
	}
	if stored.Version != aggregate.Version() {
		return errs.NewVersionIsInvalidErrorWithCause(
			"contract version",
			fmt.Errorf("contract %s is at version %d, loaded at %d", aggregate.ID(), stored.Version, aggregate.Version()),
		)
	}

	record := fromDomain(aggregate)
	record.Version = stored.Version + 1
	record.CreatedAt = stored.CreatedAt
	record.UpdatedAt = time.Now().UTC()

	if err = r.put(key, record); err != nil {
		return err
	}

	r.uow.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get reads the committed record. Buffered writes of a unit of work are not visible.
func (r *ContractRepository) Get(_ context.Context, id kernel.UUID) (*contract.Contract, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	record, err := r.load(id)
	if err != nil {
		return nil, err
	}
	return toDomain(record)
}

// GetForUpdate locks the key for the rest of the unit of work, then reads the record.
func (r *ContractRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*contract.Contract, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if !r.writable() {
		return nil, ErrNoActiveTransaction
	}

	r.uow.lock(string(contractKey(id)))
	return r.Get(ctx, id)
}

// ListByStatus scans every record from one snapshot, in key order.
func (r *ContractRepository) ListByStatus(_ context.Context, status *contract.Status) ([]*contract.Contract, error) {
	snapshot, err := r.store.db.GetSnapshot()
	if err != nil {
		return nil, fmt.Errorf("leveldb: snapshot: %w", err)
	}
	defer snapshot.Release()

	iter := snapshot.NewIterator(util.BytesPrefix([]byte(contractPrefix)), nil)
	defer iter.Release()

	contracts := make([]*contract.Contract, 0)
	for iter.Next() {
		var record contractRecord
		if err = json.Unmarshal(iter.Value(), &record); err != nil {
			return nil, fmt.Errorf("leveldb: decode %s: %w", iter.Key(), err)
		}
		if status != nil && contract.Status(record.Status) != *status {
			continue
		}

		c, domainErr := toDomain(record)
		if domainErr != nil {
			return nil, domainErr
		}
		contracts = append(contracts, c)
	}
	if err = iter.Error(); err != nil {
		return nil, fmt.Errorf("leveldb: scan contracts: %w", err)
	}

	return contracts, nil
}

func (r *ContractRepository) writable() bool {
	return r.uow != nil && r.uow.active()
}

func (r *ContractRepository) load(id kernel.UUID) (contractRecord, error) {
	value, err := r.store.db.Get(contractKey(id), nil)
	if err != nil {
		if errors.Is(err, leveldb.ErrNotFound) {
			return contractRecord{}, errs.NewObjectNotFoundError("contract", id.String())
		}
		return contractRecord{}, fmt.Errorf("leveldb: get contract %s: %w", id, err)
	}

	var record contractRecord
	if err = json.Unmarshal(value, &record); err != nil {
		return contractRecord{}, fmt.Errorf("leveldb: decode contract %s: %w", id, err)
	}
	return record, nil
}

func (r *ContractRepository) put(key []byte, record contractRecord) error {
	value, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("leveldb: encode contract %s: %w", record.ID, err)
	}

	r.uow.batch.Put(key, value)
	return nil
}
