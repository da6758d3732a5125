package contractrepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"supplychain/internal/core/domain/model/contract"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormContractRepository implements ContractRepository using GORM.
type GormContractRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

type nopTracker struct{}

func (nopTracker) TrackAggregate(kernel.UUID, any) {}

// NewGormContractRepository creates a new GORM contract repository.
func NewGormContractRepository(db *gorm.DB, tracker aggregateTracker) *GormContractRepository {
	return &GormContractRepository{
		db:      db,
		tracker: tracker,
	}
}

// NewGormContractReader creates a repository for reads outside a unit of work.
func NewGormContractReader(db *gorm.DB) *GormContractRepository {
	return NewGormContractRepository(db, nopTracker{})
}

// Add saves a new contract and its line items.
func (r *GormContractRepository) Add(ctx context.Context, aggregate *contract.Contract) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	dto.Version = 1
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves the delivery state of an existing contract.
// The row is only written if its version still matches the loaded aggregate.
func (r *GormContractRepository) Update(ctx context.Context, aggregate *contract.Contract) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&ContractDTO{}).
		Where("id = ? AND version = ?", aggregate.ID().Bytes(), aggregate.Version()).
		Updates(map[string]any{
			"status":               int(aggregate.Status()),
			"actual_delivery_time": aggregate.ActualDeliveryTime(),
			"version":              gorm.Expr("version + 1"),
			"updated_at":           time.Now().UTC(),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&ContractDTO{}).
			Where("id = ?", aggregate.ID().Bytes()).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("contract", aggregate.ID().String())
		}
		return errs.NewVersionIsInvalidErrorWithCause(
			"contract version",
			fmt.Errorf("contract %s was changed after version %d was loaded", aggregate.ID(), aggregate.Version()),
		)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves a contract by key.
func (r *GormContractRepository) Get(ctx context.Context, id kernel.UUID) (*contract.Contract, error) {
	return r.get(r.db.WithContext(ctx), id)
}

// GetForUpdate retrieves a contract with SELECT ... FOR UPDATE; the row stays
// locked until the surrounding transaction ends.
func (r *GormContractRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*contract.Contract, error) {
	return r.get(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), id)
}

// ListByStatus retrieves contracts ordered by key, optionally filtered by status.
func (r *GormContractRepository) ListByStatus(ctx context.Context, status *contract.Status) ([]*contract.Contract, error) {
	query := r.db.WithContext(ctx).Preload("Items", orderItems).Order("id")
	if status != nil {
		query = query.Where("status = ?", int(*status))
	}

	var dtos []ContractDTO
	if err := query.Find(&dtos).Error; err != nil {
		return nil, err
	}

	contracts := make([]*contract.Contract, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		contracts = append(contracts, c)
	}
	return contracts, nil
}

func (r *GormContractRepository) get(db *gorm.DB, id kernel.UUID) (*contract.Contract, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ContractDTO
	if err := db.Preload("Items", orderItems).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("contract", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

func orderItems(db *gorm.DB) *gorm.DB {
	return db.Order("position")
}
