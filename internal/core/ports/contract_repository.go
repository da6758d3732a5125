// Package ports defines the persistence and messaging contracts of the registry.
// These interfaces establish contracts between the application layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import (
	"context"

	"supplychain/internal/core/domain/model/contract"
	"supplychain/internal/core/domain/model/kernel"
)

// ContractReader gives read-only access to stored contracts.
// Query handlers depend on it directly, outside any unit of work.
type ContractReader interface {
	// Get retrieves a consistent snapshot of a contract by key.
	// Returns an ObjectNotFoundError if the key is unknown.
	Get(ctx context.Context, id kernel.UUID) (*contract.Contract, error)

	// ListByStatus retrieves all contracts, optionally restricted to one status.
	// A nil status returns every record. Results are ordered by key.
	ListByStatus(ctx context.Context, status *contract.Status) ([]*contract.Contract, error)
}

// ContractRepository defines the persistence contract for contract aggregates.
// Implementations store a record and its line items as one unit.
type ContractRepository interface {
	ContractReader

	// Add persists a new contract aggregate.
	// Fails if a record with the same key already exists.
	Add(ctx context.Context, aggregate *contract.Contract) error

	// Update persists the delivery state of an existing contract aggregate.
	// Terms are immutable and are never rewritten. Fails with a
	// VersionIsInvalidError if the stored version moved since the aggregate was loaded.
	Update(ctx context.Context, aggregate *contract.Contract) error

	// GetForUpdate retrieves a contract and holds an exclusive lock on its key
	// until the enclosing unit of work commits or rolls back. Concurrent
	// GetForUpdate calls for the same key wait for that lock, which makes
	// read-check-write on one record a single critical section.
	GetForUpdate(ctx context.Context, id kernel.UUID) (*contract.Contract, error)
}
