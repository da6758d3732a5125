// Package registry exposes the contract registry operations as one facade over
// the command and query handlers.
//
// A Registry is built explicitly at service start and passed to the inbound
// adapters. Each call runs in its own unit of work; calls on different keys
// never wait for each other.
package registry

import (
	"context"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/contract"
	"supplychain/internal/core/domain/model/kernel"
)

type (
	// CreateContractHandler handles CreateContractCommand.
	CreateContractHandler interface {
		Handle(ctx context.Context, cmd commands.CreateContractCommand) (kernel.UUID, error)
	}

	// MarkContractAsDeliveredHandler handles MarkContractAsDeliveredCommand.
	MarkContractAsDeliveredHandler interface {
		Handle(ctx context.Context, cmd commands.MarkContractAsDeliveredCommand) error
	}

	// GetContractHandler handles GetContractQuery.
	GetContractHandler interface {
		Handle(ctx context.Context, query queries.GetContractQuery) (queries.ContractResponse, error)
	}

	// ListContractsHandler handles ListContractsQuery.
	ListContractsHandler interface {
		Handle(ctx context.Context, query queries.ListContractsQuery) ([]queries.ContractResponse, error)
	}
)

// Registry is the contract registry.
type Registry struct {
	create  CreateContractHandler
	deliver MarkContractAsDeliveredHandler
	get     GetContractHandler
	list    ListContractsHandler
}

// New creates a registry from its handlers.
func New(
	create CreateContractHandler,
	deliver MarkContractAsDeliveredHandler,
	get GetContractHandler,
	list ListContractsHandler,
) *Registry {
	return &Registry{
		create:  create,
		deliver: deliver,
		get:     get,
		list:    list,
	}
}

// CreateContract validates terms, stores a new Created record and returns its key.
// Nothing is stored when validation fails.
func (r *Registry) CreateContract(ctx context.Context, terms contract.Terms) (kernel.UUID, error) {
	cmd, err := commands.NewCreateContractCommand(terms)
	if err != nil {
		return kernel.UUID{}, err
	}

	return r.create.Handle(ctx, cmd)
}

// MarkContractAsDelivered records the actual delivery time of the record under key.
// Fails with an ObjectNotFoundError for unknown keys and a
// StateTransitionIsInvalidError if the record is already Delivered.
func (r *Registry) MarkContractAsDelivered(ctx context.Context, key kernel.UUID, actualDeliveryTime int64) error {
	cmd, err := commands.NewMarkContractAsDeliveredCommand(key, actualDeliveryTime)
	if err != nil {
		return err
	}

	return r.deliver.Handle(ctx, cmd)
}

// GetContract returns a snapshot of the record under key.
func (r *Registry) GetContract(ctx context.Context, key kernel.UUID) (queries.ContractResponse, error) {
	query, err := queries.NewGetContractQuery(key)
	if err != nil {
		return queries.ContractResponse{}, err
	}

	return r.get.Handle(ctx, query)
}

// ListContracts returns every record, or only those in status when it is not nil.
func (r *Registry) ListContracts(ctx context.Context, status *contract.Status) ([]queries.ContractResponse, error) {
	query, err := queries.NewListContractsQuery(status)
	if err != nil {
		return nil, err
	}

	return r.list.Handle(ctx, query)
}
