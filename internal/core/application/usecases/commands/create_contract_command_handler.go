package commands

import (
	"context"

	"supplychain/internal/core/domain/model/contract"
	"supplychain/internal/core/domain/model/kernel"
)

// CreateContractCommandHandler handles contract creation.
// Allocates a fresh key, builds the aggregate in Created status and stores it
// together with its ContractCreated event.
//
// Example:
//
//	handler := NewCreateContractCommandHandler(uowFactory)
//	key, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    return fmt.Errorf("contract creation failed: %w", err)
//	}
type CreateContractCommandHandler struct {
	uowFactory ContractUoWFactory
}

// NewCreateContractCommandHandler creates a handler for contract creation.
func NewCreateContractCommandHandler(uowFactory ContractUoWFactory) CreateContractCommandHandler {
	return CreateContractCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the creation command and returns the allocated key.
// Nothing is stored unless the whole record is written.
func (h *CreateContractCommandHandler) Handle(ctx context.Context, cmd CreateContractCommand) (kernel.UUID, error) {
	if err := cmd.Validate(); err != nil {
		return kernel.UUID{}, err
	}

	aggregate, err := contract.NewContract(kernel.NewUUID(), cmd.Terms())
	if err != nil {
		return kernel.UUID{}, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return kernel.UUID{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.ContractRepository().Add(ctx, aggregate); err != nil {
		return kernel.UUID{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return kernel.UUID{}, err
	}

	return aggregate.ID(), nil
}
