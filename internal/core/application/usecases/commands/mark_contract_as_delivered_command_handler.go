package commands

import (
	"context"
)

// MarkContractAsDeliveredCommandHandler records the delivery of a contract.
//
// The record is loaded with GetForUpdate, so the status check and the write
// happen while the key is locked. Of two concurrent deliveries of one record
// exactly one succeeds; the other sees Delivered and fails with a
// StateTransitionIsInvalidError.
type MarkContractAsDeliveredCommandHandler struct {
	uowFactory ContractUoWFactory
}

// NewMarkContractAsDeliveredCommandHandler creates a handler for delivery commands.
func NewMarkContractAsDeliveredCommandHandler(uowFactory ContractUoWFactory) MarkContractAsDeliveredCommandHandler {
	return MarkContractAsDeliveredCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the delivery command.
// Returns an ObjectNotFoundError for unknown keys and leaves the record
// untouched on any failure.
func (h *MarkContractAsDeliveredCommandHandler) Handle(ctx context.Context, cmd MarkContractAsDeliveredCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.ContractRepository()
	aggregate, err := repo.GetForUpdate(ctx, cmd.ContractID())
	if err != nil {
		return err
	}

	if err = aggregate.MarkAsDelivered(cmd.ActualDeliveryTime()); err != nil {
		return err
	}

	if err = repo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
