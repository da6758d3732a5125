package commands_test

import (
	"errors"
	"testing"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/contract"
	"supplychain/internal/core/domain/model/contract/contracttest"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestMarkContractAsDeliveredCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	aggregate := contracttest.Contract(t)
	aggregate.ClearDomainEvents()
	cmd, _ := commands.NewMarkContractAsDeliveredCommand(aggregate.ID(), contracttest.ActualDeliveryTime)

	repo := new(MockContractRepository)
	uow := new(MockContractUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ContractRepository").Return(repo).Once(),
		repo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once(),
		repo.On("Update", ctx, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockContractUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkContractAsDeliveredCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	assert.Equal(t, contract.Delivered, aggregate.Status())
	assert.Equal(t, int64(contracttest.ActualDeliveryTime), aggregate.ActualDeliveryTime())
	assert.Len(t, aggregate.DomainEvents(), 1)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestMarkContractAsDeliveredCommandHandler_Handle_NotFound(t *testing.T) {
	ctx := t.Context()
	aggregate := contracttest.Contract(t)
	cmd, _ := commands.NewMarkContractAsDeliveredCommand(aggregate.ID(), contracttest.ActualDeliveryTime)

	repo := new(MockContractRepository)
	uow := new(MockContractUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ContractRepository").Return(repo).Once()
	repo.On("GetForUpdate", ctx, aggregate.ID()).
		Return(nil, errs.NewObjectNotFoundError("contract", aggregate.ID().String())).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockContractUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkContractAsDeliveredCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.True(t, errs.IsNotFound(err))
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestMarkContractAsDeliveredCommandHandler_Handle_AlreadyDelivered(t *testing.T) {
	ctx := t.Context()
	aggregate := contracttest.Contract(t)
	require.NoError(t, aggregate.MarkAsDelivered(contracttest.ActualDeliveryTime))
	cmd, _ := commands.NewMarkContractAsDeliveredCommand(aggregate.ID(), 1700000000)

	repo := new(MockContractRepository)
	uow := new(MockContractUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ContractRepository").Return(repo).Once()
	repo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockContractUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkContractAsDeliveredCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.True(t, errs.IsInvalidState(err))
	assert.Equal(t, int64(contracttest.ActualDeliveryTime), aggregate.ActualDeliveryTime())
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestMarkContractAsDeliveredCommandHandler_Handle_UpdateError(t *testing.T) {
	ctx := t.Context()
	aggregate := contracttest.Contract(t)
	cmd, _ := commands.NewMarkContractAsDeliveredCommand(aggregate.ID(), contracttest.ActualDeliveryTime)

	repo := new(MockContractRepository)
	uow := new(MockContractUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ContractRepository").Return(repo).Once()
	repo.On("GetForUpdate", ctx, aggregate.ID()).Return(aggregate, nil).Once()
	repo.On("Update", ctx, aggregate).Return(errors.New("update error")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockContractUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkContractAsDeliveredCommandHandler(factory)
	err := h.Handle(ctx, cmd)

	require.EqualError(t, err, "update error")
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestMarkContractAsDeliveredCommandHandler_Handle_ValidationError(t *testing.T) {
	factory := new(MockContractUoWFactory)
	h := commands.NewMarkContractAsDeliveredCommandHandler(factory)

	err := h.Handle(t.Context(), commands.MarkContractAsDeliveredCommand{})

	require.ErrorIs(t, err, commands.ErrMarkContractAsDeliveredCommandIsNotConstructed)
	factory.AssertNotCalled(t, "Create")
}
