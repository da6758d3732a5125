package commands_test

import (
	"errors"
	"testing"
	"time"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/ports"
	"supplychain/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newOutboxMessages(n int) []ports.OutboxMessage {
	messages := make([]ports.OutboxMessage, 0, n)
	for range n {
		id, _ := kernel.NewTimeOrderedUUID()
		messages = append(messages, ports.OutboxMessage{
			ID:          id,
			Name:        "ContractCreated",
			AggregateID: kernel.NewUUID(),
			OccurredAt:  time.Now().UTC(),
			Payload:     []byte(`{}`),
		})
	}
	return messages
}

func TestNewRelayOutboxCommand(t *testing.T) {
	cmd, err := commands.NewRelayOutboxCommand(10)
	require.NoError(t, err)
	require.NoError(t, cmd.Validate())
	assert.Equal(t, 10, cmd.BatchSize())

	_, err = commands.NewRelayOutboxCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)

	require.ErrorIs(t, commands.RelayOutboxCommand{}.Validate(), commands.ErrRelayOutboxCommandIsNotConstructed)
}

func TestRelayOutboxCommandHandler_Handle_PublishesAndMarks(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRelayOutboxCommand(10)
	messages := newOutboxMessages(2)

	repo := new(MockOutboxRepository)
	uow := new(MockOutboxUoW)
	publisher := new(MockEventPublisher)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OutboxRepository").Return(repo).Once(),
		repo.On("GetUnprocessed", ctx, 10).Return(messages, nil).Once(),
		publisher.On("Publish", ctx, messages[0]).Return(nil).Once(),
		publisher.On("Publish", ctx, messages[1]).Return(nil).Once(),
		repo.On("MarkProcessed", ctx, []kernel.UUID{messages[0].ID, messages[1].ID}).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)
	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRelayOutboxCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)

	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	publisher.AssertExpectations(t)
}

func TestRelayOutboxCommandHandler_Handle_EmptyOutbox(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRelayOutboxCommand(5)

	repo := new(MockOutboxRepository)
	uow := new(MockOutboxUoW)
	publisher := new(MockEventPublisher)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OutboxRepository").Return(repo).Once()
	repo.On("GetUnprocessed", ctx, 5).Return([]ports.OutboxMessage{}, nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRelayOutboxCommandHandler(factory, publisher)

	require.NoError(t, h.Handle(ctx, cmd))
	publisher.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestRelayOutboxCommandHandler_Handle_PublishFailureStopsBatch(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRelayOutboxCommand(10)
	messages := newOutboxMessages(3)

	repo := new(MockOutboxRepository)
	uow := new(MockOutboxUoW)
	publisher := new(MockEventPublisher)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OutboxRepository").Return(repo).Once()
	repo.On("GetUnprocessed", ctx, 10).Return(messages, nil).Once()
	publisher.On("Publish", ctx, messages[0]).Return(nil).Once()
	publisher.On("Publish", ctx, messages[1]).Return(errors.New("subscriber down")).Once()
	repo.On("MarkProcessed", ctx, []kernel.UUID{messages[0].ID}).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRelayOutboxCommandHandler(factory, publisher)
	err := h.Handle(ctx, cmd)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "subscriber down")
	publisher.AssertNotCalled(t, "Publish", ctx, messages[2])
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestRelayOutboxCommandHandler_Handle_FirstPublishFails(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewRelayOutboxCommand(10)
	messages := newOutboxMessages(1)

	repo := new(MockOutboxRepository)
	uow := new(MockOutboxUoW)
	publisher := new(MockEventPublisher)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OutboxRepository").Return(repo).Once()
	repo.On("GetUnprocessed", ctx, 10).Return(messages, nil).Once()
	publisher.On("Publish", ctx, messages[0]).Return(errors.New("boom")).Once()
	uow.On("Rollback", ctx).Return(nil).Once()
	factory := new(MockOutboxUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewRelayOutboxCommandHandler(factory, publisher)

	require.Error(t, h.Handle(ctx, cmd))
	repo.AssertNotCalled(t, "MarkProcessed", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
