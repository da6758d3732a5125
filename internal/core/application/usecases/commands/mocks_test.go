package commands_test

import (
	"context"

	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/domain/model/contract"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockContractRepository struct{ mock.Mock }

func (m *MockContractRepository) Add(ctx context.Context, c *contract.Contract) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContractRepository) Update(ctx context.Context, c *contract.Contract) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockContractRepository) Get(ctx context.Context, id kernel.UUID) (*contract.Contract, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*contract.Contract); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockContractRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*contract.Contract, error) {
	args := m.Called(ctx, id)
	if c, ok := args.Get(0).(*contract.Contract); ok {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockContractRepository) ListByStatus(ctx context.Context, status *contract.Status) ([]*contract.Contract, error) {
	args := m.Called(ctx, status)
	if cs, ok := args.Get(0).([]*contract.Contract); ok {
		return cs, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockContractUoW struct{ mock.Mock }

func (m *MockContractUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockContractUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockContractUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockContractUoW) ContractRepository() ports.ContractRepository {
	args := m.Called()
	return args.Get(0).(ports.ContractRepository)
}

type MockContractUoWFactory struct{ mock.Mock }

func (m *MockContractUoWFactory) Create() commands.ContractUoW {
	args := m.Called()
	return args.Get(0).(commands.ContractUoW)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) GetUnprocessed(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	if msgs, ok := args.Get(0).([]ports.OutboxMessage); ok {
		return msgs, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOutboxRepository) MarkProcessed(ctx context.Context, ids ...kernel.UUID) error {
	args := m.Called(ctx, ids)
	return args.Error(0)
}

type MockOutboxUoW struct{ mock.Mock }

func (m *MockOutboxUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOutboxUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOutboxUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockOutboxUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

type MockOutboxUoWFactory struct{ mock.Mock }

func (m *MockOutboxUoWFactory) Create() commands.OutboxUoW {
	args := m.Called()
	return args.Get(0).(commands.OutboxUoW)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, message ports.OutboxMessage) error {
	args := m.Called(ctx, message)
	return args.Error(0)
}
