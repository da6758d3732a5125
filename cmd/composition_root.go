package cmd

import (
	"context"
	"log/slog"

	httpadapter "supplychain/internal/adapters/in/http"
	"supplychain/internal/adapters/out/eventbus"
	"supplychain/internal/adapters/out/leveldb"
	"supplychain/internal/adapters/out/postgres"
	"supplychain/internal/adapters/out/postgres/contractrepo"
	"supplychain/internal/core/application/registry"
	"supplychain/internal/core/application/usecases/commands"
	"supplychain/internal/core/application/usecases/queries"
	"supplychain/internal/core/domain/model/contract"
	"supplychain/internal/core/ports"
	"supplychain/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	logger     *slog.Logger
	uowFactory ports.UnitOfWorkFactory
	reader     ports.ContractReader
	bus        *eventbus.Bus
}

// NewLevelDBCompositionRoot wires the application over the embedded store.
func NewLevelDBCompositionRoot(config Config, store *leveldb.Store, logger *slog.Logger) *CompositionRoot {
	return newCompositionRoot(config, leveldb.NewUnitOfWorkFactory(store), store.ContractReader(), logger)
}

// NewPostgresCompositionRoot wires the application over postgres.
func NewPostgresCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) *CompositionRoot {
	return newCompositionRoot(config, postgres.NewGormUnitOfWorkFactory(gormDB), contractrepo.NewGormContractReader(gormDB), logger)
}

func newCompositionRoot(
	config Config,
	uowFactory ports.UnitOfWorkFactory,
	reader ports.ContractReader,
	logger *slog.Logger,
) *CompositionRoot {
	c := &CompositionRoot{
		config:     config,
		logger:     logger,
		uowFactory: uowFactory,
		reader:     reader,
		bus:        eventbus.New(logger),
	}

	events := logger.With("component", "events")
	logEvent := func(ctx context.Context, message ports.OutboxMessage) error {
		events.InfoContext(ctx, "contract event",
			"event", message.Name,
			"event_id", message.ID.String(),
			"contract_id", message.AggregateID.String(),
			"occurred_at", message.OccurredAt,
		)
		return nil
	}
	c.bus.Subscribe(contract.CreatedEventName, logEvent)
	c.bus.Subscribe(contract.DeliveredEventName, logEvent)

	return c
}

// EventBus returns the bus relayed events are published to.
func (c *CompositionRoot) EventBus() *eventbus.Bus {
	return c.bus
}

func (c *CompositionRoot) CreateCreateContractCommandHandler() commands.CreateContractCommandHandler {
	return commands.NewCreateContractCommandHandler(c.contractUoWFactory())
}

func (c *CompositionRoot) CreateMarkContractAsDeliveredCommandHandler() commands.MarkContractAsDeliveredCommandHandler {
	return commands.NewMarkContractAsDeliveredCommandHandler(c.contractUoWFactory())
}

func (c *CompositionRoot) CreateRelayOutboxCommandHandler() commands.RelayOutboxCommandHandler {
	var f commands.OutboxUoWFactory = FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRelayOutboxCommandHandler(f, c.bus)
}

func (c *CompositionRoot) CreateGetContractQueryHandler() queries.GetContractQueryHandler {
	return queries.NewGetContractQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateListContractsQueryHandler() queries.ListContractsQueryHandler {
	return queries.NewListContractsQueryHandler(c.reader)
}

func (c *CompositionRoot) CreateRegistry() *registry.Registry {
	create := c.CreateCreateContractCommandHandler()
	deliver := c.CreateMarkContractAsDeliveredCommandHandler()

	return registry.New(
		&create,
		&deliver,
		c.CreateGetContractQueryHandler(),
		c.CreateListContractsQueryHandler(),
	)
}

func (c *CompositionRoot) CreateRouter() (*echo.Echo, error) {
	return httpadapter.NewRouter(httpadapter.NewServer(c.CreateRegistry(), c.logger), c.logger)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	relay := c.CreateRelayOutboxCommandHandler()

	relayJob, err := jobs.NewOutboxRelayJob(&relay, c.config.OutboxBatchSize, c.config.OutboxRelaySchedule, c.logger)
	if err != nil {
		return nil, err
	}

	return jobs.NewJobManager(relayJob), nil
}

func (c *CompositionRoot) contractUoWFactory() commands.ContractUoWFactory {
	return FuncContractUoWFactory(func() commands.ContractUoW {
		return c.uowFactory.Create()
	})
}

type FuncContractUoWFactory func() commands.ContractUoW

func (f FuncContractUoWFactory) Create() commands.ContractUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
