package outboxrepo_test

import (
	"context"
	"testing"
	"time"

	"supplychain/internal/adapters/out/postgres/outboxrepo"
	"supplychain/internal/core/domain/model/kernel"
	"supplychain/internal/core/ports"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type OutboxRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *outboxrepo.GormOutboxRepository
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&outboxrepo.MessageDTO{}))
	suite.repository = outboxrepo.NewGormOutboxRepository(db)
}

func (suite *OutboxRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE outbox").Error)
}

func (suite *OutboxRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OutboxRepositoryIntegrationTestSuite) messages(n int) []ports.OutboxMessage {
	messages := make([]ports.OutboxMessage, 0, n)
	for range n {
		id, err := kernel.NewTimeOrderedUUID()
		suite.Require().NoError(err)
		messages = append(messages, ports.OutboxMessage{
			ID:          id,
			Name:        "ContractCreated",
			AggregateID: kernel.NewUUID(),
			OccurredAt:  time.Now().UTC().Truncate(time.Microsecond),
			Payload:     []byte(`{"purchase_order_id": 4}`),
		})
	}
	return messages
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestGetUnprocessed_OldestFirstWithLimit() {
	ctx := context.Background()
	stored := suite.messages(3)
	suite.Require().NoError(suite.repository.Add(ctx, stored...))

	batch, err := suite.repository.GetUnprocessed(ctx, 2)

	suite.Require().NoError(err)
	suite.Require().Len(batch, 2)
	suite.True(stored[0].ID.IsEqual(batch[0].ID))
	suite.True(stored[1].ID.IsEqual(batch[1].ID))
	suite.Equal(stored[0].Name, batch[0].Name)
	suite.True(stored[0].AggregateID.IsEqual(batch[0].AggregateID))
	suite.JSONEq(string(stored[0].Payload), string(batch[0].Payload))
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestMarkProcessed_HidesMessages() {
	ctx := context.Background()
	stored := suite.messages(2)
	suite.Require().NoError(suite.repository.Add(ctx, stored...))

	suite.Require().NoError(suite.repository.MarkProcessed(ctx, stored[0].ID))

	rest, err := suite.repository.GetUnprocessed(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(rest, 1)
	suite.True(stored[1].ID.IsEqual(rest[0].ID))
}

func (suite *OutboxRepositoryIntegrationTestSuite) TestGetUnprocessed_SkipsRowsLockedByAnotherRelay() {
	ctx := context.Background()
	suite.Require().NoError(suite.repository.Add(ctx, suite.messages(2)...))

	tx := suite.db.Begin()
	suite.Require().NoError(tx.Error)
	defer tx.Rollback()

	first, err := outboxrepo.NewGormOutboxRepository(tx).GetUnprocessed(ctx, 1)
	suite.Require().NoError(err)
	suite.Require().Len(first, 1)

	second, err := suite.repository.GetUnprocessed(ctx, 10)
	suite.Require().NoError(err)
	suite.Require().Len(second, 1)
	suite.False(first[0].ID.IsEqual(second[0].ID))
}

func TestOutboxRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OutboxRepositoryIntegrationTestSuite))
}
