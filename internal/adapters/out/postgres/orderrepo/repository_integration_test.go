package orderrepo_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"workshop/internal/adapters/out/postgres"
	"workshop/internal/adapters/out/postgres/orderrepo"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker implements the aggregateTracker interface for tests that do
// not assert tracking behavior.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// OrderRepositoryIntegrationTestSuite verifies order persistence behavior
// against a real PostgreSQL instance.
type OrderRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *pgcontainer.PostgresContainer
	db         *gorm.DB
	repository *orderrepo.GormOrderRepository
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := pgcontainer.Run(ctx,
		"postgres:15-alpine",
		pgcontainer.WithDatabase("testdb"),
		pgcontainer.WithUsername("testuser"),
		pgcontainer.WithPassword("testpass"),
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

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{TranslateError: true})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(postgres.Migrate(db))
}

func (suite *OrderRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE orders CASCADE").Error)
	suite.repository = orderrepo.NewGormOrderRepository(suite.db, noopTracker{})
}

func (suite *OrderRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *OrderRepositoryIntegrationTestSuite) newOrder(number order.Number) *order.Order {
	deadline := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	o, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		kernel.NewUUID(),
		"kitchen cabinet set",
		decimal.RequireFromString("1200.00"),
		order.UrgencyHigh,
		time.Now().UTC().Truncate(time.Microsecond),
		&deadline,
	)
	suite.Require().NoError(err)
	return o
}

func (suite *OrderRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	number, err := order.NewNumber(12, 1)
	suite.Require().NoError(err)
	o := suite.newOrder(number)

	suite.Require().NoError(suite.repository.Add(ctx, o))

	restored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(o.ID()))
	suite.True(restored.Number().IsEqual(o.Number()))
	suite.Equal(o.Description(), restored.Description())
	suite.True(restored.SaleValue().Equal(o.SaleValue()))
	suite.Equal(order.UrgencyHigh, restored.Urgency())
	suite.Equal(order.Pending, restored.Status())
	suite.Require().NotNil(restored.Deadline())
	suite.True(restored.Deadline().Equal(*o.Deadline()))
	suite.Nil(restored.Worker())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGet_Missing_ReturnsNotFound() {
	_, err := suite.repository.Get(context.Background(), kernel.NewUUID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestGetByNumber() {
	ctx := context.Background()
	number, err := order.NewNumber(33, 2)
	suite.Require().NoError(err)
	o := suite.newOrder(number)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	restored, err := suite.repository.GetByNumber(ctx, number)
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(o.ID()))
}

func (suite *OrderRepositoryIntegrationTestSuite) TestUpdate_PersistsStatusAndWorker() {
	ctx := context.Background()
	number, err := order.NewNumber(7, 1)
	suite.Require().NoError(err)
	o := suite.newOrder(number)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	workerID := kernel.NewUUID()
	suite.Require().NoError(o.AssignWorker(workerID))
	suite.Require().NoError(o.StartWork())
	suite.Require().NoError(suite.repository.Update(ctx, o))

	restored, err := suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Production, restored.Status())
	suite.Require().NotNil(restored.Worker())
	suite.True(restored.Worker().IsEqual(workerID))

	// Unassignment must null the column out again.
	suite.Require().NoError(o.UnassignWorker())
	suite.Require().NoError(suite.repository.Update(ctx, o))

	restored, err = suite.repository.Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Nil(restored.Worker())
}

func (suite *OrderRepositoryIntegrationTestSuite) TestNextNumber_EmptyTable_StartsAtOne() {
	ctx := context.Background()

	err := suite.db.Transaction(func(tx *gorm.DB) error {
		repo := orderrepo.NewGormOrderRepository(tx, noopTracker{})
		number, nErr := repo.NextNumber(ctx)
		suite.Require().NoError(nErr)
		suite.Equal("OS0001-1", number.String())
		return nil
	})
	suite.Require().NoError(err)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestNextNumber_ConcurrentAllocationsAreUnique() {
	ctx := context.Background()
	const workers = 8

	var wg sync.WaitGroup
	numbers := make(chan string, workers)

	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := suite.db.Transaction(func(tx *gorm.DB) error {
				repo := orderrepo.NewGormOrderRepository(tx, noopTracker{})
				number, nErr := repo.NextNumber(ctx)
				if nErr != nil {
					return nErr
				}
				if aErr := repo.Add(ctx, suite.newOrder(number)); aErr != nil {
					return aErr
				}
				numbers <- number.String()
				return nil
			})
			suite.NoError(err)
		}()
	}
	wg.Wait()
	close(numbers)

	seen := make(map[string]bool)
	for n := range numbers {
		suite.False(seen[n], "number %s allocated twice", n)
		seen[n] = true
	}
	suite.Len(seen, workers)
}

func (suite *OrderRepositoryIntegrationTestSuite) TestDelete_RemovesRow() {
	ctx := context.Background()
	number, err := order.NewNumber(5, 1)
	suite.Require().NoError(err)
	o := suite.newOrder(number)
	suite.Require().NoError(suite.repository.Add(ctx, o))

	suite.Require().NoError(suite.repository.Delete(ctx, o.ID()))

	_, err = suite.repository.Get(ctx, o.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func TestOrderRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(OrderRepositoryIntegrationTestSuite))
}
