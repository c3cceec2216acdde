package queries_test

import (
	"context"
	"testing"
	"time"

	"workshop/internal/adapters/out/postgres"
	"workshop/internal/adapters/out/postgres/orderrepo"
	"workshop/internal/adapters/out/postgres/sessionrepo"
	"workshop/internal/adapters/out/postgres/taskrepo"
	"workshop/internal/core/application/usecases/queries"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/task"
	"workshop/internal/core/domain/model/worksession"
	"workshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// noopTracker implements the repositories' aggregateTracker for seeding.
type noopTracker struct{}

func (noopTracker) TrackAggregate(_ kernel.UUID, _ any) {}

type GetOrderSummaryQueryHandlerTestSuite struct {
	suite.Suite
	container   *pgcontainer.PostgresContainer
	db          *gorm.DB
	handler     queries.GetOrderSummaryQueryHandler
	orderRepo   *orderrepo.GormOrderRepository
	taskRepo    *taskrepo.GormTaskRepository
	sessionRepo *sessionrepo.GormSessionRepository
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) SetupSuite() {
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

	suite.handler = queries.NewGetOrderSummaryQueryHandler(db)
	suite.orderRepo = orderrepo.NewGormOrderRepository(db, noopTracker{})
	suite.taskRepo = taskrepo.NewGormTaskRepository(db, noopTracker{})
	suite.sessionRepo = sessionrepo.NewGormSessionRepository(db, noopTracker{})
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE work_sessions, tasks, orders CASCADE").Error)
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) seedOrder(base int) *order.Order {
	number, err := order.NewNumber(base, 1)
	suite.Require().NoError(err)
	o, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		kernel.NewUUID(),
		"walnut sideboard",
		decimal.RequireFromString("950.00"),
		order.UrgencyMedium,
		time.Now().UTC().Truncate(time.Microsecond),
		nil,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.orderRepo.Add(context.Background(), o))
	return o
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) seedTask(orderID kernel.UUID, title string) *task.Task {
	t, err := task.NewTask(kernel.NewUUID(), orderID, title, "", task.PriorityMedium, nil,
		time.Now().UTC().Truncate(time.Microsecond))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.taskRepo.Add(context.Background(), t))
	return t
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) seedClosedSession(
	taskID kernel.UUID,
	hours time.Duration,
) {
	start := time.Now().UTC().Add(-hours - time.Hour).Truncate(time.Microsecond)
	s, err := worksession.NewSession(kernel.NewUUID(), taskID, kernel.NewUUID(), start)
	suite.Require().NoError(err)
	suite.Require().NoError(s.Close(start.Add(hours), "done"))
	suite.Require().NoError(suite.sessionRepo.Add(context.Background(), s))
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) seedOpenSession(taskID kernel.UUID, age time.Duration) {
	s, err := worksession.NewSession(kernel.NewUUID(), taskID, kernel.NewUUID(),
		time.Now().UTC().Add(-age).Truncate(time.Microsecond))
	suite.Require().NoError(err)
	suite.Require().NoError(suite.sessionRepo.Add(context.Background(), s))
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TestHandle_ResolvesOrderTasksAndHours() {
	o := suite.seedOrder(1)
	cutting := suite.seedTask(o.ID(), "cut panels")
	finishing := suite.seedTask(o.ID(), "oil finish")

	suite.seedClosedSession(cutting.ID(), 2*time.Hour)
	suite.seedClosedSession(cutting.ID(), 30*time.Minute)
	suite.seedOpenSession(finishing.ID(), 45*time.Minute)

	query, err := queries.NewGetOrderSummaryQuery(o.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)

	suite.True(result.ID.IsEqual(o.ID()))
	suite.Equal("OS0001-1", result.Number)
	suite.Equal("walnut sideboard", result.Description)
	suite.True(result.SaleValue.Equal(decimal.RequireFromString("950.00")))
	suite.Equal(order.Pending, result.Status)
	suite.Require().Len(result.Tasks, 2)

	byTitle := make(map[string]queries.TaskSummaryResponse)
	for _, t := range result.Tasks {
		byTitle[t.Title] = t
	}

	cut := byTitle["cut panels"]
	suite.True(cut.ClosedHours.Equal(decimal.RequireFromString("2.5")), "got %s", cut.ClosedHours)
	suite.Equal(0, cut.OpenSessions)
	suite.True(cut.LiveHours.IsZero())

	finish := byTitle["oil finish"]
	suite.True(finish.ClosedHours.IsZero())
	suite.Equal(1, finish.OpenSessions)
	suite.True(finish.LiveHours.GreaterThanOrEqual(decimal.RequireFromString("0.7")),
		"got %s", finish.LiveHours)
	suite.True(finish.LiveHours.LessThan(decimal.NewFromInt(1)))

	suite.True(result.TotalClosedHours.Equal(decimal.RequireFromString("2.5")))
	suite.True(result.TotalLiveHours.Equal(finish.LiveHours))
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TestHandle_ExcludesTombstonedTasks() {
	o := suite.seedOrder(2)
	suite.seedTask(o.ID(), "assemble frame")
	buried := suite.seedTask(o.ID(), "abandoned draft")
	suite.Require().NoError(buried.MarkDeleted(time.Now().UTC()))
	suite.Require().NoError(suite.taskRepo.Update(context.Background(), buried))

	query, err := queries.NewGetOrderSummaryQuery(o.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.Require().Len(result.Tasks, 1)
	suite.Equal("assemble frame", result.Tasks[0].Title)
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TestHandle_NoTasks_ReturnsEmptySlice() {
	o := suite.seedOrder(3)

	query, err := queries.NewGetOrderSummaryQuery(o.ID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(result.Tasks)
	suite.Empty(result.Tasks)
	suite.True(result.TotalClosedHours.IsZero())
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TestHandle_UnknownOrder_ReturnsNotFound() {
	query, err := queries.NewGetOrderSummaryQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	result, err := suite.handler.Handle(context.Background(), query)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
	suite.Nil(result)
}

func (suite *GetOrderSummaryQueryHandlerTestSuite) TestHandle_InvalidQuery_ReturnsError() {
	result, err := suite.handler.Handle(context.Background(), queries.GetOrderSummaryQuery{})
	suite.Require().Error(err)
	suite.Nil(result)
	suite.Contains(err.Error(), "must be created via NewGetOrderSummaryQuery constructor")
}

func TestGetOrderSummaryQueryHandlerTestSuite(t *testing.T) {
	suite.Run(t, new(GetOrderSummaryQueryHandlerTestSuite))
}
