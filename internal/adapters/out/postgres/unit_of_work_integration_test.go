package postgres_test

import (
	"context"
	"testing"
	"time"

	"workshop/internal/adapters/out/postgres"
	"workshop/internal/core/domain/model/invoice"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/ports"
	"workshop/internal/pkg/errs"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	pgcontainer "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// UnitOfWorkIntegrationTestSuite verifies that repository writes made through
// one unit of work commit and roll back together.
type UnitOfWorkIntegrationTestSuite struct {
	suite.Suite
	container *pgcontainer.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupSuite() {
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
	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec(`TRUNCATE TABLE
		invoice_extra_charges, invoice_order_summaries, invoices,
		consumption_records, inventory_items,
		work_sessions, tasks, orders CASCADE`).Error
	suite.Require().NoError(err)
}

func (suite *UnitOfWorkIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

// newBillableOrder builds an order walked to ToInvoice, the only state the
// invoice aggregator accepts.
func (suite *UnitOfWorkIntegrationTestSuite) newBillableOrder(base int) *order.Order {
	number, err := order.NewNumber(base, 1)
	suite.Require().NoError(err)
	o, err := order.NewOrder(
		kernel.NewUUID(),
		number,
		kernel.NewUUID(),
		"garden bench",
		decimal.RequireFromString("300.00"),
		order.UrgencyMedium,
		time.Now().UTC(),
		nil,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(o.StartWork())
	suite.Require().NoError(o.CompleteTasks())
	suite.Require().NoError(o.ReviewQuality(true))
	suite.Require().NoError(o.ConfirmPickup())
	return o
}

func (suite *UnitOfWorkIntegrationTestSuite) addOrder(o *order.Order) {
	uow := suite.factory.Create()
	ctx := context.Background()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkIntegrationTestSuite) newInvoiceFor(o *order.Order) *invoice.Invoice {
	summary, err := invoice.NewOrderSummary(
		o.ID(), o.Number(), o.SaleValue(), decimal.RequireFromString("4.25"))
	suite.Require().NoError(err)

	periodStart := time.Date(2025, 4, 1, 0, 0, 0, 0, time.UTC)
	inv, err := invoice.NewInvoice(
		kernel.NewUUID(),
		o.ClientID(),
		periodStart,
		periodStart.AddDate(0, 1, 0),
		[]invoice.OrderSummary{summary},
		nil,
		time.Now().UTC(),
	)
	suite.Require().NoError(err)
	return inv
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommit_PersistsAcrossRepositories() {
	ctx := context.Background()
	o := suite.newBillableOrder(1)
	suite.addOrder(o)

	// Billing flow: mark the order invoiced and write the invoice in one
	// transaction.
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loaded, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.MarkInvoiced())
	suite.Require().NoError(uow.OrderRepository().Update(ctx, loaded))

	inv := suite.newInvoiceFor(loaded)
	suite.Require().NoError(uow.InvoiceRepository().Add(ctx, inv))
	suite.Require().NoError(uow.Commit(ctx))

	// Both writes are visible after commit.
	verify := suite.factory.Create()
	persistedOrder, err := verify.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Invoiced, persistedOrder.Status())

	persistedInvoice, err := verify.InvoiceRepository().Get(ctx, inv.ID())
	suite.Require().NoError(err)
	suite.True(persistedInvoice.TotalValue().Equal(inv.TotalValue()))
	suite.Require().Len(persistedInvoice.OrderSummaries(), 1)
	suite.True(persistedInvoice.OrderSummaries()[0].OrderID.IsEqual(o.ID()))

	exists, err := verify.InvoiceRepository().ExistsForOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(exists)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRollback_DiscardsAllWrites() {
	ctx := context.Background()
	o := suite.newBillableOrder(2)
	suite.addOrder(o)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))

	loaded, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.MarkInvoiced())
	suite.Require().NoError(uow.OrderRepository().Update(ctx, loaded))

	inv := suite.newInvoiceFor(loaded)
	suite.Require().NoError(uow.InvoiceRepository().Add(ctx, inv))
	suite.Require().NoError(uow.Rollback(ctx))

	// Neither the status change nor the invoice survived.
	verify := suite.factory.Create()
	persistedOrder, err := verify.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.ToInvoice, persistedOrder.Status())

	_, err = verify.InvoiceRepository().Get(ctx, inv.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	exists, err := verify.InvoiceRepository().ExistsForOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.False(exists)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestInvoiceDelete_RemovesLinesButNotOrderStatus() {
	ctx := context.Background()
	o := suite.newBillableOrder(3)
	suite.addOrder(o)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	loaded, err := uow.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Require().NoError(loaded.MarkInvoiced())
	suite.Require().NoError(uow.OrderRepository().Update(ctx, loaded))
	inv := suite.newInvoiceFor(loaded)
	suite.Require().NoError(uow.InvoiceRepository().Add(ctx, inv))
	suite.Require().NoError(uow.Commit(ctx))

	deleter := suite.factory.Create()
	suite.Require().NoError(deleter.Begin(ctx))
	suite.Require().NoError(deleter.InvoiceRepository().Delete(ctx, inv.ID()))
	suite.Require().NoError(deleter.Commit(ctx))

	verify := suite.factory.Create()
	_, err = verify.InvoiceRepository().Get(ctx, inv.ID())
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)

	exists, err := verify.InvoiceRepository().ExistsForOrder(ctx, o.ID())
	suite.Require().NoError(err)
	suite.False(exists)

	// The order stays invoiced; invoice deletion never reverts workflow state.
	persistedOrder, err := verify.OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.Equal(order.Invoiced, persistedOrder.Status())
}

func (suite *UnitOfWorkIntegrationTestSuite) TestCommitWithoutBegin_Fails() {
	uow := suite.factory.Create()
	suite.Require().ErrorIs(uow.Commit(context.Background()), gorm.ErrInvalidTransaction)
}

func (suite *UnitOfWorkIntegrationTestSuite) TestRepositoriesWithoutTransaction_UseMainConnection() {
	ctx := context.Background()
	o := suite.newBillableOrder(4)

	var uow ports.UnitOfWork = suite.factory.Create()
	suite.Require().NoError(uow.OrderRepository().Add(ctx, o))

	restored, err := suite.factory.Create().OrderRepository().Get(ctx, o.ID())
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(o.ID()))
}

func TestUnitOfWorkIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(UnitOfWorkIntegrationTestSuite))
}
