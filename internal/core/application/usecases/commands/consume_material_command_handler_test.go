package commands_test

import (
	"testing"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/inventory"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/task"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestConsumeMaterialCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	o := testOrder(t, order.Production)
	tk := testTask(t, o.ID(), task.InProgress)
	itemID := kernel.NewUUID()

	cmd, err := commands.NewConsumeMaterialCommand(kernel.NewUUID(), tk.ID(), itemID, 4)
	require.NoError(t, err)

	taskRepo := new(MockTaskRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TaskRepository").Return(taskRepo)
	uow.On("InventoryRepository").Return(inventoryRepo)
	taskRepo.On("Get", mock.Anything, tk.ID()).Return(tk, nil).Once()
	inventoryRepo.On("Consume", mock.Anything, itemID, 4).Return(nil).Once()
	inventoryRepo.On("AddConsumption", mock.Anything,
		mock.AnythingOfType("*inventory.ConsumptionRecord")).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConsumeMaterialCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	inventoryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestConsumeMaterialCommandHandler_Handle_InsufficientStock(t *testing.T) {
	ctx := t.Context()
	o := testOrder(t, order.Production)
	tk := testTask(t, o.ID(), task.InProgress)
	itemID := kernel.NewUUID()

	cmd, err := commands.NewConsumeMaterialCommand(kernel.NewUUID(), tk.ID(), itemID, 10)
	require.NoError(t, err)

	stockErr := &inventory.InsufficientStockError{ItemID: itemID, Requested: 10, Available: 3}

	taskRepo := new(MockTaskRepository)
	inventoryRepo := new(MockInventoryRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TaskRepository").Return(taskRepo)
	uow.On("InventoryRepository").Return(inventoryRepo)
	taskRepo.On("Get", mock.Anything, tk.ID()).Return(tk, nil).Once()
	inventoryRepo.On("Consume", mock.Anything, itemID, 10).Return(stockErr).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockInventoryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewConsumeMaterialCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, inventory.ErrInsufficientStock)

	// No ledger record on shortfall.
	inventoryRepo.AssertNotCalled(t, "AddConsumption", mock.Anything, mock.Anything)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}

func TestNewConsumeMaterialCommand_NonPositiveQuantity(t *testing.T) {
	_, err := commands.NewConsumeMaterialCommand(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 0)
	require.ErrorIs(t, err, commands.ErrQuantityIsNotPositive)
}
