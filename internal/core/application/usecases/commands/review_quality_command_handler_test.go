package commands_test

import (
	"testing"

	"workshop/internal/core/application/usecases/commands"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/task"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestReviewQualityCommandHandler_Handle_Approval(t *testing.T) {
	ctx := t.Context()
	o := testOrder(t, order.QualityControl)

	cmd, err := commands.NewReviewQualityCommand(o.ID(), true)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	orderRepo.On("Update", mock.Anything, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockWorkUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewQualityCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))
	assert.Equal(t, order.ReadyForPickup, o.Status())
}

func TestReviewQualityCommandHandler_Handle_RejectionReopensCompletedTasks(t *testing.T) {
	ctx := t.Context()
	o := testOrder(t, order.QualityControl)
	done := testTask(t, o.ID(), task.Completed)
	cancelled := testTask(t, o.ID(), task.Cancelled)

	cmd, err := commands.NewReviewQualityCommand(o.ID(), false)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	taskRepo := new(MockTaskRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("TaskRepository").Return(taskRepo)
	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	taskRepo.On("GetByOrder", mock.Anything, o.ID()).
		Return([]*task.Task{done, cancelled}, nil).Once()
	taskRepo.On("Update", mock.Anything, done).Return(nil).Once()
	orderRepo.On("Update", mock.Anything, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockWorkUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewQualityCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, order.Production, o.Status())
	assert.Equal(t, task.InProgress, done.Status())
	assert.Equal(t, task.Cancelled, cancelled.Status())
	taskRepo.AssertExpectations(t)
}

func TestReviewQualityCommandHandler_Handle_NotUnderReview(t *testing.T) {
	ctx := t.Context()
	o := testOrder(t, order.Pending)

	cmd, err := commands.NewReviewQualityCommand(o.ID(), true)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewReviewQualityCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, order.ErrInvalidTransition)
	assert.Equal(t, order.Pending, o.Status())
}
