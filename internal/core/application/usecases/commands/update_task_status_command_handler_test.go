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

func TestUpdateTaskStatusCommandHandler_Handle_LastTaskCompletedEntersQualityControl(t *testing.T) {
	ctx := t.Context()
	o := testOrder(t, order.Production)
	tk := testTask(t, o.ID(), task.InProgress)

	cmd, err := commands.NewUpdateTaskStatusCommand(tk.ID(), task.Completed)
	require.NoError(t, err)

	taskRepo := new(MockTaskRepository)
	orderRepo := new(MockOrderRepository)
	sessionRepo := new(MockSessionRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TaskRepository").Return(taskRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("SessionRepository").Return(sessionRepo)
	taskRepo.On("Get", mock.Anything, tk.ID()).Return(tk, nil).Once()
	taskRepo.On("Update", mock.Anything, tk).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	taskRepo.On("GetByOrder", mock.Anything, o.ID()).Return([]*task.Task{tk}, nil).Once()
	sessionRepo.On("CountOpenByOrder", mock.Anything, o.ID()).Return(0, nil).Once()
	orderRepo.On("Update", mock.Anything, o).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockWorkUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateTaskStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	assert.Equal(t, task.Completed, tk.Status())
	assert.Equal(t, order.QualityControl, o.Status())
	taskRepo.AssertExpectations(t)
	orderRepo.AssertExpectations(t)
	sessionRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateTaskStatusCommandHandler_Handle_StatusUnchangedSkipsOrderUpdate(t *testing.T) {
	ctx := t.Context()
	o := testOrder(t, order.Production)
	done := testTask(t, o.ID(), task.InProgress)
	remaining := testTask(t, o.ID(), task.InProgress)

	cmd, err := commands.NewUpdateTaskStatusCommand(done.ID(), task.Completed)
	require.NoError(t, err)

	taskRepo := new(MockTaskRepository)
	orderRepo := new(MockOrderRepository)
	sessionRepo := new(MockSessionRepository)
	uow := new(MockUoW)

	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("TaskRepository").Return(taskRepo)
	uow.On("OrderRepository").Return(orderRepo)
	uow.On("SessionRepository").Return(sessionRepo)
	taskRepo.On("Get", mock.Anything, done.ID()).Return(done, nil).Once()
	taskRepo.On("Update", mock.Anything, done).Return(nil).Once()
	orderRepo.On("Get", mock.Anything, o.ID()).Return(o, nil).Once()
	taskRepo.On("GetByOrder", mock.Anything, o.ID()).
		Return([]*task.Task{done, remaining}, nil).Once()
	sessionRepo.On("CountOpenByOrder", mock.Anything, o.ID()).Return(1, nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	factory := new(MockWorkUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateTaskStatusCommandHandler(factory)
	require.NoError(t, h.Handle(ctx, cmd))

	// Still in production: one task open, one timer running.
	assert.Equal(t, order.Production, o.Status())
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	uow.AssertExpectations(t)
}

func TestUpdateTaskStatusCommandHandler_Handle_InvalidTransitionRollsBack(t *testing.T) {
	ctx := t.Context()
	o := testOrder(t, order.Production)
	tk := testTask(t, o.ID(), task.Cancelled)

	cmd, err := commands.NewUpdateTaskStatusCommand(tk.ID(), task.Completed)
	require.NoError(t, err)

	taskRepo := new(MockTaskRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("TaskRepository").Return(taskRepo).Once(),
		taskRepo.On("Get", mock.Anything, tk.ID()).Return(tk, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockWorkUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateTaskStatusCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, task.ErrInvalidTransition)
	assert.Equal(t, task.Cancelled, tk.Status())
	uow.AssertNotCalled(t, "Commit", mock.Anything)
}
