package services_test

import (
	"testing"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/task"
	"workshop/internal/core/domain/services"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestOrder(t *testing.T) *order.Order {
	t.Helper()

	number, err := order.NewNumber(1, 1)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), number, kernel.NewUUID(),
		"kitchen cabinet", decimal.RequireFromString("300.00"),
		order.UrgencyMedium, time.Now(), nil)
	require.NoError(t, err)
	return o
}

func newOrderInProduction(t *testing.T) *order.Order {
	t.Helper()

	o := newTestOrder(t)
	require.NoError(t, o.StartWork())
	return o
}

func newTaskFor(t *testing.T, o *order.Order, status task.Status) *task.Task {
	t.Helper()

	tk, err := task.NewTask(
		kernel.NewUUID(), o.ID(), "cut panels", "", task.PriorityMedium, nil, time.Now())
	require.NoError(t, err)

	if status != task.Pending {
		require.NoError(t, tk.TransitionTo(status, time.Now()))
	}
	return tk
}

func TestStatusReconciler_Reconcile(t *testing.T) {
	reconciler := services.NewStatusReconciler()

	t.Run("all tasks completed moves the order to quality control", func(t *testing.T) {
		o := newOrderInProduction(t)
		tasks := []*task.Task{
			newTaskFor(t, o, task.Completed),
			newTaskFor(t, o, task.Completed),
		}

		got, err := reconciler.Reconcile(o, tasks, 0)

		require.NoError(t, err)
		assert.Equal(t, order.QualityControl, got)
		assert.Equal(t, order.QualityControl, o.Status())
	})

	t.Run("cancelled tasks do not block completion", func(t *testing.T) {
		o := newOrderInProduction(t)
		tasks := []*task.Task{
			newTaskFor(t, o, task.Completed),
			newTaskFor(t, o, task.Cancelled),
		}

		got, err := reconciler.Reconcile(o, tasks, 0)

		require.NoError(t, err)
		assert.Equal(t, order.QualityControl, got)
	})

	t.Run("open session keeps the order in production", func(t *testing.T) {
		o := newOrderInProduction(t)
		tasks := []*task.Task{
			newTaskFor(t, o, task.Completed),
			newTaskFor(t, o, task.InProgress),
		}

		got, err := reconciler.Reconcile(o, tasks, 1)

		require.NoError(t, err)
		assert.Equal(t, order.Production, got)
	})

	t.Run("outstanding tasks without open sessions stop the order", func(t *testing.T) {
		o := newOrderInProduction(t)
		tasks := []*task.Task{
			newTaskFor(t, o, task.Completed),
			newTaskFor(t, o, task.InProgress),
		}

		got, err := reconciler.Reconcile(o, tasks, 0)

		require.NoError(t, err)
		assert.Equal(t, order.Stopped, got)
		assert.Equal(t, order.Stopped, o.Status())
	})

	t.Run("pending order with no work started stays pending", func(t *testing.T) {
		o := newTestOrder(t)
		tasks := []*task.Task{newTaskFor(t, o, task.Pending)}

		got, err := reconciler.Reconcile(o, tasks, 0)

		require.NoError(t, err)
		assert.Equal(t, order.Pending, got)
		assert.Equal(t, order.Pending, o.Status())
	})

	t.Run("tombstoned tasks are ignored", func(t *testing.T) {
		o := newOrderInProduction(t)
		deleted := newTaskFor(t, o, task.InProgress)
		require.NoError(t, deleted.MarkDeleted(time.Now()))
		tasks := []*task.Task{
			newTaskFor(t, o, task.Completed),
			deleted,
		}

		got, err := reconciler.Reconcile(o, tasks, 0)

		require.NoError(t, err)
		assert.Equal(t, order.QualityControl, got)
	})

	t.Run("orders outside the production phase are left untouched", func(t *testing.T) {
		o := newOrderInProduction(t)
		require.NoError(t, o.Hold())
		tasks := []*task.Task{newTaskFor(t, o, task.Completed)}

		got, err := reconciler.Reconcile(o, tasks, 0)

		require.NoError(t, err)
		assert.Equal(t, order.OnHold, got)
		assert.Equal(t, order.OnHold, o.Status())
	})

	t.Run("order without tasks is inconsistent", func(t *testing.T) {
		o := newOrderInProduction(t)

		_, err := reconciler.Reconcile(o, nil, 0)

		require.ErrorIs(t, err, services.ErrInconsistentDerivedState)
		assert.Equal(t, order.Production, o.Status())
	})

	t.Run("only tombstoned tasks is inconsistent", func(t *testing.T) {
		o := newOrderInProduction(t)
		deleted := newTaskFor(t, o, task.Pending)
		require.NoError(t, deleted.MarkDeleted(time.Now()))

		_, err := reconciler.Reconcile(o, []*task.Task{deleted}, 0)

		require.ErrorIs(t, err, services.ErrInconsistentDerivedState)
	})

	t.Run("tasks of another order are inconsistent", func(t *testing.T) {
		o := newOrderInProduction(t)
		other := newOrderInProduction(t)
		tasks := []*task.Task{newTaskFor(t, other, task.Completed)}

		_, err := reconciler.Reconcile(o, tasks, 0)

		require.ErrorIs(t, err, services.ErrInconsistentDerivedState)
		assert.Equal(t, order.Production, o.Status())
	})

	t.Run("all tasks cancelled falls back to stopped", func(t *testing.T) {
		o := newOrderInProduction(t)
		tasks := []*task.Task{newTaskFor(t, o, task.Cancelled)}

		got, err := reconciler.Reconcile(o, tasks, 0)

		require.NoError(t, err)
		assert.Equal(t, order.Stopped, got)
	})

	t.Run("unconstructed order is rejected", func(t *testing.T) {
		_, err := reconciler.Reconcile(&order.Order{}, nil, 0)
		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
