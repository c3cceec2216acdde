package task_test

import (
	"testing"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/task"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestTask(t *testing.T) *task.Task {
	t.Helper()

	tk, err := task.NewTask(
		kernel.NewUUID(),
		kernel.NewUUID(),
		"cut frame profiles",
		"cut and deburr the aluminium profiles",
		task.PriorityMedium,
		nil,
		time.Now(),
	)
	require.NoError(t, err)
	return tk
}

func TestNewTask(t *testing.T) {
	t.Run("creates pending unassigned task", func(t *testing.T) {
		tk := newTestTask(t)

		assert.Equal(t, task.Pending, tk.Status())
		assert.Nil(t, tk.Worker())
		assert.False(t, tk.IsDeleted())
		require.NoError(t, tk.Validate())
	})

	t.Run("rejects empty title", func(t *testing.T) {
		_, err := task.NewTask(kernel.NewUUID(), kernel.NewUUID(), "", "desc",
			task.PriorityLow, nil, time.Now())
		require.Error(t, err)
	})

	t.Run("rejects negative estimate", func(t *testing.T) {
		estimate := decimal.NewFromInt(-2)
		_, err := task.NewTask(kernel.NewUUID(), kernel.NewUUID(), "title", "desc",
			task.PriorityLow, &estimate, time.Now())
		require.Error(t, err)
	})

	t.Run("zero value fails Validate", func(t *testing.T) {
		var tk task.Task
		require.ErrorIs(t, tk.Validate(), task.ErrTaskIsNotConstructed)
	})
}

func TestTask_TransitionTo(t *testing.T) {
	now := time.Now()

	t.Run("pending to in_progress to completed", func(t *testing.T) {
		tk := newTestTask(t)

		require.NoError(t, tk.TransitionTo(task.InProgress, now))
		assert.Equal(t, task.InProgress, tk.Status())

		require.NoError(t, tk.TransitionTo(task.Completed, now))
		assert.Equal(t, task.Completed, tk.Status())
	})

	t.Run("pending may be completed directly", func(t *testing.T) {
		tk := newTestTask(t)

		require.NoError(t, tk.TransitionTo(task.Completed, now))
		assert.Equal(t, task.Completed, tk.Status())
	})

	t.Run("completed reopens to in_progress", func(t *testing.T) {
		tk := newTestTask(t)
		require.NoError(t, tk.TransitionTo(task.Completed, now))

		require.NoError(t, tk.TransitionTo(task.InProgress, now))
		assert.Equal(t, task.InProgress, tk.Status())
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		tk := newTestTask(t)
		require.NoError(t, tk.TransitionTo(task.Cancelled, now))

		err := tk.TransitionTo(task.InProgress, now)

		require.ErrorIs(t, err, task.ErrInvalidTransition)
		assert.Equal(t, task.Cancelled, tk.Status())
	})

	t.Run("rejects unknown target without mutating", func(t *testing.T) {
		tk := newTestTask(t)

		err := tk.TransitionTo(task.Pending, now)

		require.ErrorIs(t, err, task.ErrInvalidTransition)
		assert.Equal(t, task.Pending, tk.Status())
	})
}

func TestTask_AssignWorker(t *testing.T) {
	now := time.Now()

	t.Run("assigns one worker at a time", func(t *testing.T) {
		tk := newTestTask(t)
		workerA := kernel.NewUUID()
		workerB := kernel.NewUUID()

		require.NoError(t, tk.AssignWorker(workerA, now))
		assert.True(t, workerA.IsEqual(*tk.Worker()))

		require.NoError(t, tk.AssignWorker(workerB, now))
		assert.True(t, workerB.IsEqual(*tk.Worker()))

		require.NoError(t, tk.UnassignWorker(now))
		assert.Nil(t, tk.Worker())
	})

	t.Run("rejects invalid worker id", func(t *testing.T) {
		tk := newTestTask(t)
		require.Error(t, tk.AssignWorker(kernel.UUID{}, now))
	})
}

func TestTask_MarkDeleted(t *testing.T) {
	now := time.Now()

	t.Run("tombstones the task", func(t *testing.T) {
		tk := newTestTask(t)

		require.NoError(t, tk.MarkDeleted(now))

		assert.True(t, tk.IsDeleted())
		require.NotNil(t, tk.DeletedAt())
	})

	t.Run("deleted tasks refuse further mutation", func(t *testing.T) {
		tk := newTestTask(t)
		require.NoError(t, tk.MarkDeleted(now))

		require.ErrorIs(t, tk.TransitionTo(task.Completed, now), task.ErrTaskDeleted)
		require.ErrorIs(t, tk.AssignWorker(kernel.NewUUID(), now), task.ErrTaskDeleted)
		require.ErrorIs(t, tk.MarkDeleted(now), task.ErrTaskDeleted)
	})
}

func TestStatusFromString(t *testing.T) {
	t.Run("parses valid statuses", func(t *testing.T) {
		for s, want := range map[string]task.Status{
			"pending":     task.Pending,
			"in_progress": task.InProgress,
			"completed":   task.Completed,
			"cancelled":   task.Cancelled,
		} {
			got, err := task.StatusFromString(s)
			require.NoError(t, err)
			assert.Equal(t, want, got)
		}
	})

	t.Run("rejects unknown strings", func(t *testing.T) {
		_, err := task.StatusFromString("paused")
		require.Error(t, err)
	})
}

func TestRestoreTask(t *testing.T) {
	t.Run("reconstructs a persisted task", func(t *testing.T) {
		workerID := kernel.NewUUID()
		estimate := decimal.RequireFromString("4.5")
		created := time.Now().Add(-time.Hour)

		tk, err := task.RestoreTask(
			kernel.NewUUID(), kernel.NewUUID(), "welding", "weld the frame",
			&workerID, task.InProgress, task.PriorityHigh, &estimate,
			created, created, nil,
		)

		require.NoError(t, err)
		assert.Equal(t, task.InProgress, tk.Status())
		assert.True(t, estimate.Equal(*tk.EstimatedHours()))
	})

	t.Run("rejects invalid stored status", func(t *testing.T) {
		_, err := task.RestoreTask(
			kernel.NewUUID(), kernel.NewUUID(), "welding", "",
			nil, task.Unknown, task.PriorityLow, nil,
			time.Now(), time.Now(), nil,
		)
		require.Error(t, err)
	})
}
