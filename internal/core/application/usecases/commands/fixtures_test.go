package commands_test

import (
	"testing"
	"time"

	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"
	"workshop/internal/core/domain/model/task"
	"workshop/internal/core/domain/model/worksession"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

// testOrder builds an order and walks it to the wanted status through the
// regular workflow transitions.
func testOrder(t *testing.T, status order.Status) *order.Order {
	t.Helper()

	number, err := order.NewNumber(7, 1)
	require.NoError(t, err)

	o, err := order.NewOrder(
		kernel.NewUUID(), number, kernel.NewUUID(),
		"walnut bookshelf", decimal.RequireFromString("450.00"),
		order.UrgencyMedium, time.Now(), nil)
	require.NoError(t, err)

	steps := map[order.Status][]func() error{
		order.Pending:        {},
		order.Production:     {o.StartWork},
		order.QualityControl: {o.StartWork, o.CompleteTasks},
		order.ReadyForPickup: {o.StartWork, o.CompleteTasks, func() error { return o.ReviewQuality(true) }},
		order.ToInvoice: {
			o.StartWork, o.CompleteTasks,
			func() error { return o.ReviewQuality(true) },
			o.ConfirmPickup,
		},
		order.Invoiced: {
			o.StartWork, o.CompleteTasks,
			func() error { return o.ReviewQuality(true) },
			o.ConfirmPickup, o.MarkInvoiced,
		},
	}

	walk, ok := steps[status]
	require.True(t, ok, "no fixture path to status %s", status)
	for _, step := range walk {
		require.NoError(t, step())
	}
	require.Equal(t, status, o.Status())
	return o
}

func testTask(t *testing.T, orderID kernel.UUID, status task.Status) *task.Task {
	t.Helper()

	tk, err := task.NewTask(
		kernel.NewUUID(), orderID, "sand and varnish", "", task.PriorityLow, nil, time.Now())
	require.NoError(t, err)

	if status != task.Pending {
		require.NoError(t, tk.TransitionTo(status, time.Now()))
	}
	return tk
}

func testOpenSession(t *testing.T, taskID, workerID kernel.UUID) *worksession.Session {
	t.Helper()

	s, err := worksession.NewSession(kernel.NewUUID(), taskID, workerID, time.Now().Add(-time.Hour))
	require.NoError(t, err)
	return s
}
