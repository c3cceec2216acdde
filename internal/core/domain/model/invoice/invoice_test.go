package invoice_test

import (
	"errors"
	"testing"
	"time"

	"workshop/internal/core/domain/model/invoice"
	"workshop/internal/core/domain/model/kernel"
	"workshop/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newSummary(t *testing.T, sale, hours string) invoice.OrderSummary {
	t.Helper()

	number, err := order.NewNumber(1, 1)
	require.NoError(t, err)

	s, err := invoice.NewOrderSummary(
		kernel.NewUUID(), number,
		decimal.RequireFromString(sale), decimal.RequireFromString(hours))
	require.NoError(t, err)
	return s
}

func period(t *testing.T) (time.Time, time.Time) {
	t.Helper()
	start := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

func TestNewInvoice(t *testing.T) {
	t.Run("totals are sum of sale values plus extras and sum of hours", func(t *testing.T) {
		start, end := period(t)
		summaries := []invoice.OrderSummary{
			newSummary(t, "300.00", "3.5"),
			newSummary(t, "120.50", "1.25"),
		}
		extra, err := invoice.NewExtraCharge("transport", decimal.RequireFromString("50.00"))
		require.NoError(t, err)

		inv, err := invoice.NewInvoice(
			kernel.NewUUID(), kernel.NewUUID(), start, end,
			summaries, []invoice.ExtraCharge{extra}, time.Now())

		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("470.50").Equal(inv.TotalValue()),
			"got %s", inv.TotalValue())
		assert.True(t, decimal.RequireFromString("4.75").Equal(inv.TotalTime()),
			"got %s", inv.TotalTime())
	})

	t.Run("single order with one extra matches the billing scenario", func(t *testing.T) {
		// OS0001-1: sessions of 2.5h and 1.0h, sale value 300.00, extra 50.00
		start, end := period(t)
		summary := newSummary(t, "300.00", "3.5")
		extra, _ := invoice.NewExtraCharge("rush fee", decimal.RequireFromString("50.00"))

		inv, err := invoice.NewInvoice(
			kernel.NewUUID(), kernel.NewUUID(), start, end,
			[]invoice.OrderSummary{summary}, []invoice.ExtraCharge{extra}, time.Now())

		require.NoError(t, err)
		assert.True(t, decimal.RequireFromString("350.00").Equal(inv.TotalValue()))
		assert.True(t, decimal.RequireFromString("3.5").Equal(inv.TotalTime()))
	})

	t.Run("requires at least one order", func(t *testing.T) {
		start, end := period(t)
		_, err := invoice.NewInvoice(
			kernel.NewUUID(), kernel.NewUUID(), start, end, nil, nil, time.Now())
		require.Error(t, err)
	})

	t.Run("rejects inverted billing period", func(t *testing.T) {
		start, end := period(t)
		_, err := invoice.NewInvoice(
			kernel.NewUUID(), kernel.NewUUID(), end, start,
			[]invoice.OrderSummary{newSummary(t, "1", "0")}, nil, time.Now())
		require.Error(t, err)
	})

	t.Run("order lines are immutable from outside", func(t *testing.T) {
		start, end := period(t)
		inv, err := invoice.NewInvoice(
			kernel.NewUUID(), kernel.NewUUID(), start, end,
			[]invoice.OrderSummary{newSummary(t, "10", "1")}, nil, time.Now())
		require.NoError(t, err)

		lines := inv.OrderSummaries()
		lines[0].SaleValue = decimal.NewFromInt(999)

		assert.True(t, decimal.NewFromInt(10).Equal(inv.OrderSummaries()[0].SaleValue))
		assert.True(t, decimal.NewFromInt(10).Equal(inv.TotalValue()))
	})
}

func TestInvoice_References(t *testing.T) {
	start, end := period(t)
	summary := newSummary(t, "10", "1")

	inv, err := invoice.NewInvoice(
		kernel.NewUUID(), kernel.NewUUID(), start, end,
		[]invoice.OrderSummary{summary}, nil, time.Now())
	require.NoError(t, err)

	assert.True(t, inv.References(summary.OrderID))
	assert.False(t, inv.References(kernel.NewUUID()))
}

func TestPartialInvoiceFailureError(t *testing.T) {
	t.Run("unwraps to both the sentinel and the cause", func(t *testing.T) {
		orderID := kernel.NewUUID()
		cause := order.NewInvalidTransitionError(order.Invoiced, "invoice")
		err := error(&invoice.PartialInvoiceFailureError{OrderID: orderID, Cause: cause})

		require.ErrorIs(t, err, invoice.ErrPartialInvoiceFailure)
		require.ErrorIs(t, err, order.ErrInvalidTransition)

		var transitionErr *order.InvalidTransitionError
		require.True(t, errors.As(err, &transitionErr))
		assert.Equal(t, order.Invoiced, transitionErr.From)
	})
}

func TestNewExtraCharge(t *testing.T) {
	t.Run("requires a description", func(t *testing.T) {
		_, err := invoice.NewExtraCharge("", decimal.NewFromInt(10))
		require.Error(t, err)
	})
}
