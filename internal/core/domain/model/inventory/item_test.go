package inventory_test

import (
	"testing"
	"time"

	"workshop/internal/core/domain/model/inventory"
	"workshop/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestItem(t *testing.T, quantity int) *inventory.Item {
	t.Helper()

	item, err := inventory.NewItem(
		kernel.NewUUID(), "M8 bolts", quantity, decimal.RequireFromString("0.35"))
	require.NoError(t, err)
	return item
}

func TestNewItem(t *testing.T) {
	t.Run("creates item with non-negative stock", func(t *testing.T) {
		item := newTestItem(t, 100)

		assert.Equal(t, 100, item.Quantity())
		require.NoError(t, item.Validate())
	})

	t.Run("rejects negative initial stock", func(t *testing.T) {
		_, err := inventory.NewItem(kernel.NewUUID(), "bolts", -1, decimal.Zero)
		require.Error(t, err)
	})

	t.Run("rejects empty name and negative price", func(t *testing.T) {
		_, err := inventory.NewItem(kernel.NewUUID(), "", 1, decimal.Zero)
		require.Error(t, err)

		_, err = inventory.NewItem(kernel.NewUUID(), "bolts", 1, decimal.NewFromInt(-1))
		require.Error(t, err)
	})
}

func TestItem_Consume(t *testing.T) {
	t.Run("decrements stock", func(t *testing.T) {
		item := newTestItem(t, 10)

		require.NoError(t, item.Consume(4))

		assert.Equal(t, 6, item.Quantity())
	})

	t.Run("consuming more than available fails and leaves stock unchanged", func(t *testing.T) {
		item := newTestItem(t, 3)

		err := item.Consume(5)

		require.ErrorIs(t, err, inventory.ErrInsufficientStock)

		var stockErr *inventory.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 5, stockErr.Requested)
		assert.Equal(t, 3, stockErr.Available)
		assert.Equal(t, 3, item.Quantity())
	})

	t.Run("consuming the exact stock empties the item", func(t *testing.T) {
		item := newTestItem(t, 3)

		require.NoError(t, item.Consume(3))

		assert.Equal(t, 0, item.Quantity())
		require.ErrorIs(t, item.Consume(1), inventory.ErrInsufficientStock)
	})

	t.Run("rejects non-positive quantities", func(t *testing.T) {
		item := newTestItem(t, 3)

		require.Error(t, item.Consume(0))
		require.Error(t, item.Consume(-2))
		assert.Equal(t, 3, item.Quantity())
	})
}

func TestItem_Restock(t *testing.T) {
	t.Run("adds inbound stock", func(t *testing.T) {
		item := newTestItem(t, 2)

		require.NoError(t, item.Restock(8))

		assert.Equal(t, 10, item.Quantity())
	})

	t.Run("rejects non-positive quantities", func(t *testing.T) {
		item := newTestItem(t, 2)
		require.Error(t, item.Restock(0))
	})
}

func TestNewConsumptionRecord(t *testing.T) {
	t.Run("creates record with positive quantity", func(t *testing.T) {
		r, err := inventory.NewConsumptionRecord(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 5, time.Now())

		require.NoError(t, err)
		assert.Equal(t, 5, r.Quantity())
		require.NoError(t, r.Validate())
	})

	t.Run("rejects non-positive quantity", func(t *testing.T) {
		_, err := inventory.NewConsumptionRecord(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 0, time.Now())
		require.Error(t, err)
	})

	t.Run("rejects zero timestamp", func(t *testing.T) {
		_, err := inventory.NewConsumptionRecord(
			kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), 1, time.Time{})
		require.Error(t, err)
	})
}
